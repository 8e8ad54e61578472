package validators

import (
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/utils"
)

// allowedExtensions lists the upload formats accepted by the document
// manager: documents, spreadsheets, presentations, images, archives and
// plain text.
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"txt":  {},
	"xls":  {},
	"xlsx": {},
	"ppt":  {},
	"pptx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"zip":  {},
}

// AllowedExtension reports whether ext (lowercase, no dot) may be uploaded.
func AllowedExtension(ext string) bool {
	_, ok := allowedExtensions[ext]
	return ok
}

// CheckFileName validates a client supplied upload name and returns its
// lowercased extension. The match is case insensitive on the text after the
// final dot; a name without a dot is rejected.
func CheckFileName(name string) (string, error) {
	if name == "" {
		return "", ErrNoFileProvided
	}

	_, ext, ok := utils.SplitExtension(name)
	if !ok || !AllowedExtension(ext) {
		return "", fmt.Errorf("%w: %q", ErrDisallowedExtension, name)
	}

	return ext, nil
}
