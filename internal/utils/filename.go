// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename turns a client supplied file name into a single safe path
// component.
//
// The name is NFKD normalized and reduced to ASCII, path separators become
// spaces, whitespace runs are joined with "_", every character outside
// [A-Za-z0-9_.-] is dropped and leading or trailing dots and underscores are
// trimmed. The result may be empty, which callers must treat as invalid.
//
//	SecureFilename("../../etc/passwd")   // "etc_passwd"
//	SecureFilename("My cool movie.mov")  // "My_cool_movie.mov"
//	SecureFilename("résumé.pdf")         // "resume.pdf"
func SecureFilename(name string) string {
	name = norm.NFKD.String(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	name = b.String()

	name = strings.NewReplacer("/", " ", `\`, " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")

	return strings.Trim(name, "._")
}

// SplitExtension splits name at its final dot. ext is lowercased and has no
// leading dot; ok is false when name has no dot.
func SplitExtension(name string) (base, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, "", false
	}

	return name[:i], strings.ToLower(name[i+1:]), true
}
