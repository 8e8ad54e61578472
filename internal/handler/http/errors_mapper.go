package http

import (
	"errors"
	"net/http"

	"github.com/vijaycharanme-code/doc-manager/internal/app"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/service"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/internal/validators"
	"github.com/vijaycharanme-code/doc-manager/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order. A service error usually wraps a more
// specific cause (ErrInvalidDataProvided wrapping ErrDisallowedExtension),
// so specific entries come first.
var errorResponses = []errorResponse{
	{validators.ErrDisallowedExtension, http.StatusUnsupportedMediaType, app.MsgInvalidFileType},
	{validators.ErrInvalidFileName, http.StatusBadRequest, app.MsgInvalidFileType},
	{validators.ErrNoFileProvided, http.StatusBadRequest, app.MsgNoFileSelected},
	{validators.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{service.ErrFileTooLarge, http.StatusRequestEntityTooLarge, app.MsgFileTooLarge},

	{store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameAlreadyExists},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrNotAuthenticated, http.StatusUnauthorized, app.MsgLoginRequired},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgLoginRequired},

	{service.ErrFileNotFound, http.StatusNotFound, app.MsgFileNotFound},
	{service.ErrDocumentNotFound, http.StatusNotFound, app.MsgDocumentNotFound},
	{ErrInvalidDocumentID, http.StatusNotFound, app.MsgDocumentNotFound},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

func messageFromError(err error) string {
	_, message := lookupError(err)
	return message
}

func lookupError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the {success:false,message} envelope.
// Internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := lookupError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.Response{Success: false, Message: message}, status)
}
