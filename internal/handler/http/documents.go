// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/vijaycharanme-code/doc-manager/internal/app"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/service"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/internal/validators"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// multipartMemory is the part of an upload kept in memory; the rest is
// spooled to temporary files by mime/multipart.
const multipartMemory = 8 << 20

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	docs, err := h.services.DocumentService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DocumentsResponse{Success: true, Documents: docs}, http.StatusOK)
}

func (h *Handler) addDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var req models.AddLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}
	req.UserID = userID

	if _, err := h.services.DocumentService.AddLink(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgDocumentAdded}, http.StatusCreated)
}

// upload accepts a multipart form with a "file" part and optional
// "category", "tags" and "description" fields. The request body is capped
// at the configured upload size.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.app.MaxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, fmt.Errorf("%w: limit is %d bytes", service.ErrFileTooLarge, maxBytesErr.Limit))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", validators.ErrNoFileProvided, err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Err(err).Str("func", "*Handler.upload").Msg("multipart temp files were not removed")
		}
	}()

	req := models.UploadRequest{
		UserID:      userID,
		Category:    r.FormValue("category"),
		Tags:        r.FormValue("tags"),
		Description: r.FormValue("description"),
	}

	file, header, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// left nil: the service answers with "No file selected!"
	case err != nil:
		writeError(w, r, fmt.Errorf("error reading file part: %w", err))
		return
	default:
		defer file.Close()
		req.FileName = header.Filename
		req.Content = file
	}

	if _, err = h.services.DocumentService.Upload(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgFileUploaded}, http.StatusCreated)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	req, err := documentRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DocumentService.Delete(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgDocumentDeleted}, http.StatusOK)
}

// download streams the stored file as an attachment named after the
// original file name. Seekable backends get range and conditional request
// support through http.ServeContent.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := documentRequest(r)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrFileNotFound, err))
		return
	}

	doc, obj, err := h.services.DocumentService.Download(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer obj.Close()

	name := downloadName(doc)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))

	if rs, ok := obj.ReadCloser.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, doc.CreatedAt, rs)
		return
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if obj.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, obj); err != nil {
		log.Err(err).Str("func", "*Handler.download").Int64("document_id", doc.ID).Msg("error streaming file")
	}
}

func documentRequest(r *http.Request) (models.DocumentRequest, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return models.DocumentRequest{}, ErrNoUserInContext
	}

	rawID := chi.URLParam(r, "id")
	documentID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || documentID <= 0 {
		return models.DocumentRequest{}, fmt.Errorf("%w: %q", ErrInvalidDocumentID, rawID)
	}

	return models.DocumentRequest{UserID: userID, DocumentID: documentID}, nil
}

func downloadName(doc models.Document) string {
	if doc.OriginalFilename != "" {
		return doc.OriginalFilename
	}
	return path.Base(doc.FilePath)
}
