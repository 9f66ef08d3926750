// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalog/internal/catalog"
)

// multipartOverhead leaves room for boundaries and part headers.
const multipartOverhead = 1 << 10

const tooLargeMessage = "File too large. Maximum size is 10 MB."

// UploadMedia handles POST /items/{slug}/medias: a multipart upload of a
// single "file" part attached to the item.
func (c *Catalog) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, catalog.MaxMediaSize+multipartOverhead)
	if err := r.ParseMultipartForm(catalog.MaxMediaSize); err != nil {
		var sizeErr *http.MaxBytesError
		if errors.As(err, &sizeErr) {
			writeMessage(w, http.StatusRequestEntityTooLarge, tooLargeMessage)
			return
		}
		writeMessage(w, http.StatusBadRequest, "Expected a multipart form with a file.")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No file provided.")
		return
	}
	defer file.Close()

	if header.Size > catalog.MaxMediaSize {
		writeMessage(w, http.StatusRequestEntityTooLarge, tooLargeMessage)
		return
	}

	contentType, err := sniffContentType(file, header.Filename)
	if err != nil {
		slog.Error("read upload", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to read file.")
		return
	}

	slug := chi.URLParam(r, "slug")
	_, err = c.svc.AttachMedia(r.Context(), slug, catalog.MediaUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	created(w, catalog.ItemPath(slug))
}

// sniffContentType detects the type from the first 512 bytes and rewinds
// the file.
func sniffContentType(file multipart.File, fileName string) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	contentType := http.DetectContentType(buf[:n])

	// DetectContentType reports SVGs as text/xml or text/plain.
	if strings.HasSuffix(strings.ToLower(fileName), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return contentType, nil
}
