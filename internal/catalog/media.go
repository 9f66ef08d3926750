// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"catalog/internal/imaging"
	"catalog/internal/models"
)

// MaxMediaSize is the largest accepted media upload (10 MB).
const MaxMediaSize = 10 << 20

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}

// MediaUpload describes a file to attach to an item. ContentType should be
// sniffed from the content, not taken from the client.
type MediaUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (u MediaUpload) validate() error {
	ve := &ValidationError{}
	switch {
	case strings.TrimSpace(u.FileName) == "" || u.Body == nil:
		ve.add("file", "A file is required.")
	case u.Size <= 0:
		ve.add("file", "The file is empty.")
	case u.Size > MaxMediaSize:
		ve.add("file", fmt.Sprintf("The file must be %d bytes or smaller.", MaxMediaSize))
	}
	if u.ContentType != "" && !allowedMediaTypes[u.ContentType] {
		ve.add("file", fmt.Sprintf("File type %q is not allowed.", u.ContentType))
	}
	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}

// mediaKey builds a unique object key under the item's prefix.
func mediaKey(slug, fileName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	return path.Join("items", slug, uuid.New().String()+ext)
}

// thumbKey derives the thumbnail key from the original's key.
func thumbKey(key string) string {
	return strings.TrimSuffix(key, path.Ext(key)) + "_thumb.jpg"
}

// AttachMedia uploads a file to object storage and appends it to the
// item's media list without rewriting the rest of the item. Images wider
// than imaging.ThumbnailWidth also get a JPEG thumbnail. If the media
// cannot be recorded the uploaded objects are removed again.
func (s *Service) AttachMedia(ctx context.Context, slug string, upload MediaUpload) (*models.Item, error) {
	if err := validSlug(slug); err != nil {
		return nil, err
	}
	if s.media == nil {
		return nil, ErrStorageDisabled
	}
	if err := upload.validate(); err != nil {
		return nil, err
	}

	item, err := s.findItem(ctx, slug)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, MaxMediaSize+1))
	if err != nil {
		return nil, fmt.Errorf("read media: %w", err)
	}
	if int64(len(data)) > MaxMediaSize {
		return nil, fieldError("file", fmt.Sprintf("The file must be %d bytes or smaller.", MaxMediaSize))
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := mediaKey(slug, upload.FileName, contentType)
	url, err := s.media.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, storeError(ctx, "upload media", err)
	}
	uploaded := []string{key}

	media := models.Media{
		FileName:    filepath.Base(upload.FileName),
		URL:         url,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
	}

	if imaging.Thumbable(contentType) {
		thumb, err := imaging.Thumbnail(bytes.NewReader(data), imaging.ThumbnailWidth)
		switch {
		case err != nil:
			slog.Warn("thumbnail generation failed", "error", err, "key", key)
		case thumb != nil:
			tk := thumbKey(key)
			thumbURL, err := s.media.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb)))
			if err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				media.ThumbnailURL = thumbURL
				uploaded = append(uploaded, tk)
			}
		}
	}

	err = itemWriteError(ctx, "append media", slug, s.items.AppendMedia(ctx, slug, media))
	if err != nil {
		for _, k := range uploaded {
			if delErr := s.media.Delete(context.WithoutCancel(ctx), k); delErr != nil {
				slog.Error("remove orphaned media", "key", k, "error", delErr)
			}
		}
		return nil, err
	}

	slog.Info("media attached", "slug", slug, "key", key, "size", len(data))
	item.AddMedia(media)
	return item, nil
}
