// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"catalog/internal/catalog"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

// statusClientClosedRequest is the non-standard status logged when the
// client went away before the response was ready.
const statusClientClosedRequest = 499

const validationTitle = "One or more validation errors occurred."

// decodeJSON reads the request body into dst. Keys match struct fields
// case-insensitively and unknown keys are ignored. Malformed bodies come
// back as a *catalog.ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	field, msg := "body", "The request body is not valid JSON."
	switch {
	case errors.Is(err, io.EOF):
		msg = "A non-empty request body is required."
	case errors.As(err, &typeErr) && typeErr.Field != "":
		field = typeErr.Field
		msg = fmt.Sprintf("The JSON value could not be converted to %s.", typeErr.Type)
	case errors.As(err, &sizeErr):
		msg = fmt.Sprintf("The request body must be %d bytes or smaller.", sizeErr.Limit)
	}
	return &catalog.ValidationError{Fields: map[string][]string{field: {msg}}}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeMessage writes a {"error": msg} body.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// created answers a successful mutation: 201 with the resource location.
func created(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

// writeError maps a service error onto an HTTP response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *catalog.ValidationError
		re *catalog.ReferenceError
		ce *catalog.ConflictError
		pe *catalog.PreconditionError
		ne *catalog.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"title":  validationTitle,
			"status": http.StatusBadRequest,
			"errors": ve.Fields,
		})
	case errors.As(err, &re):
		writeMessage(w, http.StatusBadRequest, re.Message)
	case errors.As(err, &ce):
		writeMessage(w, http.StatusBadRequest, ce.Message)
	case errors.As(err, &pe):
		writeMessage(w, http.StatusBadRequest, pe.Message)
	case errors.As(err, &ne):
		writeMessage(w, http.StatusNotFound, ne.Message)
	case errors.Is(err, catalog.ErrStorageDisabled):
		writeMessage(w, http.StatusServiceUnavailable, "Object storage is not configured.")
	case errors.Is(err, catalog.ErrCanceled) && errors.Is(err, context.DeadlineExceeded):
		slog.Warn("request timed out", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusGatewayTimeout, "request timed out")
	case errors.Is(err, catalog.ErrCanceled):
		slog.Info("request canceled", "method", r.Method, "path", r.URL.Path)
		writeMessage(w, statusClientClosedRequest, "request canceled")
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// idParam parses the {id} URL parameter. Non-numeric values and values
// outside the int4 range yield 0, which the service rejects as an invalid id.
func idParam(r *http.Request) int {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0
	}
	return int(id)
}
