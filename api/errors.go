// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// CodedError pairs a handler error with the HTTP status it is answered with.
type CodedError struct {
	err  error
	code int
}

func (e *CodedError) Error() string {
	return e.err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the status carried by e.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode attaches an HTTP status to err. A nil err stays nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code returns the status of the first CodedError in err's chain, 200 for
// nil and 500 when the chain carries none.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return http.StatusInternalServerError
}

// NotFound is shorthand for a 404 CodedError.
func NotFound(message string) error {
	return &CodedError{err: errors.New(message), code: http.StatusNotFound}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers with err's status. Server error messages stay in the
// log and the client gets the status text.
func writeError(w http.ResponseWriter, err error) {
	code := Code(err)
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		msg = http.StatusText(code)
	}
	writeJSON(w, code, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
