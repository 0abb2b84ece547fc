// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/devmatch/internal/logging"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantOK     bool
		wantCode   string
		wantCount  *int
	}{
		{"success", func(rw *ResponseWriter) { rw.Success("ok") }, http.StatusOK, true, "", nil},
		{"created", func(rw *ResponseWriter) { rw.Created("ok") }, http.StatusCreated, true, "", nil},
		{"list", func(rw *ResponseWriter) { rw.SuccessList([]string{}, 0) }, http.StatusOK, true, "", intPtr(0)},
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("x") }, http.StatusBadRequest, false, ErrCodeBadRequest, nil},
		{"forbidden", func(rw *ResponseWriter) { rw.Forbidden("x") }, http.StatusForbidden, false, ErrCodeForbidden, nil},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("x") }, http.StatusNotFound, false, ErrCodeNotFound, nil},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("x") }, http.StatusInternalServerError, false, ErrCodeInternalError, nil},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("x") }, http.StatusServiceUnavailable, false, ErrCodeServiceUnavailable, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-1"))
			tt.write(NewResponseWriter(rec, req))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}

			var resp APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success != tt.wantOK {
				t.Errorf("success = %v", resp.Success)
			}
			if resp.Meta == nil || resp.Meta.RequestID != "req-1" {
				t.Errorf("meta = %+v", resp.Meta)
			}
			if tt.wantCode != "" && (resp.Error == nil || resp.Error.Code != tt.wantCode) {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
			if tt.wantCount != nil && (resp.Meta.Count == nil || *resp.Meta.Count != *tt.wantCount) {
				t.Errorf("count = %v, want %d", resp.Meta.Count, *tt.wantCount)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
