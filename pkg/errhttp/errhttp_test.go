package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/cartloom/pkg/auth"
	listdomain "github.com/ghuser/cartloom/services/shoppinglist/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"ErrUserIDNotFound", auth.ErrUserIDNotFound, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"ErrListNotFound", listdomain.ErrListNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"ErrItemNotFound", listdomain.ErrItemNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"ErrInvalidName", listdomain.ErrInvalidName, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"ErrInvalidQuantity", listdomain.ErrInvalidQuantity, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"wrapped ErrListNotFound", fmt.Errorf("get list: %w", listdomain.ErrListNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"wrapped ErrInvalidQuantity", fmt.Errorf("%w: must be positive", listdomain.ErrInvalidQuantity), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body.Success {
				t.Fatal("expected success=false")
			}
			if body.Error.Code != tt.wantCode {
				t.Fatalf("expected code %q, got %q", tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestWriteError_InternalMessageMasked(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: connection refused on 10.0.0.5"))

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Error.Message != "internal error" {
		t.Fatalf("expected internal detail masked, got %q", body.Error.Message)
	}
}

func TestWriteError_DomainMessagePreserved(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, listdomain.ErrListNotFound)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Error.Message != listdomain.ErrListNotFound.Error() {
		t.Fatalf("expected %q, got %q", listdomain.ErrListNotFound.Error(), body.Error.Message)
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, listdomain.ErrListNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
