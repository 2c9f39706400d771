// Package handlers contains the HTTP handlers for the shopping list actions.
// Each handler validates input shape, extracts the caller identity, delegates
// to the application services, and maps outcomes to the response envelope.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/cartloom/pkg/httpx"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/models"
)

// ListResponse is the JSON shape of a shopping list.
type ListResponse struct {
	ID         uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	OwnerID    uuid.UUID `json:"owner_id"    example:"550e8400-e29b-41d4-a716-446655440000"`
	Name       string    `json:"name"        example:"Weekly Groceries"`
	StoreName  *string   `json:"store_name,omitempty" example:"Carrefour"`
	Notes      *string   `json:"notes,omitempty"`
	IsArchived bool      `json:"is_archived" example:"false"`
	CreatedAt  time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt  time.Time `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name ListResponse

// ItemResponse is the JSON shape of a shopping list item.
type ItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ListID        uuid.UUID `json:"list_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"         example:"Milk"`
	Quantity      *float64  `json:"quantity,omitempty" example:"2"`
	Unit          *string   `json:"unit,omitempty"     example:"litre"`
	Category      *string   `json:"category,omitempty" example:"dairy"`
	IsChecked     bool      `json:"is_checked"`
	IsAISuggested bool      `json:"is_ai_suggested"`
	AIContext     *string   `json:"ai_context,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
} // @name ItemResponse

// ErrorResponse documents the failure envelope for swagger.
type ErrorResponse struct {
	Success bool            `json:"success" example:"false"`
	Error   httpx.ErrorBody `json:"error"`
} // @name ErrorResponse

func toListResponse(l *models.List) ListResponse {
	return ListResponse{
		ID:         l.ID,
		OwnerID:    l.OwnerID,
		Name:       l.Name.String(),
		StoreName:  l.StoreName,
		Notes:      l.Notes,
		IsArchived: l.IsArchived,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		ListID:        i.ListID,
		OwnerID:       i.OwnerID,
		Name:          i.Name.String(),
		Quantity:      i.Quantity,
		Unit:          i.Unit,
		Category:      i.Category,
		IsChecked:     i.IsChecked,
		IsAISuggested: i.IsAISuggested,
		AIContext:     i.AIContext,
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	return out
}

// uuidParam parses a UUID chi URL parameter, writing a validation failure
// envelope when it is malformed.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httpx.JSONValidationError(w, map[string]string{name: "Must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}
