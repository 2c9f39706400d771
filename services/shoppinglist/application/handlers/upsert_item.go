package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/cartloom/pkg/auth"
	"github.com/ghuser/cartloom/pkg/errhttp"
	"github.com/ghuser/cartloom/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartloom/pkg/validator"
	appsvcs "github.com/ghuser/cartloom/services/shoppinglist/application/services"
)

// UpsertItemRequest is the request body for PUT /shopping-lists/{listID}/items.
// Presence of id selects update-vs-create: without id a new item is created
// (name required); with id the named fields are applied sparsely and omitted
// fields are left unchanged.
type UpsertItemRequest struct {
	ID            *uuid.UUID `json:"id"`
	Name          *string    `json:"name" validate:"omitempty,min=1,max=255" example:"Milk"`
	Quantity      *float64   `json:"quantity" validate:"omitempty,gt=0" example:"2"`
	Unit          *string    `json:"unit" validate:"omitempty,min=1,max=64" example:"litre"`
	Category      *string    `json:"category" validate:"omitempty,min=1,max=64" example:"dairy"`
	Notes         *string    `json:"notes" validate:"omitempty,max=2000"`
	IsChecked     *bool      `json:"is_checked"`
	IsAISuggested *bool      `json:"is_ai_suggested"`
	AIContext     *string    `json:"ai_context" validate:"omitempty,max=2000"`
} // @name UpsertItemRequest

// UpsertItemData is the data half of a successful upsert envelope. The item
// is re-read after the write, so callers see persisted state.
type UpsertItemData struct {
	Item ItemResponse `json:"item"`
} // @name UpsertItemData

// UpsertItemHandler handles PUT /shopping-lists/{listID}/items requests.
type UpsertItemHandler struct {
	svc *appsvcs.Services
}

// NewUpsertItemHandler returns an UpsertItemHandler backed by the given services.
func NewUpsertItemHandler(svc *appsvcs.Services) *UpsertItemHandler {
	return &UpsertItemHandler{svc: svc}
}

// Execute creates or sparse-updates an item under an owned list. Every
// successful write also refreshes the parent list's updated_at.
//
//	@Summary		Upsert shopping list item
//	@Description	Creates the item when id is absent, sparse-updates it otherwise; always touches the parent list
//	@Tags			shopping-list-items
//	@Accept			json
//	@Produce		json
//	@Param			listID	path		string				true	"Parent list ID"
//	@Param			request	body		UpsertItemRequest	true	"Item upsert request"
//	@Success		200		{object}	UpsertItemData
//	@Success		201		{object}	UpsertItemData
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shopping-lists/{listID}/items [put]
func (h *UpsertItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, httpx.CodeUnauthorized, "authentication required")
		return
	}

	listID, ok := uuidParam(w, r, "listID")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpsertItemRequest](w, r)
	if !ok {
		return
	}

	// Name is required on the create path only; on updates a missing name
	// means "leave unchanged".
	if req.ID == nil && req.Name == nil {
		httpx.JSONValidationError(w, map[string]string{"name": "This field is required"})
		return
	}

	item, err := h.svc.Item.Upsert(r.Context(), ownerID, listID, appsvcs.UpsertItemInput{
		ID:            req.ID,
		Name:          req.Name,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Category:      req.Category,
		Notes:         req.Notes,
		IsChecked:     req.IsChecked,
		IsAISuggested: req.IsAISuggested,
		AIContext:     req.AIContext,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	httpx.JSONData(w, status, UpsertItemData{Item: toItemResponse(item)})
}
