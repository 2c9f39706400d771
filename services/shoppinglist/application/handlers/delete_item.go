package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/cartloom/pkg/auth"
	"github.com/ghuser/cartloom/pkg/errhttp"
	"github.com/ghuser/cartloom/pkg/httpx"
	appsvcs "github.com/ghuser/cartloom/services/shoppinglist/application/services"
)

// DeleteItemData confirms a deletion with the removed item's id.
type DeleteItemData struct {
	DeletedID uuid.UUID `json:"deleted_id"`
} // @name DeleteItemData

// DeleteItemHandler handles DELETE /shopping-lists/{listID}/items/{itemID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item and refreshes the parent list's updated_at.
//
//	@Summary		Delete shopping list item
//	@Description	Removes one item; a miss is 404, never a silent success
//	@Tags			shopping-list-items
//	@Produce		json
//	@Param			listID	path		string	true	"Parent list ID"
//	@Param			itemID	path		string	true	"Item ID"
//	@Success		200		{object}	DeleteItemData
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/shopping-lists/{listID}/items/{itemID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, httpx.CodeUnauthorized, "authentication required")
		return
	}

	listID, ok := uuidParam(w, r, "listID")
	if !ok {
		return
	}
	itemID, ok := uuidParam(w, r, "itemID")
	if !ok {
		return
	}

	deletedID, err := h.svc.Item.Delete(r.Context(), ownerID, listID, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONData(w, http.StatusOK, DeleteItemData{DeletedID: deletedID})
}
