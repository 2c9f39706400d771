package handlers

import (
	"net/http"

	"github.com/ghuser/cartloom/pkg/auth"
	"github.com/ghuser/cartloom/pkg/errhttp"
	"github.com/ghuser/cartloom/pkg/httpx"
	appsvcs "github.com/ghuser/cartloom/services/shoppinglist/application/services"
)

// GetListData is the data half of a successful fetch-with-items envelope.
// Items are ordered by updated_at descending.
type GetListData struct {
	List  ListResponse   `json:"list"`
	Items []ItemResponse `json:"items"`
} // @name GetListData

// GetListHandler handles GET /shopping-lists/{listID} requests.
type GetListHandler struct {
	svc *appsvcs.Services
}

// NewGetListHandler returns a GetListHandler backed by the given services.
func NewGetListHandler(svc *appsvcs.Services) *GetListHandler {
	return &GetListHandler{svc: svc}
}

// Execute fetches a list together with all of its items.
//
//	@Summary		Get shopping list with items
//	@Description	Fetches one list and all of its items, items ordered by updated_at descending
//	@Tags			shopping-lists
//	@Produce		json
//	@Param			listID	path		string	true	"List ID"
//	@Success		200		{object}	GetListData
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/shopping-lists/{listID} [get]
func (h *GetListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, httpx.CodeUnauthorized, "authentication required")
		return
	}

	listID, ok := uuidParam(w, r, "listID")
	if !ok {
		return
	}

	list, items, err := h.svc.List.GetWithItems(r.Context(), ownerID, listID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONData(w, http.StatusOK, GetListData{
		List:  toListResponse(list),
		Items: toItemResponses(items),
	})
}
