package handlers

import (
	"net/http"

	"github.com/ghuser/cartloom/pkg/auth"
	"github.com/ghuser/cartloom/pkg/errhttp"
	"github.com/ghuser/cartloom/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartloom/pkg/validator"
	appsvcs "github.com/ghuser/cartloom/services/shoppinglist/application/services"
)

// UpdateListRequest is the request body for PATCH /shopping-lists/{listID}.
// All fields are optional; omitted fields are left untouched.
type UpdateListRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=255"`
	StoreName  *string `json:"store_name" validate:"omitempty,max=255"`
	Notes      *string `json:"notes" validate:"omitempty,max=2000"`
	IsArchived *bool   `json:"is_archived"`
} // @name UpdateListRequest

// UpdateListData is the data half of a successful update envelope.
type UpdateListData struct {
	List ListResponse `json:"list"`
} // @name UpdateListData

// UpdateListHandler handles PATCH /shopping-lists/{listID} requests.
type UpdateListHandler struct {
	svc *appsvcs.Services
}

// NewUpdateListHandler returns an UpdateListHandler backed by the given services.
func NewUpdateListHandler(svc *appsvcs.Services) *UpdateListHandler {
	return &UpdateListHandler{svc: svc}
}

// Execute applies a sparse update to a shopping list.
//
//	@Summary		Update shopping list
//	@Description	Applies only the provided fields; archiving hides the list from default listings
//	@Tags			shopping-lists
//	@Accept			json
//	@Produce		json
//	@Param			listID	path		string				true	"List ID"
//	@Param			request	body		UpdateListRequest	true	"Sparse update"
//	@Success		200		{object}	UpdateListData
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shopping-lists/{listID} [patch]
func (h *UpdateListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, httpx.CodeUnauthorized, "authentication required")
		return
	}

	listID, ok := uuidParam(w, r, "listID")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateListRequest](w, r)
	if !ok {
		return
	}

	list, err := h.svc.List.Update(r.Context(), ownerID, listID, appsvcs.UpdateListInput{
		Name:       req.Name,
		StoreName:  req.StoreName,
		Notes:      req.Notes,
		IsArchived: req.IsArchived,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONData(w, http.StatusOK, UpdateListData{List: toListResponse(list)})
}
