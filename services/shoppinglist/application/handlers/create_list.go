package handlers

import (
	"net/http"

	"github.com/ghuser/cartloom/pkg/auth"
	"github.com/ghuser/cartloom/pkg/errhttp"
	"github.com/ghuser/cartloom/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartloom/pkg/validator"
	appsvcs "github.com/ghuser/cartloom/services/shoppinglist/application/services"
)

// CreateListRequest is the request body for POST /shopping-lists.
type CreateListRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=255" example:"Weekly Groceries"`
	StoreName *string `json:"store_name" validate:"omitempty,max=255" example:"Carrefour"`
	Notes     *string `json:"notes" validate:"omitempty,max=2000"`
} // @name CreateListRequest

// CreateListData is the data half of a successful creation envelope.
type CreateListData struct {
	List ListResponse `json:"list"`
} // @name CreateListData

// CreateListHandler handles POST /shopping-lists requests.
type CreateListHandler struct {
	svc *appsvcs.Services
}

// NewCreateListHandler returns a CreateListHandler backed by the given services.
func NewCreateListHandler(svc *appsvcs.Services) *CreateListHandler {
	return &CreateListHandler{svc: svc}
}

// Execute creates a new shopping list owned by the caller.
//
//	@Summary		Create shopping list
//	@Description	Creates a new shopping list owned by the authenticated user
//	@Tags			shopping-lists
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateListRequest	true	"List creation request"
//	@Success		201		{object}	CreateListData
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shopping-lists [post]
func (h *CreateListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, httpx.CodeUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateListRequest](w, r)
	if !ok {
		return
	}

	list, err := h.svc.List.Create(r.Context(), ownerID, req.Name, req.StoreName, req.Notes)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONData(w, http.StatusCreated, CreateListData{List: toListResponse(list)})
}
