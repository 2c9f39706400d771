package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/cartloom/pkg/auth"
	"github.com/ghuser/cartloom/pkg/errhttp"
	"github.com/ghuser/cartloom/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartloom/pkg/validator"
	appsvcs "github.com/ghuser/cartloom/services/shoppinglist/application/services"
)

// Pagination defaults for GET /shopping-lists.
const (
	defaultPage     = 1
	defaultPageSize = 20
)

// listListsQuery carries the parsed query string of GET /shopping-lists.
// The page ceiling keeps the computed offset (page*page_size) inside int32
// range for the query layer.
type listListsQuery struct {
	Page            int  `json:"page" validate:"gte=1,lte=1000000"`
	PageSize        int  `json:"page_size" validate:"gte=1,lte=100"`
	IncludeArchived bool `json:"include_archived"`
}

// ListListsData is the data half of a successful listing envelope. Total
// counts all matching lists for the caller, independent of pagination.
type ListListsData struct {
	Items    []ListResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
} // @name ListListsData

// ListListsHandler handles GET /shopping-lists requests.
type ListListsHandler struct {
	svc *appsvcs.Services
}

// NewListListsHandler returns a ListListsHandler backed by the given services.
func NewListListsHandler(svc *appsvcs.Services) *ListListsHandler {
	return &ListListsHandler{svc: svc}
}

// Execute returns one page of the caller's lists, most recently touched first.
//
//	@Summary		List my shopping lists
//	@Description	Paginated, ordered by updated_at descending; archived lists are hidden unless include_archived=true
//	@Tags			shopping-lists
//	@Produce		json
//	@Param			page				query		int		false	"Page number (default 1, max 1000000)"
//	@Param			page_size			query		int		false	"Page size (default 20, max 100)"
//	@Param			include_archived	query		bool	false	"Include archived lists"
//	@Success		200					{object}	ListListsData
//	@Failure		401					{object}	ErrorResponse
//	@Failure		422					{object}	ErrorResponse
//	@Router			/shopping-lists [get]
func (h *ListListsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, httpx.CodeUnauthorized, "authentication required")
		return
	}

	query, ok := parseListListsQuery(w, r)
	if !ok {
		return
	}

	lists, total, err := h.svc.List.List(r.Context(), ownerID, query.Page, query.PageSize, query.IncludeArchived)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]ListResponse, len(lists))
	for i, l := range lists {
		items[i] = toListResponse(l)
	}

	httpx.JSONData(w, http.StatusOK, ListListsData{
		Items:    items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
}

// parseListListsQuery applies defaults, then validates bounds. Malformed
// numbers and out-of-range values both fail with a validation envelope
// before any data access.
func parseListListsQuery(w http.ResponseWriter, r *http.Request) (listListsQuery, bool) {
	query := listListsQuery{Page: defaultPage, PageSize: defaultPageSize}

	q := r.URL.Query()
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSONValidationError(w, map[string]string{"page": "Must be a numeric value"})
			return query, false
		}
		query.Page = n
	}
	if raw := q.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSONValidationError(w, map[string]string{"page_size": "Must be a numeric value"})
			return query, false
		}
		query.PageSize = n
	}
	if raw := q.Get("include_archived"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.JSONValidationError(w, map[string]string{"include_archived": "Must be a boolean value"})
			return query, false
		}
		query.IncludeArchived = b
	}

	if err := pkgvalidator.Validate(&query); err != nil {
		httpx.JSONValidationError(w, pkgvalidator.FormatValidationErrors(err))
		return query, false
	}
	return query, true
}
