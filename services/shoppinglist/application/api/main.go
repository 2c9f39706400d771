package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cartloom/pkg/app"
	"github.com/ghuser/cartloom/services/shoppinglist/application/handlers"
	appsvcs "github.com/ghuser/cartloom/services/shoppinglist/application/services"
)

// ShoppingListRoutes registers the shopping list endpoints on the provided chi router.
func ShoppingListRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/shopping-lists", func(r chi.Router) {
		r.Post("/", handlers.NewCreateListHandler(svcs).Execute)
		r.Get("/", handlers.NewListListsHandler(svcs).Execute)
		r.Route("/{listID}", func(r chi.Router) {
			r.Get("/", handlers.NewGetListHandler(svcs).Execute)
			r.Patch("/", handlers.NewUpdateListHandler(svcs).Execute)
			r.Put("/items", handlers.NewUpsertItemHandler(svcs).Execute)
			r.Delete("/items/{itemID}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})
}
