package services

import (
	"github.com/ghuser/cartloom/pkg/app"
	"github.com/ghuser/cartloom/pkg/cache"
	"github.com/ghuser/cartloom/services/shoppinglist/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	List *ListService
	Item *ItemService
}

// New wires all shopping list application services with infrastructure from
// the Application container.
func New(a *app.Application) *Services {
	listRepo := postgres.NewListRepository(a.Db, a.EventBus)
	itemRepo := postgres.NewItemRepository(a.Db, a.EventBus)
	listCache := cache.NewListCache(a.Redis)
	return &Services{
		List: NewListService(listRepo, itemRepo, listCache, a.Logger.ToSlog()),
		Item: NewItemService(itemRepo, listCache),
	}
}
