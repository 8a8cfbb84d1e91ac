package service

import (
	"github.com/MKhiriev/stock-keeper/internal/config"
	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/store"
)

// Services aggregates all business-logic services for injection into the
// transport layer.
type Services struct {
	AuthService AuthService
	ItemService ItemService
	LotService  LotService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		ItemService: NewItemService(storages.ItemRepository, logger),
		LotService:  NewLotService(storages.LotRepository, logger),
	}
}
