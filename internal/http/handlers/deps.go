package handlers

import (
	"packtrack/internal/repos"
	"packtrack/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	SuitcaseHandler *SuitcaseHandler
	ItemHandler     *ItemHandler
	RegistryHandler *RegistryHandler
	TransferHandler *TransferHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	suitcaseRepo := repos.NewSuitcaseRepo(db)
	itemRepo := repos.NewItemRepo(db)
	registryRepo := repos.NewRegistryRepo(db)
	transferRepo := repos.NewTransferRepo(db)

	regSvc := services.NewRegistryService(registryRepo)
	packSvc := services.NewPackingService(itemRepo, suitcaseRepo, regSvc)
	aggSvc := services.NewAggregationService(itemRepo)
	transferSvc := services.NewTransferService(transferRepo)

	return &Deps{
		SuitcaseHandler: &SuitcaseHandler{Packing: packSvc, Agg: aggSvc},
		ItemHandler:     &ItemHandler{Packing: packSvc, Agg: aggSvc},
		RegistryHandler: &RegistryHandler{Registry: regSvc},
		TransferHandler: &TransferHandler{Transfer: transferSvc},
	}
}
