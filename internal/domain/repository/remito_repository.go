package repository

import (
	"context"

	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// RemitoRepository define el puerto de persistencia para Remito (DIP).
type RemitoRepository interface {
	GetAll(ctx context.Context) ([]entity.Remito, error)
	SaveAll(ctx context.Context, remitos []entity.Remito) error
}
