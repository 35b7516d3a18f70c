package repository

import (
	"context"

	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// WorkRepository define el puerto de persistencia para Work (DIP).
type WorkRepository interface {
	GetAll(ctx context.Context) ([]entity.Work, error)
	SaveAll(ctx context.Context, works []entity.Work) error
}
