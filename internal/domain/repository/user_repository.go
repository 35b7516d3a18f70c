package repository

import (
	"context"

	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
//
// El contrato del almacén es de colección completa: cada mutación es
// leer-todo → transformar en memoria → escribir-todo. La escritura reemplaza
// el snapshot entero de la colección.
type UserRepository interface {
	GetAll(ctx context.Context) ([]entity.User, error)
	SaveAll(ctx context.Context, users []entity.User) error
}
