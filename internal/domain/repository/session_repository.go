package repository

import (
	"context"

	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// SessionRepository persiste la sesión activa como un snapshot serializado
// del usuario actual. No hay expiración ni revocación: se restaura al inicio
// del proceso y se limpia en el logout.
type SessionRepository interface {
	// Get devuelve el usuario de la sesión persistida, o nil si no hay sesión.
	Get(ctx context.Context) (*entity.User, error)
	Put(ctx context.Context, user entity.User) error
	Clear(ctx context.Context) error
}
