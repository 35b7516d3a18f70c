// Package auth implementa identidad y sesión: login por coincidencia exacta
// de credenciales y sesión persistida como snapshot serializado del usuario.
//
// La comparación de la credencial es en texto plano contra el registro
// almacenado: este núcleo no es una frontera de seguridad, es la simulación
// local de un backend futuro.
package auth

import (
	"context"

	"github.com/obrasur/remitos-api/internal/domain"
	"github.com/obrasur/remitos-api/internal/domain/entity"
	"github.com/obrasur/remitos-api/internal/domain/repository"
)

// UseCase casos de uso de autenticación y sesión.
type UseCase struct {
	users   repository.UserRepository
	session repository.SessionRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, session repository.SessionRepository) *UseCase {
	return &UseCase{users: users, session: session}
}

// Login recorre la colección de usuarios buscando coincidencia exacta de
// email y credencial. Devuelve el usuario sin la credencial y lo persiste
// como sesión activa; cualquier desajuste falla con ErrInvalidCredentials.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	users, err := uc.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			clean := u.Sanitized()
			if err := uc.session.Put(ctx, clean); err != nil {
				return nil, err
			}
			return &clean, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout limpia la sesión persistida.
func (uc *UseCase) Logout(ctx context.Context) error {
	return uc.session.Clear(ctx)
}

// Restore devuelve el usuario de la última sesión persistida, o nil si no
// hay sesión. Se invoca al inicio del proceso y en cada petición protegida.
func (uc *UseCase) Restore(ctx context.Context) (*entity.User, error) {
	return uc.session.Get(ctx)
}
