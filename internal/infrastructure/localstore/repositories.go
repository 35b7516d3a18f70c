package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/obrasur/remitos-api/internal/domain"
	"github.com/obrasur/remitos-api/internal/domain/entity"
	"github.com/obrasur/remitos-api/internal/domain/repository"
	"github.com/obrasur/remitos-api/internal/infrastructure/kvstore"
)

var (
	_ repository.UserRepository    = (*Collection[entity.User])(nil)
	_ repository.WorkRepository    = (*Collection[entity.Work])(nil)
	_ repository.RemitoRepository  = (*Collection[entity.Remito])(nil)
	_ repository.SessionRepository = (*SessionRepo)(nil)
)

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(kv kvstore.KV) *Collection[entity.User] {
	return NewCollection[entity.User](kv, KeyUsers)
}

// NewWorkRepository construye el adaptador de persistencia para obras.
func NewWorkRepository(kv kvstore.KV) *Collection[entity.Work] {
	return NewCollection[entity.Work](kv, KeyWorks)
}

// NewRemitoRepository construye el adaptador de persistencia para remitos.
func NewRemitoRepository(kv kvstore.KV) *Collection[entity.Remito] {
	return NewCollection[entity.Remito](kv, KeyRemitos)
}

// SessionRepo persiste la sesión activa como un único usuario serializado.
type SessionRepo struct {
	kv kvstore.KV
}

// NewSessionRepository construye el adaptador de sesión.
func NewSessionRepository(kv kvstore.KV) *SessionRepo {
	return &SessionRepo{kv: kv}
}

// Get devuelve el usuario de la sesión persistida, o nil si no hay sesión.
func (s *SessionRepo) Get(ctx context.Context) (*entity.User, error) {
	raw, err := s.kv.Get(ctx, KeySession)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: decodificar sesión: %v", domain.ErrStorage, err)
	}
	return &u, nil
}

// Put reemplaza el snapshot de sesión con user.
func (s *SessionRepo) Put(ctx context.Context, user entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: codificar sesión: %v", domain.ErrStorage, err)
	}
	if err := s.kv.Put(ctx, KeySession, raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// Clear borra la sesión persistida.
func (s *SessionRepo) Clear(ctx context.Context) error {
	if err := s.kv.Put(ctx, KeySession, nil); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}
