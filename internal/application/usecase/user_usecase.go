package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/obrasur/remitos-api/internal/application/dto"
	"github.com/obrasur/remitos-api/internal/domain"
	"github.com/obrasur/remitos-api/internal/domain/entity"
	"github.com/obrasur/remitos-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. Cada mutación es
// leer-todo → transformar → escribir-todo sobre la colección completa.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios, sin credenciales.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID, sin credencial.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			r := toUserResponse(u)
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create valida la entrada, rechaza emails duplicados y persiste el usuario.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == in.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	user := entity.User{
		ID:            uuid.New().String(),
		Email:         in.Email,
		Name:          in.Name,
		Password:      in.Password,
		Role:          in.Role,
		AssignedWorks: orEmpty(in.AssignedWorks),
	}
	users = append(users, user)
	if err := uc.repo.SaveAll(ctx, users); err != nil {
		return nil, err
	}
	r := toUserResponse(user)
	return &r, nil
}

// Update aplica el parche sobre el usuario existente: los campos nil se
// preservan. Falla con ErrNotFound si el id no existe.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if in.Email != nil {
			users[i].Email = *in.Email
		}
		if in.Name != nil {
			users[i].Name = *in.Name
		}
		if in.Password != nil && *in.Password != "" {
			users[i].Password = *in.Password
		}
		if in.Role != nil {
			users[i].Role = *in.Role
		}
		if in.AssignedWorks != nil {
			users[i].AssignedWorks = orEmpty(*in.AssignedWorks)
		}
		if err := uc.repo.SaveAll(ctx, users); err != nil {
			return nil, err
		}
		r := toUserResponse(users[i])
		return &r, nil
	}
	return nil, domain.ErrNotFound
}

// Delete elimina por id. No hay cascada: los remitos y obras que referencien
// el id quedan con referencia colgante y se resuelven a "no encontrado" al
// mostrarse. Con id ausente es un no-op.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return uc.repo.SaveAll(ctx, kept)
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		AssignedWorks: orEmpty(u.AssignedWorks),
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
