package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/obrasur/remitos-api/internal/application/dto"
	"github.com/obrasur/remitos-api/internal/domain"
	"github.com/obrasur/remitos-api/internal/domain/entity"
	"github.com/obrasur/remitos-api/internal/domain/repository"
)

// WorkUseCase casos de uso CRUD para obras.
type WorkUseCase struct {
	repo repository.WorkRepository
}

// NewWorkUseCase construye el caso de uso.
func NewWorkUseCase(repo repository.WorkRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo}
}

// List devuelve todas las obras.
func (uc *WorkUseCase) List(ctx context.Context) ([]dto.WorkResponse, error) {
	works, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkResponse, 0, len(works))
	for _, w := range works {
		out = append(out, toWorkResponse(w))
	}
	return out, nil
}

// GetByID obtiene una obra por ID.
func (uc *WorkUseCase) GetByID(ctx context.Context, id string) (*dto.WorkResponse, error) {
	works, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range works {
		if w.ID == id {
			r := toWorkResponse(w)
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create valida nombre y dirección y persiste la obra.
func (uc *WorkUseCase) Create(ctx context.Context, in dto.CreateWorkRequest) (*dto.WorkResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	works, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	work := entity.Work{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Address:       in.Address,
		Responsible:   in.Responsible,
		AssignedUsers: orEmpty(in.AssignedUsers),
	}
	works = append(works, work)
	if err := uc.repo.SaveAll(ctx, works); err != nil {
		return nil, err
	}
	r := toWorkResponse(work)
	return &r, nil
}

// Update aplica el parche sobre la obra existente; ErrNotFound si no existe.
func (uc *WorkUseCase) Update(ctx context.Context, id string, in dto.UpdateWorkRequest) (*dto.WorkResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	works, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range works {
		if works[i].ID != id {
			continue
		}
		if in.Name != nil {
			works[i].Name = *in.Name
		}
		if in.Address != nil {
			works[i].Address = *in.Address
		}
		if in.Responsible != nil {
			works[i].Responsible = *in.Responsible
		}
		if in.AssignedUsers != nil {
			works[i].AssignedUsers = orEmpty(*in.AssignedUsers)
		}
		if err := uc.repo.SaveAll(ctx, works); err != nil {
			return nil, err
		}
		r := toWorkResponse(works[i])
		return &r, nil
	}
	return nil, domain.ErrNotFound
}

// Delete elimina por id; sin cascada, no-op si el id no existe.
func (uc *WorkUseCase) Delete(ctx context.Context, id string) error {
	works, err := uc.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := works[:0]
	for _, w := range works {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	return uc.repo.SaveAll(ctx, kept)
}

func toWorkResponse(w entity.Work) dto.WorkResponse {
	return dto.WorkResponse{
		ID:            w.ID,
		Name:          w.Name,
		Address:       w.Address,
		Responsible:   w.Responsible,
		AssignedUsers: orEmpty(w.AssignedUsers),
	}
}
