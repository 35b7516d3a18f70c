package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/obrasur/remitos-api/internal/application/dto"
	"github.com/obrasur/remitos-api/internal/domain"
	"github.com/obrasur/remitos-api/internal/domain/entity"
	"github.com/obrasur/remitos-api/internal/domain/repository"
)

// dateLayout formato de las fechas de filtro (start_date / end_date).
const dateLayout = "2006-01-02"

// RemitoUseCase ciclo de vida y consulta de remitos: creación con numeración
// diaria, parche con invariante de firmas, borrado y filtrado multi-predicado.
type RemitoUseCase struct {
	repo repository.RemitoRepository
	now  func() time.Time
}

// NewRemitoUseCase construye el caso de uso. now permite fijar el reloj en tests.
func NewRemitoUseCase(repo repository.RemitoRepository, now func() time.Time) *RemitoUseCase {
	if now == nil {
		now = time.Now
	}
	return &RemitoUseCase{repo: repo, now: now}
}

// List devuelve los remitos que cumplen todos los predicados presentes del
// filtro, siempre ordenados por fecha de creación descendente. Un predicado
// ausente equivale a "coincide todo". Sin paginación.
func (uc *RemitoUseCase) List(ctx context.Context, filter dto.RemitoFilter) ([]dto.RemitoResponse, error) {
	remitos, err := uc.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RemitoResponse, 0, len(remitos))
	for _, r := range remitos {
		out = append(out, toRemitoResponse(r))
	}
	return out, nil
}

// Filtered devuelve las entidades filtradas y ordenadas; lo usan las
// proyecciones de exportación que necesitan el agregado completo.
func (uc *RemitoUseCase) Filtered(ctx context.Context, filter dto.RemitoFilter) ([]entity.Remito, error) {
	return uc.filtered(ctx, filter)
}

func (uc *RemitoUseCase) filtered(ctx context.Context, filter dto.RemitoFilter) ([]entity.Remito, error) {
	remitos, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var startDate, endDate time.Time
	if filter.StartDate != "" {
		startDate, err = time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date debe ser YYYY-MM-DD", domain.ErrValidation)
		}
	}
	if filter.EndDate != "" {
		endDate, err = time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date debe ser YYYY-MM-DD", domain.ErrValidation)
		}
		// Inclusivo hasta el fin del día.
		endDate = endDate.Add(24*time.Hour - time.Second)
	}
	item := foldSearch(filter.Item)

	matched := make([]entity.Remito, 0, len(remitos))
	for _, r := range remitos {
		if filter.WorkID != "" && r.DestinationID != filter.WorkID {
			continue
		}
		if filter.UserID != "" && r.CreatedByID != filter.UserID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if item != "" && !matchesItem(r, item) {
			continue
		}
		if filter.StartDate != "" && r.CreatedAt.Before(startDate) {
			continue
		}
		if filter.EndDate != "" && r.CreatedAt.After(endDate) {
			continue
		}
		matched = append(matched, r)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func matchesItem(r entity.Remito, folded string) bool {
	for _, it := range r.Items {
		if strings.Contains(foldSearch(it.Name), folded) {
			return true
		}
	}
	return false
}

// GetByID obtiene un remito por ID; ErrNotFound si el id no existe.
func (uc *RemitoUseCase) GetByID(ctx context.Context, id string) (*dto.RemitoResponse, error) {
	r, err := uc.getEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toRemitoResponse(*r)
	return &out, nil
}

// GetEntity obtiene el agregado completo; lo usan exportación y la capa de
// presentación para la regla de permiso de edición.
func (uc *RemitoUseCase) GetEntity(ctx context.Context, id string) (*entity.Remito, error) {
	return uc.getEntity(ctx, id)
}

func (uc *RemitoUseCase) getEntity(ctx context.Context, id string) (*entity.Remito, error) {
	remitos, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range remitos {
		if remitos[i].ID == id {
			return &remitos[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create valida la entrada, asigna id, número diario y fecha de creación,
// aplica la invariante de firmas y persiste. La existencia de la obra
// destino no se verifica aquí: una referencia colgante se tolera y se
// resuelve a "no encontrado" al mostrarse.
func (uc *RemitoUseCase) Create(ctx context.Context, createdByID string, in dto.CreateRemitoRequest) (*dto.RemitoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	remitos, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()

	remito := entity.Remito{
		ID:                uuid.New().String(),
		Number:            nextNumber(remitos, now),
		Origin:            in.Origin,
		DestinationID:     in.DestinationID,
		Items:             toItems(in.Items),
		CreatedByID:       createdByID,
		Status:            in.Status,
		SenderSignature:   in.SenderSignature,
		ReceiverSignature: in.ReceiverSignature,
		CreatedAt:         now,
	}
	remito.NormalizeStatus()

	remitos = append(remitos, remito)
	if err := uc.repo.SaveAll(ctx, remitos); err != nil {
		return nil, err
	}
	out := toRemitoResponse(remito)
	return &out, nil
}

// nextNumber deriva el número legible REM-YYYYMMDD-NNN: el sufijo es el mayor
// número de secuencia ya asignado ese día, más uno. Se toma el máximo y no el
// conteo para que un borrado intermedio no haga colisionar el próximo número.
// Lectura-cómputo-append sin locking: dos creaciones que se intercalen en el
// mismo instante pueden calcular la misma secuencia; aceptable solo porque el
// almacén es de proceso y escritor únicos. Los números asignados son
// inmutables y no se reutilizan aunque el remito dueño se elimine.
func nextNumber(remitos []entity.Remito, now time.Time) string {
	prefix := "REM-" + now.Format("20060102") + "-"
	max := 0
	for _, r := range remitos {
		if !strings.HasPrefix(r.Number, prefix) {
			continue
		}
		if n, err := strconv.Atoi(r.Number[len(prefix):]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// Update aplica el parche explícito sobre el remito existente (los campos
// nil se preservan) y re-aplica la invariante de firmas antes de persistir.
// Falla con ErrNotFound si el id no existe.
func (uc *RemitoUseCase) Update(ctx context.Context, id string, in dto.UpdateRemitoRequest) (*dto.RemitoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	remitos, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range remitos {
		if remitos[i].ID != id {
			continue
		}
		if in.Origin != nil {
			remitos[i].Origin = *in.Origin
		}
		if in.DestinationID != nil {
			remitos[i].DestinationID = *in.DestinationID
		}
		if in.Items != nil {
			remitos[i].Items = toItems(*in.Items)
		}
		if in.Status != nil {
			remitos[i].Status = *in.Status
		}
		if in.SenderSignature != nil {
			remitos[i].SenderSignature = *in.SenderSignature
		}
		if in.ReceiverSignature != nil {
			remitos[i].ReceiverSignature = *in.ReceiverSignature
		}
		remitos[i].NormalizeStatus()
		if err := uc.repo.SaveAll(ctx, remitos); err != nil {
			return nil, err
		}
		out := toRemitoResponse(remitos[i])
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

// Delete elimina por id: sin cascada ni borrado lógico. Con id ausente es un
// no-op silencioso; el pre-chequeo de existencia es cosa de la interfaz, no
// una garantía del contrato.
func (uc *RemitoUseCase) Delete(ctx context.Context, id string) error {
	remitos, err := uc.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := remitos[:0]
	for _, r := range remitos {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return uc.repo.SaveAll(ctx, kept)
}

func toItems(in []dto.RemitoItemRequest) []entity.RemitoItem {
	items := make([]entity.RemitoItem, 0, len(in))
	for _, it := range in {
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, entity.RemitoItem{
			ID:           id,
			Name:         it.Name,
			Quantity:     it.Quantity,
			Observations: it.Observations,
			Photos:       orEmpty(it.Photos),
		})
	}
	return items
}

func toRemitoResponse(r entity.Remito) dto.RemitoResponse {
	items := make([]dto.RemitoItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.RemitoItemResponse{
			ID:           it.ID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			Observations: it.Observations,
			Photos:       orEmpty(it.Photos),
		})
	}
	return dto.RemitoResponse{
		ID:                r.ID,
		Number:            r.Number,
		Origin:            r.Origin,
		DestinationID:     r.DestinationID,
		Items:             items,
		CreatedByID:       r.CreatedByID,
		Status:            r.Status,
		SenderSignature:   r.SenderSignature,
		ReceiverSignature: r.ReceiverSignature,
		CreatedAt:         r.CreatedAt,
	}
}
