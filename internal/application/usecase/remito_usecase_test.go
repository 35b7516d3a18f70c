package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrasur/remitos-api/internal/application/dto"
	"github.com/obrasur/remitos-api/internal/application/usecase"
	"github.com/obrasur/remitos-api/internal/domain"
	"github.com/obrasur/remitos-api/internal/domain/entity"
	"github.com/obrasur/remitos-api/internal/infrastructure/kvstore"
	"github.com/obrasur/remitos-api/internal/infrastructure/localstore"
)

var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newRemitoUC(t *testing.T) (*usecase.RemitoUseCase, *localstore.Collection[entity.Remito], *time.Time) {
	t.Helper()
	repo := localstore.NewRemitoRepository(kvstore.NewMemory())
	clock := fixedNow
	uc := usecase.NewRemitoUseCase(repo, func() time.Time { return clock })
	return uc, repo, &clock
}

func bricksRequest() dto.CreateRemitoRequest {
	return dto.CreateRemitoRequest{
		Origin:        entity.OriginFactory,
		DestinationID: "work-1",
		Items:         []dto.RemitoItemRequest{{Name: "Bricks", Quantity: 1000}},
	}
}

func TestCreate_AssignsNumberAndDefaults(t *testing.T) {
	uc, _, _ := newRemitoUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, "user-1", bricksRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "REM-20240615-001", out.Number)
	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Equal(t, "user-1", out.CreatedByID)
	assert.Equal(t, fixedNow, out.CreatedAt)
	require.Len(t, out.Items, 1)
	assert.NotEmpty(t, out.Items[0].ID)
	assert.Equal(t, 1000, out.Items[0].Quantity)
}

func TestCreate_ValidationFailures(t *testing.T) {
	uc, _, _ := newRemitoUC(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateRemitoRequest
	}{
		{"sin items", dto.CreateRemitoRequest{Origin: entity.OriginFactory, DestinationID: "work-1"}},
		{"sin destino", dto.CreateRemitoRequest{Origin: entity.OriginFactory, Items: []dto.RemitoItemRequest{{Name: "Arena", Quantity: 2}}}},
		{"sin origen", dto.CreateRemitoRequest{DestinationID: "work-1", Items: []dto.RemitoItemRequest{{Name: "Arena", Quantity: 2}}}},
		{"origen desconocido", dto.CreateRemitoRequest{Origin: "barco", DestinationID: "work-1", Items: []dto.RemitoItemRequest{{Name: "Arena", Quantity: 2}}}},
		{"cantidad cero", dto.CreateRemitoRequest{Origin: entity.OriginFactory, DestinationID: "work-1", Items: []dto.RemitoItemRequest{{Name: "Arena", Quantity: 0}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, "user-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreate_BothSignaturesForceReceived(t *testing.T) {
	uc, _, _ := newRemitoUC(t)

	in := bricksRequest()
	in.SenderSignature = "data:image/png;base64,AAA"
	in.ReceiverSignature = "data:image/png;base64,BBB"

	out, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReceived, out.Status)
}

func TestNumbering_DayScopedSequenceWithoutGaps(t *testing.T) {
	uc, _, clock := newRemitoUC(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		out, err := uc.Create(ctx, "user-1", bricksRequest())
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("REM-20240615-%03d", i), out.Number)
	}

	// El día siguiente arranca de nuevo en 001, sin que lo anterior interfiera.
	*clock = fixedNow.AddDate(0, 0, 1)
	out, err := uc.Create(ctx, "user-1", bricksRequest())
	require.NoError(t, err)
	assert.Equal(t, "REM-20240616-001", out.Number)

	// Borrar un remito no libera su número: la secuencia sigue avanzando
	// a partir del sufijo más alto asignado en el día.
	second, err := uc.Create(ctx, "user-1", bricksRequest())
	require.NoError(t, err)
	assert.Equal(t, "REM-20240616-002", second.Number)
	require.NoError(t, uc.Delete(ctx, out.ID))
	out, err = uc.Create(ctx, "user-1", bricksRequest())
	require.NoError(t, err)
	assert.Equal(t, "REM-20240616-003", out.Number)
}

func TestUpdate_PatchPreservesOmittedFields(t *testing.T) {
	uc, _, _ := newRemitoUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", bricksRequest())
	require.NoError(t, err)

	status := entity.StatusInTransit
	out, err := uc.Update(ctx, created.ID, dto.UpdateRemitoRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusInTransit, out.Status)
	assert.Equal(t, created.Number, out.Number, "el número es inmutable")
	assert.Equal(t, created.CreatedAt, out.CreatedAt, "la fecha de creación es inmutable")
	assert.Equal(t, created.Origin, out.Origin)
	assert.Equal(t, created.Items, out.Items)
}

func TestUpdate_SignatureInvariant(t *testing.T) {
	uc, _, _ := newRemitoUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", bricksRequest())
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, created.Status)

	// Una sola firma no cambia el estado.
	sender := "data:image/png;base64,AAA"
	out, err := uc.Update(ctx, created.ID, dto.UpdateRemitoRequest{SenderSignature: &sender})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, out.Status)

	// Con ambas firmas el estado se fuerza a recibido.
	receiver := "data:image/png;base64,BBB"
	out, err = uc.Update(ctx, created.ID, dto.UpdateRemitoRequest{ReceiverSignature: &receiver})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReceived, out.Status)

	// Incluso pidiendo explícitamente otro estado, la invariante gana.
	pending := entity.StatusPending
	out, err = uc.Update(ctx, created.ID, dto.UpdateRemitoRequest{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReceived, out.Status)
}

func TestUpdate_UnknownIDFails(t *testing.T) {
	uc, _, _ := newRemitoUC(t)

	status := entity.StatusInTransit
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateRemitoRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Semantics(t *testing.T) {
	uc, _, _ := newRemitoUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", bricksRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Borrar un id desconocido es un no-op silencioso.
	assert.NoError(t, uc.Delete(ctx, "no-existe"))
}

func TestList_ReadsAreIdempotent(t *testing.T) {
	uc, repo, _ := newRemitoUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", bricksRequest())
	require.NoError(t, err)

	before, err := repo.GetAll(ctx)
	require.NoError(t, err)

	_, err = uc.List(ctx, dto.RemitoFilter{Status: entity.StatusPending})
	require.NoError(t, err)
	_, err = uc.GetByID(ctx, before[0].ID)
	require.NoError(t, err)

	after, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "listar y obtener no mutan la colección")
}

func seedForFilters(t *testing.T, uc *usecase.RemitoUseCase, clock *time.Time) {
	t.Helper()
	ctx := context.Background()

	mk := func(day int, createdBy, workID, status, itemName string) {
		*clock = time.Date(2024, 6, day, 12, 0, 0, 0, time.UTC)
		in := dto.CreateRemitoRequest{
			Origin:        entity.OriginWarehouse,
			DestinationID: workID,
			Items:         []dto.RemitoItemRequest{{Name: itemName, Quantity: 5}},
			Status:        status,
		}
		_, err := uc.Create(ctx, createdBy, in)
		require.NoError(t, err)
	}

	mk(10, "user-1", "work-1", entity.StatusPending, "Ladrillos")
	mk(11, "user-2", "work-2", entity.StatusInTransit, "Bolsas de Cemento")
	mk(12, "user-1", "work-1", entity.StatusPending, "Arena fina")
	mk(13, "user-2", "work-1", entity.StatusReceived, "Hierro del 8")
}

func TestList_FilterByStatusSortedDescending(t *testing.T) {
	uc, _, clock := newRemitoUC(t)
	seedForFilters(t, uc, clock)

	out, err := uc.List(context.Background(), dto.RemitoFilter{Status: entity.StatusPending})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, entity.StatusPending, r.Status)
	}
	assert.True(t, out[0].CreatedAt.After(out[1].CreatedAt), "orden descendente por fecha de creación")
}

func TestList_CombinedPredicatesIntersect(t *testing.T) {
	uc, _, clock := newRemitoUC(t)
	seedForFilters(t, uc, clock)

	// work-1 tiene tres remitos; "arena" aparece en uno solo de ellos.
	out, err := uc.List(context.Background(), dto.RemitoFilter{WorkID: "work-1", Item: "arena"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Arena fina", out[0].Items[0].Name)
}

func TestList_FilterByCreatorAndDateRange(t *testing.T) {
	uc, _, clock := newRemitoUC(t)
	seedForFilters(t, uc, clock)
	ctx := context.Background()

	out, err := uc.List(ctx, dto.RemitoFilter{UserID: "user-2"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// end_date es inclusivo hasta el fin del día: el remito del 11 a mediodía entra.
	out, err = uc.List(ctx, dto.RemitoFilter{StartDate: "2024-06-11", EndDate: "2024-06-11"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Bolsas de Cemento", out[0].Items[0].Name)

	out, err = uc.List(ctx, dto.RemitoFilter{StartDate: "2024-06-12"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = uc.List(ctx, dto.RemitoFilter{StartDate: "12/06/2024"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestList_ItemSearchIgnoresCaseAndAccents(t *testing.T) {
	uc, _, clock := newRemitoUC(t)
	ctx := context.Background()

	*clock = fixedNow
	in := dto.CreateRemitoRequest{
		Origin:        entity.OriginFactory,
		DestinationID: "work-1",
		Items:         []dto.RemitoItemRequest{{Name: "Varilla de Construcción", Quantity: 12}},
	}
	_, err := uc.Create(ctx, "user-1", in)
	require.NoError(t, err)

	for _, term := range []string{"construcción", "CONSTRUCCION", "construccion"} {
		out, err := uc.List(ctx, dto.RemitoFilter{Item: term})
		require.NoError(t, err)
		assert.Len(t, out, 1, "término %q debería coincidir", term)
	}

	out, err := uc.List(ctx, dto.RemitoFilter{Item: "cemento"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// Escenario end-to-end de referencia: dos obras, dos usuarios, un remito
// nuevo sin firmas sobre work-1.
func TestEndToEnd_FirstRemitoOfTheDay(t *testing.T) {
	kv := kvstore.NewMemory()
	works := localstore.NewWorkRepository(kv)
	users := localstore.NewUserRepository(kv)
	remitos := localstore.NewRemitoRepository(kv)
	ctx := context.Background()

	require.NoError(t, works.SaveAll(ctx, []entity.Work{
		{ID: "work-1", Name: "Obra Central", Address: "Calle Falsa 123"},
		{ID: "work-2", Name: "Depósito Norte", Address: "Av. Siempreviva 742"},
	}))
	require.NoError(t, users.SaveAll(ctx, []entity.User{
		{ID: "user-1", Email: "admin@example.com", Password: "admin123", Role: entity.RoleAdmin},
		{ID: "user-2", Email: "user@example.com", Password: "user123", Role: entity.RoleUser},
	}))

	uc := usecase.NewRemitoUseCase(remitos, func() time.Time { return fixedNow })
	out, err := uc.Create(ctx, "user-1", dto.CreateRemitoRequest{
		Origin:        entity.OriginFactory,
		DestinationID: "work-1",
		Items:         []dto.RemitoItemRequest{{Name: "Bricks", Quantity: 1000}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Equal(t, "REM-20240615-001", out.Number)
	assert.Len(t, out.Items, 1)
}
