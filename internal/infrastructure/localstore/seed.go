package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// Seeder escribe los datos de demostración en el almacén local.
type Seeder struct {
	users   *Collection[entity.User]
	works   *Collection[entity.Work]
	remitos *Collection[entity.Remito]
	now     func() time.Time
}

// NewSeeder construye el seeder sobre las colecciones dadas.
func NewSeeder(users *Collection[entity.User], works *Collection[entity.Work], remitos *Collection[entity.Remito], now func() time.Time) *Seeder {
	if now == nil {
		now = time.Now
	}
	return &Seeder{users: users, works: works, remitos: remitos, now: now}
}

// SeedIfEmpty inserta los datos de demo solo si la colección de usuarios está
// vacía. Seguro de ejecutar en cada arranque. Devuelve true si sembró.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	existing, err := s.users.GetAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}
	return true, s.Seed(ctx)
}

// Seed escribe los datos de demo reemplazando lo que hubiera.
func (s *Seeder) Seed(ctx context.Context) error {
	works := []entity.Work{
		{ID: "work-1", Name: "Obra Central", Address: "Calle Falsa 123", AssignedUsers: []string{"user-1", "user-2"}},
		{ID: "work-2", Name: "Depósito Norte", Address: "Av. Siempreviva 742", AssignedUsers: []string{"user-2"}},
	}
	users := []entity.User{
		{ID: "user-1", Name: "Admin User", Email: "admin@example.com", Password: "admin123", Role: entity.RoleAdmin, AssignedWorks: []string{"work-1", "work-2"}},
		{ID: "user-2", Name: "Regular User", Email: "user@example.com", Password: "user123", Role: entity.RoleUser, AssignedWorks: []string{"work-1"}},
	}

	// Los remitos de demo se fechan días atrás y se numeran por su propia
	// fecha de creación, para no consumir la secuencia del día de hoy.
	twoDaysAgo := s.now().AddDate(0, 0, -2)
	oneDayAgo := s.now().AddDate(0, 0, -1)
	remitos := []entity.Remito{
		{
			ID:            "remito-1",
			Number:        fmt.Sprintf("REM-%s-001", twoDaysAgo.Format("20060102")),
			Origin:        entity.OriginFactory,
			DestinationID: "work-1",
			Items: []entity.RemitoItem{
				{ID: "item-1", Name: "Ladrillos", Quantity: 1000, Observations: "Pallet completo", Photos: []string{}},
			},
			CreatedByID:     "user-1",
			Status:          entity.StatusInTransit,
			SenderSignature: demoSignature,
			CreatedAt:       twoDaysAgo,
		},
		{
			ID:            "remito-2",
			Number:        fmt.Sprintf("REM-%s-001", oneDayAgo.Format("20060102")),
			Origin:        entity.OriginWarehouse,
			DestinationID: "work-2",
			Items: []entity.RemitoItem{
				{ID: "item-2", Name: "Bolsas de Cemento", Quantity: 50, Photos: []string{}},
				{ID: "item-3", Name: "Arena", Quantity: 2, Observations: "metros cúbicos", Photos: []string{}},
			},
			CreatedByID: "user-2",
			Status:      entity.StatusPending,
			CreatedAt:   oneDayAgo,
		},
	}

	if err := s.works.SaveAll(ctx, works); err != nil {
		return err
	}
	if err := s.users.SaveAll(ctx, users); err != nil {
		return err
	}
	return s.remitos.SaveAll(ctx, remitos)
}

// Firma de demostración: un PNG de 1x1 transparente como data-URL.
const demoSignature = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="
