package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrasur/remitos-api/internal/application/export"
	"github.com/obrasur/remitos-api/internal/domain/entity"
)

func TestCSVProjection_RowFormat(t *testing.T) {
	remitos := []entity.Remito{
		{
			Number:        "REM-20240615-001",
			Origin:        entity.OriginFactory,
			DestinationID: "work-1",
			CreatedByID:   "user-1",
			Status:        entity.StatusPending,
			CreatedAt:     time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
			Items: []entity.RemitoItem{
				{Name: "Bolsas de Cemento", Quantity: 50},
				{Name: "Arena", Quantity: 2},
			},
		},
	}
	works := []entity.Work{{ID: "work-1", Name: "Obra Central"}}
	users := []entity.User{{ID: "user-1", Name: "Admin User"}}

	data, err := export.CSVProjection(remitos, works, users)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Numero,Fecha,Origen,Destino,Creado Por,Estado,Items", lines[0])
	assert.Equal(t, "REM-20240615-001,15/06/2024,factory,Obra Central,Admin User,pending,Bolsas de Cemento (x50); Arena (x2)", lines[1])
}

func TestCSVProjection_DanglingReferencesDegrade(t *testing.T) {
	remitos := []entity.Remito{
		{
			Number:        "REM-20240615-001",
			Origin:        entity.OriginWarehouse,
			DestinationID: "obra-borrada",
			CreatedByID:   "usuario-borrado",
			Status:        entity.StatusReceived,
			CreatedAt:     time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
			Items:         []entity.RemitoItem{{Name: "Ladrillos", Quantity: 1000}},
		},
	}

	data, err := export.CSVProjection(remitos, nil, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], export.Placeholder+","+export.Placeholder, "las referencias colgantes muestran el marcador")
}

func TestCSVProjection_EmptySetStillHasHeaders(t *testing.T) {
	data, err := export.CSVProjection(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Numero,Fecha,Origen,Destino,Creado Por,Estado,Items", strings.TrimSpace(string(data)))
}
