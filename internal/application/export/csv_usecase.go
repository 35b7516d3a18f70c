package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// Encabezados de la proyección tabular, en el orden del listado original.
var csvHeaders = []string{"Numero", "Fecha", "Origen", "Destino", "Creado Por", "Estado", "Items"}

// csvDateLayout fecha legible en la exportación.
const csvDateLayout = "02/01/2006"

// CSVProjection produce la tabla delimitada a partir de colecciones ya
// cargadas. Es una función pura de sus argumentos: no toca el almacén.
func CSVProjection(remitos []entity.Remito, works []entity.Work, users []entity.User) ([]byte, error) {
	workNames := make(map[string]string, len(works))
	for _, w := range works {
		workNames[w.ID] = w.Name
	}
	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("exportar csv: %w", err)
	}
	for _, r := range remitos {
		row := []string{
			r.Number,
			r.CreatedAt.Format(csvDateLayout),
			r.Origin,
			lookup(workNames, r.DestinationID),
			lookup(userNames, r.CreatedByID),
			r.Status,
			itemSummary(r.Items),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("exportar csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar csv: %w", err)
	}
	return buf.Bytes(), nil
}

func lookup(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return Placeholder
}

// itemSummary resume los ítems como "nombre (xN)" separados por "; ".
func itemSummary(items []entity.RemitoItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", it.Name, it.Quantity))
	}
	return strings.Join(parts, "; ")
}

// WorkLister y UserLister son los puertos mínimos que necesita la exportación.
type WorkLister interface {
	GetAll(ctx context.Context) ([]entity.Work, error)
}

// UserLister lista usuarios para resolver el nombre del creador.
type UserLister interface {
	GetAll(ctx context.Context) ([]entity.User, error)
}

// CSVUseCase carga las colecciones y delega en la proyección pura.
type CSVUseCase struct {
	works WorkLister
	users UserLister
}

// NewCSVUseCase construye el caso de uso de exportación CSV.
func NewCSVUseCase(works WorkLister, users UserLister) *CSVUseCase {
	return &CSVUseCase{works: works, users: users}
}

// Export proyecta los remitos ya filtrados a la tabla delimitada.
func (uc *CSVUseCase) Export(ctx context.Context, remitos []entity.Remito) ([]byte, error) {
	works, err := uc.works.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return CSVProjection(remitos, works, users)
}
