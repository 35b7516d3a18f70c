// Package export construye proyecciones de solo lectura de los remitos ya
// cargados: la tabla CSV del listado y el documento imprimible de un remito.
// Las referencias colgantes (obra o usuario borrados) degradan a un
// marcador "N/A" en lugar de abortar la operación.
package export

import (
	"context"

	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// Placeholder valor mostrado cuando una referencia no resuelve.
const Placeholder = "N/A"

// RemitoPDFGenerator genera el documento imprimible de un remito.
// work y creator pueden ser nil si la referencia no resuelve.
type RemitoPDFGenerator interface {
	GenerateRemitoPDF(ctx context.Context, remito *entity.Remito, work *entity.Work, creator *entity.User) ([]byte, error)
}
