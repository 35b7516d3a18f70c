package export

import (
	"context"

	"github.com/obrasur/remitos-api/internal/domain/entity"
)

// PDFUseCase resuelve las referencias del remito y delega la composición del
// documento en el generador. Obra o creador ausentes se pasan como nil y el
// generador muestra el marcador en su lugar.
type PDFUseCase struct {
	works     WorkLister
	users     UserLister
	generator RemitoPDFGenerator
}

// NewPDFUseCase construye el caso de uso de impresión.
func NewPDFUseCase(works WorkLister, users UserLister, generator RemitoPDFGenerator) *PDFUseCase {
	return &PDFUseCase{works: works, users: users, generator: generator}
}

// Print genera el PDF imprimible de un remito ya cargado.
func (uc *PDFUseCase) Print(ctx context.Context, remito *entity.Remito) ([]byte, error) {
	works, err := uc.works.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var work *entity.Work
	for i := range works {
		if works[i].ID == remito.DestinationID {
			work = &works[i]
			break
		}
	}
	var creator *entity.User
	for i := range users {
		if users[i].ID == remito.CreatedByID {
			creator = &users[i]
			break
		}
	}
	return uc.generator.GenerateRemitoPDF(ctx, remito, work, creator)
}
