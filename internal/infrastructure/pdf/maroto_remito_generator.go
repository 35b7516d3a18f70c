// Package pdf implementa la versión imprimible de un remito con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: REMITO + Número  │  Fecha + Estado                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIGEN / DESTINO: obra, dirección, creado por               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Material | Observaciones | Fotos              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: emisor | receptor (imágenes embebidas)              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/obrasur/remitos-api/internal/application/export"
	"github.com/obrasur/remitos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas legibles para los valores de enumeración del remito.
var (
	originLabels = map[string]string{
		entity.OriginFactory:   "Fábrica",
		entity.OriginWarehouse: "Depósito",
	}
	statusLabels = map[string]string{
		entity.StatusPending:   "Pendiente",
		entity.StatusInTransit: "En tránsito",
		entity.StatusReceived:  "Recibido",
	}
)

// MarotoRemitoGenerator implementa export.RemitoPDFGenerator usando Maroto v2.
type MarotoRemitoGenerator struct{}

var _ export.RemitoPDFGenerator = (*MarotoRemitoGenerator)(nil)

// NewMarotoRemitoGenerator construye el generador.
func NewMarotoRemitoGenerator() *MarotoRemitoGenerator { return &MarotoRemitoGenerator{} }

// GenerateRemitoPDF genera el PDF y devuelve sus bytes. work y creator pueden
// ser nil si la referencia no resuelve; se muestra el marcador en su lugar.
func (g *MarotoRemitoGenerator) GenerateRemitoPDF(
	_ context.Context,
	remito *entity.Remito,
	work *entity.Work,
	creator *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Remito "+remito.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(remito))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(destinationRow(remito, work, creator))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(remito.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(signatureRows(remito)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título y número (izq), fecha y estado (der).
func headerRow(remito *entity.Remito) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("REMITO", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(remito.Number, props.Text{
				Size: 10, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+remito.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Top: 2, Align: align.Right,
			}),
			text.New("Estado: "+label(statusLabels, remito.Status), props.Text{
				Size: 9, Top: 8, Align: align.Right, Style: fontstyle.Bold,
			}),
		),
	)
}

// destinationRow: origen, obra destino con dirección y creador.
func destinationRow(remito *entity.Remito, work *entity.Work, creator *entity.User) core.Row {
	destName := export.Placeholder
	destAddress := ""
	if work != nil {
		destName = work.Name
		destAddress = work.Address
	}
	creatorName := export.Placeholder
	if creator != nil {
		creatorName = creator.Name
	}
	return row.New(16).Add(
		col.New(4).Add(
			text.New("Origen", props.Text{Size: 8, Color: colorGray}),
			text.New(label(originLabels, remito.Origin), props.Text{Size: 10, Top: 5, Style: fontstyle.Bold}),
		),
		col.New(4).Add(
			text.New("Destino", props.Text{Size: 8, Color: colorGray}),
			text.New(destName, props.Text{Size: 10, Top: 5, Style: fontstyle.Bold}),
			text.New(destAddress, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Creado por", props.Text{Size: 8, Color: colorGray}),
			text.New(creatorName, props.Text{Size: 10, Top: 5}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant.", props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(5).Add(text.New("Material", props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(4).Add(text.New("Observaciones", props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(1).Add(text.New("Fotos", props.Text{Style: fontstyle.Bold, Size: 9})),
	)
}

func tableItemRows(items []entity.RemitoItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 9})),
			col.New(5).Add(text.New(it.Name, props.Text{Size: 9})),
			col.New(4).Add(text.New(it.Observations, props.Text{Size: 8, Color: colorGray})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", len(it.Photos)), props.Text{Size: 9, Align: align.Center})),
		))
	}
	return rows
}

// signatureRows: etiquetas y, si la firma existe y decodifica, su imagen.
func signatureRows(remito *entity.Remito) []core.Row {
	labels := row.New(6).Add(
		col.New(6).Add(text.New("Firma emisor", props.Text{Size: 8, Color: colorGray})),
		col.New(6).Add(text.New("Firma receptor", props.Text{Size: 8, Color: colorGray})),
	)
	images := row.New(28).Add(
		signatureCol(remito.SenderSignature),
		signatureCol(remito.ReceiverSignature),
	)
	return []core.Row{labels, images}
}

func signatureCol(dataURL string) core.Col {
	raw, ext, ok := decodeDataURL(dataURL)
	if !ok {
		return col.New(6).Add(text.New("(sin firma)", props.Text{Size: 8, Color: colorGray, Top: 10}))
	}
	return image.NewFromBytesCol(6, raw, ext, props.Rect{
		Center: false, Percent: 80, Top: 2,
	})
}

// decodeDataURL separa el payload base64 de un data-URL de imagen. El núcleo
// trata las firmas como opacas; decodificarlas es asunto de esta capa de
// presentación.
func decodeDataURL(dataURL string) ([]byte, extension.Type, bool) {
	if dataURL == "" {
		return nil, extension.Png, false
	}
	head, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return nil, extension.Png, false
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, extension.Png, false
	}
	ext := extension.Png
	if strings.Contains(head, "image/jpeg") || strings.Contains(head, "image/jpg") {
		ext = extension.Jpg
	}
	return raw, ext, true
}

func label(labels map[string]string, value string) string {
	if l, ok := labels[value]; ok {
		return l
	}
	return value
}
