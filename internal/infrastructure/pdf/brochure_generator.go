// Package pdf implementa la ficha técnica imprimible de un vehículo
// (la hoja que el concesionario pega en la ventanilla o entrega al cliente).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: CSE Motors          │  Año Marca Modelo            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Clasificación / Año / Millaje / Color               │
//	│  DESCRIPCIÓN: texto libre del vehículo                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIO destacado                                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/cse-motors/internal/application/ports"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.BrochureGenerator = (*MarotoBrochureGenerator)(nil)

// MarotoBrochureGenerator implementa ports.BrochureGenerator usando Maroto v2.
type MarotoBrochureGenerator struct {
	dealerName string
}

// NewMarotoBrochureGenerator construye el generador con el nombre del concesionario.
func NewMarotoBrochureGenerator(dealerName string) *MarotoBrochureGenerator {
	return &MarotoBrochureGenerator{dealerName: dealerName}
}

// GenerateBrochure genera el PDF de la ficha y devuelve sus bytes.
func (g *MarotoBrochureGenerator) GenerateBrochure(_ context.Context, v *entity.Vehicle) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(v.DisplayName(), true).
		WithAuthor(g.dealerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(specRows(v)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(descriptionRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(priceRow(v))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del concesionario (izq) y título del vehículo (der).
func (g *MarotoBrochureGenerator) headerRow(v *entity.Vehicle) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(g.dealerName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Vehicle specification sheet", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(v.DisplayName(), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(v.ClassificationName, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// specRows: pares etiqueta/valor con los datos duros del vehículo.
func specRows(v *entity.Vehicle) []core.Row {
	spec := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorPrimary,
			})),
			col.New(9).Add(text.New(value, props.Text{Size: 9, Top: 1})),
		)
	}
	return []core.Row{
		spec("Make", v.Make),
		spec("Model", v.Model),
		spec("Year", strconv.Itoa(v.Year)),
		spec("Mileage", formatMiles(v.Miles)+" miles"),
		spec("Color", v.Color),
		spec("Classification", v.ClassificationName),
	}
}

// descriptionRow: texto libre del vehículo.
func descriptionRow(v *entity.Vehicle) core.Row {
	return row.New(28).Add(
		col.New(12).Add(
			text.New("DESCRIPTION", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(v.Description, props.Text{Size: 9, Top: 7}),
		),
	)
}

// priceRow: precio destacado a la derecha.
func priceRow(v *entity.Vehicle) core.Row {
	return row.New(14).Add(
		col.New(6).Add(text.New("PRICE", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
		col.New(6).Add(text.New("$"+v.Price.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}

// formatMiles agrega separador de miles ("34250" -> "34,250").
func formatMiles(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
