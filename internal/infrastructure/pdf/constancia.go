// Package pdf implementa la generación de la constancia de descanso médico
// con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de emisión                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TRABAJADOR: nombre completo + documento                     │
//	│  EMPRESA: razón social + RUC                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCANSO: contingencia | diagnóstico CIE-10 | periodo      │
//	│  OBSERVACIONES                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ConstanciaGenerator genera la constancia de descanso médico en PDF.
type ConstanciaGenerator struct {
	nombreSistema string
}

// NewConstanciaGenerator construye el generador. nombreSistema aparece en el
// encabezado y en los metadatos del documento.
func NewConstanciaGenerator(nombreSistema string) *ConstanciaGenerator {
	return &ConstanciaGenerator{nombreSistema: nombreSistema}
}

// GenerarConstancia genera el PDF y devuelve sus bytes.
func (g *ConstanciaGenerator) GenerarConstancia(_ context.Context, det *entity.DescansoMedicoDetalle) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Constancia de Descanso Médico", true).
		WithAuthor(g.nombreSistema, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.nombreSistema))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(seccionRow("DATOS DEL TRABAJADOR"))
	m.AddRows(
		campoRow("Nombre completo", det.Persona),
		campoRow("Documento", det.DocumentoPersona),
	)
	m.AddRows(seccionRow("DATOS DEL EMPLEADOR"))
	m.AddRows(
		campoRow("Razón social", det.Empresa),
		campoRow("RUC", det.RUCEmpresa),
	)
	m.AddRows(seccionRow("DESCANSO MÉDICO"))
	m.AddRows(
		campoRow("Tipo de contingencia", det.TipoContingencia),
		campoRow("Diagnóstico", fmt.Sprintf("%s - %s", det.CodigoDiagnostico, det.Diagnostico)),
		campoRow("Periodo", fmt.Sprintf("del %s al %s (%d días)",
			det.FechaInicio.Format("02/01/2006"), det.FechaFin.Format("02/01/2006"), det.TotalDias)),
	)
	if det.Observacion != "" {
		m.AddRows(seccionRow("OBSERVACIONES"))
		m.AddRows(row.New(10).Add(
			col.New(12).Add(text.New(det.Observacion, props.Text{Size: 9, Color: colorGray})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar constancia: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de emisión (der).
func headerRow(nombreSistema string) core.Row {
	emision := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(8).Add(
			text.New("CONSTANCIA DE DESCANSO MÉDICO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nombreSistema, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Fecha de emisión", props.Text{Size: 8, Color: colorGray, Align: align.Right, Top: 2}),
			text.New(emision, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7}),
		),
	)
}

// seccionRow: subtítulo de sección.
func seccionRow(titulo string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
		),
	)
}

// campoRow: etiqueta (izq) y valor (der).
func campoRow(etiqueta, valor string) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(etiqueta+":", props.Text{Size: 9, Color: colorGray, Top: 1})),
		col.New(8).Add(text.New(valor, props.Text{Size: 10, Top: 1})),
	)
}
