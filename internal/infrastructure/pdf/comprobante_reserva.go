// Package pdf implementa la generación del comprobante de reserva en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Automotora  │  N° Reserva + Fecha                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + correo                                    │
//	│  VEHÍCULO: Marca Modelo Año | Transmisión | Combustible      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIO RESERVADO + Estado + Fecha de entrega                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Concesionario de retiro + leyenda                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ComprobanteReservaGenerator implementa usecase.ComprobantePDFGenerator usando
// Maroto v2.
type ComprobanteReservaGenerator struct{}

// NewComprobanteReservaGenerator construye el generador.
func NewComprobanteReservaGenerator() *ComprobanteReservaGenerator {
	return &ComprobanteReservaGenerator{}
}

// Generar genera el comprobante de la reserva y devuelve sus bytes.
func (g *ComprobanteReservaGenerator) Generar(reserva *entity.Reserva) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Reserva", true).
		WithAuthor("Automotora", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(reserva))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(reserva.Usuario))
	m.AddRows(vehiculoRow(reserva.Vehiculo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resumenRow(reserva))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(reserva)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la automotora (izq) y N° de reserva + fecha (der).
func headerRow(reserva *entity.Reserva) core.Row {
	fecha := reserva.FechaReserva.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Automotora", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Venta y reserva de vehículos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", reserva.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del cliente que reserva.
func clienteRow(usuario *entity.Usuario) core.Row {
	nombre, correo := "—", "—"
	if usuario != nil {
		nombre = nonEmpty(usuario.Nombre, "—")
		correo = nonEmpty(usuario.Correo, "—")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Correo: %s", nombre, correo),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// vehiculoRow: vehículo reservado con sus características.
func vehiculoRow(vehiculo *entity.Vehiculo) core.Row {
	titulo, detalle := "Vehículo no disponible", ""
	if vehiculo != nil {
		titulo = vehiculo.Modelo
		if vehiculo.Marca != nil {
			titulo = vehiculo.Marca.Nombre + " " + vehiculo.Modelo
		}
		if vehiculo.Anio > 0 {
			titulo = fmt.Sprintf("%s %d", titulo, vehiculo.Anio)
		}
		transmision, combustible := "—", "—"
		if vehiculo.Transmision != nil {
			transmision = vehiculo.Transmision.Tipo
		}
		if vehiculo.Combustible != nil {
			combustible = vehiculo.Combustible.Tipo
		}
		detalle = fmt.Sprintf("Transmisión: %s   |   Combustible: %s", transmision, combustible)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("VEHÍCULO RESERVADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detalle, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// resumenRow: precio congelado, estado y fecha de entrega.
func resumenRow(reserva *entity.Reserva) core.Row {
	estado := "pendiente"
	if reserva.Estado != nil && reserva.Estado.Estado != "" {
		estado = reserva.Estado.Estado
	}
	entrega := "por coordinar"
	if reserva.FechaEntrega != nil {
		entrega = reserva.FechaEntrega.Format("02/01/2006")
	}

	return row.New(20).Add(
		col.New(6).Add(
			text.New("Estado: "+estado, props.Text{Size: 9, Top: 2}),
			text.New("Fecha de entrega: "+entrega, props.Text{Size: 9, Top: 9}),
		),
		col.New(6).Add(
			text.New("PRECIO RESERVADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(dto.FormatearPrecio(reserva.Precio), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right,
				Color: colorPrimary, Top: 8,
			}),
		),
	)
}

// footerRows: concesionario de retiro más la leyenda de vigencia.
func footerRows(reserva *entity.Reserva) []core.Row {
	rows := []core.Row{}

	if reserva.Vehiculo != nil && reserva.Vehiculo.Concesionario != nil {
		k := reserva.Vehiculo.Concesionario
		comuna := ""
		if k.Comuna != nil {
			comuna = ", " + k.Comuna.Nombre
		}
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("RETIRO EN CONCESIONARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s — %s%s", k.Nombre, nonEmpty(k.Direccion, "—"), comuna),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este comprobante respalda la reserva del vehículo al precio indicado. "+
				"Preséntelo en el concesionario al momento de concretar la compra.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
