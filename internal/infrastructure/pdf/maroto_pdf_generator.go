// Package pdf implementa la hoja imprimible de una orden de compra
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  N° Orden + Estado             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FECHAS: Fecha de orden / Entrega esperada                   │
//	│  PROVEEDOR: Nombre + contacto                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: Monto total de la orden                              │
//	│  NOTAS: texto libre                                          │
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

	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa usecase.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrderPDF genera la hoja de la orden y devuelve sus bytes.
// supplier puede ser nil cuando la orden no tiene proveedor asignado.
func (g *MarotoPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.PurchaseOrder,
	supplier *entity.Supplier,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+order.OrderNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datesRow(order))
	m.AddRows(supplierRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))
	if order.Notes != nil && *order.Notes != "" {
		m.AddRows(notesRow(*order.Notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y número de orden + estado (der).
func headerRow(order *entity.PurchaseOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+statusLabel(order.Status), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// datesRow: fecha de orden y entrega esperada.
func datesRow(order *entity.PurchaseOrder) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Fecha de orden: %s   |   Entrega esperada: %s",
				formatDate(order.OrderDate),
				formatDate(order.ExpectedDeliveryDate),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// supplierRow: bloque del proveedor. Sin proveedor se muestra un marcador.
func supplierRow(supplier *entity.Supplier) core.Row {
	if supplier == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Sin proveedor asignado", props.Text{
				Size: 9, Top: 6, Color: colorGray,
			}),
		))
	}
	return row.New(16).Add(col.New(12).Add(
		text.New("PROVEEDOR", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(supplier.Name, props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 6,
		}),
		text.New(fmt.Sprintf("Contacto: %s   |   Email: %s   |   Tel: %s",
			orDash(supplier.ContactPerson),
			orDash(supplier.Email),
			orDash(supplier.Phone),
		), props.Text{Size: 8, Top: 12, Color: colorGray}),
	))
}

// totalRow: monto total alineado a la derecha.
func totalRow(order *entity.PurchaseOrder) core.Row {
	total := "—"
	if order.TotalAmount != nil {
		total = "$" + order.TotalAmount.StringFixed(2)
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(total, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// notesRow: notas de la orden en texto libre.
func notesRow(notes string) core.Row {
	return row.New(16).Add(col.New(12).Add(
		text.New("NOTAS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

func statusLabel(status string) string {
	switch status {
	case entity.OrderPending:
		return "Pendiente"
	case entity.OrderApproved:
		return "Aprobada"
	case entity.OrderReceived:
		return "Recibida"
	case entity.OrderCancelled:
		return "Cancelada"
	}
	return status
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02/01/2006")
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
