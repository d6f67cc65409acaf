// Package pdf renders shipping labels as a PDF document, one page per
// package, mirroring the printed label layout: the address block on top,
// then the item table and the package's delivery detail lines.
package pdf

import (
	"fmt"
	"io"

	"woolabels/internal/core/domain/model/order"
	"woolabels/internal/core/ports"

	"github.com/jung-kurt/gofpdf"
)

const (
	leftColumnWidth  = 95.0
	rightColumnWidth = 95.0
	lineHeight       = 6.0
	quantityWidth    = 22.0
	eanWidth         = 35.0
)

// LabelWriter renders order aggregates into a printable label document.
// The barcode provider is optional; nil leaves the EAN column empty.
type LabelWriter struct {
	eanProvider ports.EANProvider
}

// NewLabelWriter creates a writer without barcode resolution.
func NewLabelWriter() *LabelWriter {
	return &LabelWriter{}
}

// NewLabelWriterWithEANs creates a writer resolving barcodes through the
// given provider.
func NewLabelWriterWithEANs(eanProvider ports.EANProvider) *LabelWriter {
	return &LabelWriter{eanProvider: eanProvider}
}

// Write renders all packages of all orders into out, one A4 page per
// package in order and package sequence.
func (w *LabelWriter) Write(out io.Writer, orders []*order.Order) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator keeps à and € printable.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		for i, pkg := range o.Packages() {
			w.writeLabel(pdf, tr, o, i, pkg)
		}
	}

	return pdf.Output(out)
}

func (w *LabelWriter) writeLabel(pdf *gofpdf.Fpdf, tr func(string) string, o *order.Order, index int, pkg order.Package) {
	pdf.AddPage()

	header := [][2]string{
		{fmt.Sprintf("Ordine N.: %d", o.ID()), "Indirizzo:"},
		{"Data: " + o.OrderDate(), o.CustomerName()},
		{"Tel.: " + o.Phone(), o.AddressLine1()},
		{"", o.AddressLine2()},
		{"", "Milano, " + o.Postcode()},
		{"", "Italia"},
		{"", fmt.Sprintf("%d collo/i", len(o.Packages()))},
	}

	pdf.SetFont("Helvetica", "B", 12)
	for row, line := range header {
		if row == 1 {
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.Cell(leftColumnWidth, lineHeight, tr(line[0]))
		pdf.Cell(rightColumnWidth, lineHeight, tr(line[1]))
		pdf.Ln(lineHeight)
	}
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(quantityWidth, lineHeight, tr("Quantità"))
	pdf.Cell(leftColumnWidth, lineHeight, "Prodotto")
	pdf.Cell(eanWidth, lineHeight, "EAN")
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range pkg {
		pdf.Cell(quantityWidth, lineHeight, fmt.Sprintf("%d", item.Quantity()))
		pdf.Cell(leftColumnWidth, lineHeight, tr(item.ProductName()))
		pdf.Cell(eanWidth, lineHeight, w.ean(item.ProductName()))
		pdf.Ln(lineHeight)
	}
	pdf.Ln(lineHeight)

	for _, detail := range o.DeliveryDetails(index) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(quantityWidth+leftColumnWidth, lineHeight, tr(detail.Name))
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(eanWidth, lineHeight, tr(detail.Data))
		pdf.Ln(lineHeight)
	}
}

func (w *LabelWriter) ean(productName string) string {
	if w.eanProvider == nil {
		return ""
	}

	ean, ok := w.eanProvider.EAN(productName)
	if !ok {
		return ""
	}
	return ean
}
