// Package product models the auxiliary product catalog export: one
// semicolon-delimited row per product, fifteen positional columns. The
// catalog is optional and serves barcode lookups for label rendering.
package product

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"woolabels/internal/core/domain/model/kernel"
	"woolabels/internal/pkg/errs"
)

// FieldCount is the number of positional columns in the catalog schema.
const FieldCount = 15

// Positional columns of the catalog schema.
const (
	colID = iota
	colCategory
	colProvenance
	colNetWeight
	colProductType
	colDepartureCode
	colProductName
	colPrice
	colUnit
	colVAT
	colDepartment
	colPLUCode
	colEAN12
	colEAN13Own
	colEAN13Vendor
)

// Row is one product of the catalog. Monetary text (the price column) keeps
// its verbatim formatting; EAN columns may be empty.
type Row struct {
	ID            uint32
	Category      string
	Provenance    string
	NetWeight     float64
	ProductType   uint32
	DepartureCode string
	ProductName   string
	Price         string
	Unit          string
	VAT           string
	Department    uint32
	PLUCode       string
	EAN12         string
	EAN13Own      string
	EAN13Vendor   string
}

// Catalog is the parsed product dataset with name-based lookups.
// It implements ports.EANProvider.
type Catalog struct {
	rows []Row
}

// ParseCatalog reads a whole catalog export. The first line is the header
// and is skipped; like the order export, the parse is all-or-nothing and
// the first malformed row aborts it with a *errs.RowParseError.
func ParseCatalog(data string) (*Catalog, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	var rows []Row
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, errs.NewRowParseError(line, record, err)
		}
		if line == 1 {
			continue
		}

		row, rowErr := newRow(record)
		if rowErr != nil {
			return nil, errs.NewRowParseError(line, record, rowErr)
		}
		rows = append(rows, row)
	}

	return &Catalog{rows: rows}, nil
}

func newRow(record []string) (Row, error) {
	if len(record) < FieldCount {
		return Row{}, errs.NewFieldParseError("record", fmt.Sprintf("%d columns", len(record)),
			fmt.Errorf("expected %d columns", FieldCount))
	}

	id, err := kernel.ParseUintField("id", record[colID])
	if err != nil {
		return Row{}, err
	}

	netWeight, err := kernel.ParseDecimalField("net_weight", record[colNetWeight])
	if err != nil {
		return Row{}, err
	}

	productType, err := kernel.ParseUintField("type", record[colProductType])
	if err != nil {
		return Row{}, err
	}

	department, err := kernel.ParseUintField("department", record[colDepartment])
	if err != nil {
		return Row{}, err
	}

	return Row{
		ID:            id,
		Category:      record[colCategory],
		Provenance:    record[colProvenance],
		NetWeight:     netWeight,
		ProductType:   productType,
		DepartureCode: record[colDepartureCode],
		ProductName:   record[colProductName],
		Price:         record[colPrice],
		Unit:          record[colUnit],
		VAT:           record[colVAT],
		Department:    department,
		PLUCode:       record[colPLUCode],
		EAN12:         record[colEAN12],
		EAN13Own:      record[colEAN13Own],
		EAN13Vendor:   record[colEAN13Vendor],
	}, nil
}

// Rows returns the products in file order.
func (c *Catalog) Rows() []Row {
	return c.rows
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.rows)
}

// Get returns the first catalog row whose product name matches exactly.
func (c *Catalog) Get(productName string) (Row, bool) {
	for _, row := range c.rows {
		if row.ProductName == productName {
			return row, true
		}
	}

	return Row{}, false
}

// EAN resolves a product name to its barcode, preferring the vendor EAN-13,
// then the own EAN-13, then the 12-character code. Returns false when the
// product is unknown or carries no code at all.
func (c *Catalog) EAN(productName string) (string, bool) {
	row, ok := c.Get(productName)
	if !ok {
		return "", false
	}

	for _, ean := range []string{row.EAN13Vendor, row.EAN13Own, row.EAN12} {
		if ean != "" {
			return ean, true
		}
	}

	return "", false
}
