package services

import (
	"woolabels/internal/core/domain/model/lineitem"
	"woolabels/internal/core/domain/model/order"
)

// LabelAssembler regroups the flat, file-ordered row sequence of an export
// into order aggregates.
//
// Grouping is by contiguous run of order id: a change of id starts a new
// order, and the same id reappearing later starts another, separate order.
// Exports keep an order's rows contiguous, so run-grouping preserves the
// encounter order of the file without silently merging interleaved input.
type LabelAssembler struct {
	thresholds order.Thresholds
}

// NewLabelAssembler creates an assembler using the given packaging
// thresholds.
func NewLabelAssembler(thresholds order.Thresholds) LabelAssembler {
	return LabelAssembler{thresholds: thresholds}
}

// Assemble converts the validated row sequence into order aggregates, one
// per contiguous id run, in encounter order. With multipack disabled every
// order ships as a single package regardless of its total value.
//
// Assembly is all-or-nothing: the first order that fails to build (a
// non-numeric total or item price) aborts the whole run with no partial
// result.
func (a LabelAssembler) Assemble(input lineitem.InputData, multipack bool) ([]*order.Order, error) {
	rows := input.Rows()
	orders := make([]*order.Order, 0)

	start := 0
	for i := 1; i <= len(rows); i++ {
		if i < len(rows) && rows[i].OrderID() == rows[start].OrderID() {
			continue
		}

		built, err := order.NewOrder(rows[start:i], a.thresholds, multipack)
		if err != nil {
			return nil, err
		}
		orders = append(orders, built)
		start = i
	}

	return orders, nil
}
