package order

import (
	"fmt"

	"woolabels/internal/pkg/errs"
)

// Package is an ordered run of items shipped in one parcel.
type Package []Item

// Thresholds are the order-total brackets driving the parcel count:
//
//	total <= SingleMax              -> 1 parcel
//	SingleMax < total <= DoubleMax  -> 2 parcels
//	total > DoubleMax               -> 3 parcels
//
// This is the single place the brackets are defined; configuration layers
// construct a Thresholds instead of spreading cut-off constants around.
type Thresholds struct {
	SingleMax float64
	DoubleMax float64
}

// DefaultThresholds returns the production brackets of 40 and 70.
func DefaultThresholds() Thresholds {
	return Thresholds{SingleMax: 40, DoubleMax: 70}
}

// Validate checks that the brackets form an increasing positive sequence.
func (t Thresholds) Validate() error {
	if t.SingleMax <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("SingleMax",
			fmt.Errorf("%v is not greater than 0", t.SingleMax))
	}
	if t.DoubleMax <= t.SingleMax {
		return errs.NewValueIsInvalidErrorWithCause("DoubleMax",
			fmt.Errorf("%v is not greater than SingleMax %v", t.DoubleMax, t.SingleMax))
	}

	return nil
}

// PackageCount returns how many parcels an order of the given total value
// ships in. Bracket boundaries belong to the lower count.
func (t Thresholds) PackageCount(totalValue float64) int {
	switch {
	case totalValue <= t.SingleMax:
		return 1
	case totalValue <= t.DoubleMax:
		return 2
	default:
		return 3
	}
}

// splitIntoPackages partitions the items into up to count consecutive
// chunks of ceiling size: with a remainder every chunk but the last holds
// one extra item, and fewer than count parcels come out when count exceeds
// the item count. This is deliberate ceiling chunking, not balanced
// bin packing; item order is preserved.
func splitIntoPackages(items []Item, count int) []Package {
	if count < 1 {
		count = 1
	}

	perChunk := len(items) / count
	if len(items)%count > 0 {
		perChunk++
	}

	packages := make([]Package, 0, count)
	for start := 0; start < len(items); start += perChunk {
		end := min(start+perChunk, len(items))
		packages = append(packages, Package(items[start:end:end]))
	}

	return packages
}
