package model

import (
	"fmt"

	"github.com/alecthomas/units"
	"github.com/shopspring/decimal"
)

// Unit is a decimal (SI) size unit as printed by the model listing.
type Unit string

const (
	// UnitMB is 10^6 bytes.
	UnitMB Unit = "MB"
	// UnitGB is 10^9 bytes.
	UnitGB Unit = "GB"
	// UnitTB is 10^12 bytes.
	UnitTB Unit = "TB"
)

// Units are the known units, largest first.
var Units = []Unit{UnitTB, UnitGB, UnitMB}

// Bytes returns the number of bytes in one unit.
func (u Unit) Bytes() units.MetricBytes {
	switch u {
	case UnitMB:
		return units.Megabyte
	case UnitGB:
		return units.Gigabyte
	case UnitTB:
		return units.Terabyte
	}
	return 0
}

// Exponent returns the power of ten of the unit multiplier.
func (u Unit) Exponent() int32 {
	switch u {
	case UnitMB:
		return 6
	case UnitGB:
		return 9
	case UnitTB:
		return 12
	}
	return 0
}

// Validate checks the unit is a known one.
func (u Unit) Validate() error {
	switch u {
	case UnitMB, UnitGB, UnitTB:
		return nil
	}
	return fmt.Errorf("unknown unit %q: %w", string(u), ErrNotValid)
}

// Size is an exact amount of a unit, e.g. "2.7 GB".
type Size struct {
	Amount decimal.Decimal
	Unit   Unit
}

// Bytes returns the exact number of bytes of the size.
func (s Size) Bytes() decimal.Decimal {
	return s.Amount.Mul(decimal.NewFromInt(int64(s.Unit.Bytes())))
}

// String returns the size keeping the precision it was parsed with (e.g. "2.0 GB").
func (s Size) String() string {
	places := int32(0)
	if e := s.Amount.Exponent(); e < 0 {
		places = -e
	}
	return fmt.Sprintf("%s %s", s.Amount.StringFixed(places), s.Unit)
}

// ModelSize is the size of a single installed model.
type ModelSize struct {
	Name string
	Size Size
}
