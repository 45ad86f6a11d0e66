package domain

import (
	"fmt"
	"strings"
)

// MeasureUnit is the unit an ingredient amount is expressed in.
// The zero value is UnitGram.
type MeasureUnit int

const (
	UnitGram MeasureUnit = iota
	UnitKilogram
	UnitMilliliter
	UnitLiter
	UnitTeaspoon
	UnitTablespoon
	UnitCup
	UnitPiece
)

var measureUnitNames = [...]string{
	UnitGram:       "gram",
	UnitKilogram:   "kilogram",
	UnitMilliliter: "milliliter",
	UnitLiter:      "liter",
	UnitTeaspoon:   "teaspoon",
	UnitTablespoon: "tablespoon",
	UnitCup:        "cup",
	UnitPiece:      "piece",
}

func (u MeasureUnit) String() string {
	if u < 0 || int(u) >= len(measureUnitNames) {
		return fmt.Sprintf("MeasureUnit(%d)", int(u))
	}
	return measureUnitNames[u]
}

// Valid reports whether u is one of the declared units.
func (u MeasureUnit) Valid() bool {
	return u >= 0 && int(u) < len(measureUnitNames)
}

// ParseMeasureUnit resolves a unit name. An empty name yields the default unit.
func ParseMeasureUnit(s string) (MeasureUnit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return UnitGram, nil
	}
	for i, n := range measureUnitNames {
		if n == name {
			return MeasureUnit(i), nil
		}
	}
	return UnitGram, fmt.Errorf("%w: %q", ErrUnknownMeasureUnit, s)
}

func (u MeasureUnit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMeasureUnit, int(u))
	}
	return []byte(u.String()), nil
}

func (u *MeasureUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseMeasureUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
