// Package units implements the dimension checker: a registry of unit
// symbols and a bottom-up DimState fold over expressions. The checker is
// advisory-complete: it reports every statically provable mismatch and
// stays silent wherever a dimension cannot be determined.
package units

import (
	"fmt"
	"strings"
)

// Dim is an exponent vector over the five base dimensions. Multiplication
// adds vectors, division subtracts them; equal vectors are comparable with
// plain ==.
type Dim struct {
	Length int8
	Time   int8
	Mass   int8
	Angle  int8
	Pixel  int8
}

// IsZero reports whether the dimension is dimensionless.
func (d Dim) IsZero() bool {
	return d == Dim{}
}

// Add returns the element-wise sum, the dimension of a product.
func (d Dim) Add(o Dim) Dim {
	return Dim{
		Length: d.Length + o.Length,
		Time:   d.Time + o.Time,
		Mass:   d.Mass + o.Mass,
		Angle:  d.Angle + o.Angle,
		Pixel:  d.Pixel + o.Pixel,
	}
}

// Sub returns the element-wise difference, the dimension of a quotient.
func (d Dim) Sub(o Dim) Dim {
	return Dim{
		Length: d.Length - o.Length,
		Time:   d.Time - o.Time,
		Mass:   d.Mass - o.Mass,
		Angle:  d.Angle - o.Angle,
		Pixel:  d.Pixel - o.Pixel,
	}
}

// String renders the vector for diagnostics: 무차원, 길이, 길이·시간^-1, …
func (d Dim) String() string {
	if d.IsZero() {
		return "무차원"
	}
	parts := make([]string, 0, 5)
	for _, b := range []struct {
		name string
		exp  int8
	}{
		{"길이", d.Length},
		{"시간", d.Time},
		{"질량", d.Mass},
		{"각도", d.Angle},
		{"화소", d.Pixel},
	} {
		switch {
		case b.exp == 0:
		case b.exp == 1:
			parts = append(parts, b.name)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", b.name, b.exp))
		}
	}
	return strings.Join(parts, "·")
}

// DimState is the inference result for one expression: a known dimension
// vector, or Unknown when the expression is dimensionally opaque.
type DimState struct {
	Known bool
	Dim   Dim
}

// Unknown is the opaque state. Calls, field accesses, packs, templates,
// formulas and pipeline stages all produce it.
func Unknown() DimState {
	return DimState{}
}

// Dimensionless is the known zero vector, the state of every bare numeric
// literal and of boolean results.
func Dimensionless() DimState {
	return DimState{Known: true}
}

// Of wraps a known dimension vector.
func Of(d Dim) DimState {
	return DimState{Known: true, Dim: d}
}

func (s DimState) String() string {
	if !s.Known {
		return "미상"
	}
	return s.Dim.String()
}
