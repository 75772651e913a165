// seehuhn.de/go/fontbook - a font catalog and variant-matching core
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package variant

import "math"

// SlantAxisKind distinguishes the three shapes a slant/italic axis can
// take.
type SlantAxisKind int

const (
	// SlantNone means the face has neither a slnt nor an ital axis.
	SlantNone SlantAxisKind = iota
	// SlantSlnt means the face has a continuous slnt axis, in degrees.
	// Negative values are right-leaning (italic/oblique).
	SlantSlnt
	// SlantItal means the face has a binary ital axis.
	SlantItal
)

// SlantAxis describes a variable font's slant/italic axis, if it has one.
type SlantAxis struct {
	Kind SlantAxisKind

	// Valid when Kind == SlantSlnt.
	Min, Max, Default int

	// Valid when Kind == SlantItal.
	DefaultItalic bool
}

// CanProduceSlant reports whether a Slnt axis is capable of producing a
// right-leaning (italic/oblique) instance, i.e. either endpoint is
// negative.
func (a SlantAxis) CanProduceSlant() bool {
	return a.Kind == SlantSlnt && (a.Min < 0 || a.Max < 0)
}

// OpticalSizeAxisKind distinguishes whether a face has an opsz axis.
type OpticalSizeAxisKind int

const (
	OpticalSizeNone OpticalSizeAxisKind = iota
	OpticalSizeOpsz
)

// OpticalSizeAxis describes a variable font's optical-size axis, if it has
// one. Values are floating-point points. Equality and hashing (via Key)
// are by bit-pattern, so that NaN and exact-precision values round-trip
// and the type remains usable as a map key component.
type OpticalSizeAxis struct {
	Kind              OpticalSizeAxisKind
	Min, Max, Default float32
}

// Key returns a value suitable for use as a map key or equality comparison
// that is stable under IEEE bit-pattern identity rather than float
// equality (so NaN compares equal to itself and -0/+0 compare distinct,
// matching the bits that were actually stored).
func (a OpticalSizeAxis) Key() [4]uint32 {
	if a.Kind != OpticalSizeOpsz {
		return [4]uint32{}
	}
	return [4]uint32{
		1,
		math.Float32bits(a.Min),
		math.Float32bits(a.Max),
		math.Float32bits(a.Default),
	}
}
