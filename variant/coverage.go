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

// Variant is the (style, weight, stretch) triple a typesetter requests.
type Variant struct {
	Style   Style
	Weight  Weight
	Stretch Stretch
}

// Coverage describes the variant space a single face supports: a style,
// a weight and stretch field (each either static or variable), and the
// slant/optical-size axes of a variable font, if any.
type Coverage struct {
	Style           Style
	Weight          Field[Weight]
	Stretch         Field[Stretch]
	SlantAxis       SlantAxis
	OpticalSizeAxis OpticalSizeAxis
}

// Supports reports whether the face can render the requested variant
// exactly: matching style, and weight/stretch within the supported field.
func (c Coverage) Supports(v Variant) bool {
	if c.Style != v.Style {
		return false
	}
	return c.Weight.Contains(v.Weight) && c.Stretch.Contains(v.Stretch)
}

// IsVariable reports whether any axis of this coverage carries range
// information: a variable weight or stretch field, or a slant/optical-size
// axis.
func (c Coverage) IsVariable() bool {
	return c.Weight.IsVariable() || c.Stretch.IsVariable() ||
		c.SlantAxis.Kind != SlantNone || c.OpticalSizeAxis.Kind != OpticalSizeNone
}

// DefaultVariant returns the variant produced when a typesetter does not
// override any axis: the coverage's style and the default value of each
// field.
func (c Coverage) DefaultVariant() Variant {
	return Variant{
		Style:   c.Style,
		Weight:  c.Weight.DefaultValue(),
		Stretch: c.Stretch.DefaultValue(),
	}
}

// Distance computes the (style, stretch, weight) distance between this
// coverage and a requested variant. For a variable field, the distance is
// zero if the requested value lies in range, otherwise the distance to
// whichever endpoint is closer. Style distance is conditioned on the
// coverage's slant axis: a face with a slnt axis capable of negative
// (right-leaning) values can produce italic/oblique from a Normal style at
// zero distance, and a face with an ital axis can toggle normal<->italic
// at zero distance, per spec.md §4.2.
func (c Coverage) Distance(v Variant) (styleDist int, stretchDist float64, weightDist int) {
	styleDist = c.styleDistance(v.Style)
	weightDist = fieldDistance(c.Weight, v.Weight)
	stretchDist = stretchFieldDistance(c.Stretch, v.Stretch)
	return
}

func (c Coverage) styleDistance(requested Style) int {
	if c.Style == requested {
		return 0
	}
	switch c.SlantAxis.Kind {
	case SlantSlnt:
		if c.Style == Normal && (requested == Italic || requested == Oblique) &&
			c.SlantAxis.CanProduceSlant() {
			return 0
		}
	case SlantItal:
		switch {
		case c.Style == Normal && (requested == Italic || requested == Oblique):
			return 0
		case c.Style == Italic && requested == Normal:
			return 0
		}
	}
	return c.Style.Distance(requested)
}

func fieldDistance(f Field[Weight], requested Weight) int {
	if f.IsVariable() {
		min, max := f.Range()
		switch {
		case requested >= min && requested <= max:
			return 0
		case requested < min:
			return min.Distance(requested)
		default:
			return max.Distance(requested)
		}
	}
	return f.DefaultValue().Distance(requested)
}

func stretchFieldDistance(f Field[Stretch], requested Stretch) float64 {
	if f.IsVariable() {
		min, max := f.Range()
		switch {
		case requested >= min && requested <= max:
			return 0
		case requested < min:
			return min.Distance(requested)
		default:
			return max.Distance(requested)
		}
	}
	return f.DefaultValue().Distance(requested)
}
