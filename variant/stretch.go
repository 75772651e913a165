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

import "fmt"

// Stretch is a percentage, stored in permille and clamped to [500, 2000]
// (i.e. 0.5x - 2.0x normal width).
type Stretch int

// Named stretch buckets.
const (
	UltraCondensed Stretch = 500
	ExtraCondensed Stretch = 625
	Condensed      Stretch = 750
	SemiCondensed  Stretch = 875
	NormalStretch  Stretch = 1000
	SemiExpanded   Stretch = 1125
	Expanded       Stretch = 1250
	ExtraExpanded  Stretch = 1500
	UltraExpanded  Stretch = 2000
)

// NewStretchFromRatio builds a Stretch from a ratio (1.0 == normal width),
// clamping to [0.5, 2.0].
func NewStretchFromRatio(ratio float64) Stretch {
	return clampStretch(Stretch(ratio * 1000))
}

// NewStretchFromOpenTypeCode maps an OpenType usWidthClass-style code
// (1..=9) to a Stretch, per the table in spec.md §6. Codes outside 1..=9
// clamp to the nearest end.
func NewStretchFromOpenTypeCode(code int) Stretch {
	switch {
	case code <= 1:
		return UltraCondensed
	case code == 2:
		return ExtraCondensed
	case code == 3:
		return Condensed
	case code == 4:
		return SemiCondensed
	case code == 5:
		return NormalStretch
	case code == 6:
		return SemiExpanded
	case code == 7:
		return Expanded
	case code == 8:
		return ExtraExpanded
	default: // >= 9
		return UltraExpanded
	}
}

func clampStretch(s Stretch) Stretch {
	switch {
	case s < 500:
		return 500
	case s > 2000:
		return 2000
	default:
		return s
	}
}

// Ratio returns the stretch as a ratio (1.0 == normal width).
func (s Stretch) Ratio() float64 {
	return float64(s) / 1000
}

// Distance returns the absolute ratio difference between two stretches.
func (s Stretch) Distance(other Stretch) float64 {
	d := s.Ratio() - other.Ratio()
	if d < 0 {
		d = -d
	}
	return d
}

// Round maps the stretch to the nearest named bucket using the half-open
// bands from spec.md §6.
func (s Stretch) Round() Stretch {
	switch {
	case s <= 562:
		return UltraCondensed
	case s <= 687:
		return ExtraCondensed
	case s <= 812:
		return Condensed
	case s <= 937:
		return SemiCondensed
	case s <= 1062:
		return NormalStretch
	case s <= 1187:
		return SemiExpanded
	case s <= 1374:
		return Expanded
	case s <= 1749:
		return ExtraExpanded
	default:
		return UltraExpanded
	}
}

func (s Stretch) String() string {
	return fmt.Sprintf("%.1f%%", s.Ratio()*100)
}
