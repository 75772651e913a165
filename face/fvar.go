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

package face

import (
	"encoding/binary"
	"math"

	"seehuhn.de/go/fontbook/variant"
)

// fvarAxes holds the decoded variation axes of a variable font that feed
// into variant matching: weight, stretch, slant and optical size. Axes not
// present in the font keep their zero value.
type fvarAxes struct {
	Weight          variant.Field[variant.Weight]
	HasWeight       bool
	Stretch         variant.Field[variant.Stretch]
	HasStretch      bool
	SlantAxis       variant.SlantAxis
	OpticalSizeAxis variant.OpticalSizeAxis
}

// readFvar decodes the "fvar" table's variation-axis records. Axes the
// catalog does not use (e.g. custom or grade axes) are ignored. Per
// spec.md §9, when both slnt and ital axes are present on the same face,
// whichever is listed last in the table wins, matching the reference
// implementation's overwrite-on-each-match axis loop.
func readFvar(data []byte) (*fvarAxes, error) {
	if len(data) < 16 {
		return nil, errMalformed
	}
	majorVersion := binary.BigEndian.Uint16(data[0:2])
	if majorVersion != 1 {
		return nil, errMalformed
	}
	axesArrayOffset := binary.BigEndian.Uint16(data[4:6])
	axisCount := int(binary.BigEndian.Uint16(data[8:10]))
	axisSize := int(binary.BigEndian.Uint16(data[10:12]))
	if axisSize < 20 {
		return nil, errMalformed
	}

	need := int(axesArrayOffset) + axisCount*axisSize
	if need > len(data) {
		return nil, errMalformed
	}

	axes := &fvarAxes{}
	for i := 0; i < axisCount; i++ {
		rec := data[int(axesArrayOffset)+i*axisSize : int(axesArrayOffset)+(i+1)*axisSize]
		tag := string(rec[0:4])
		minValue := decodeFixed(rec[4:8])
		defValue := decodeFixed(rec[8:12])
		maxValue := decodeFixed(rec[12:16])

		switch tag {
		case "wght":
			min := variant.NewWeight(int(math.Floor(minValue)))
			max := variant.NewWeight(int(math.Ceil(maxValue)))
			def := variant.NewWeight(int(math.Round(defValue)))
			axes.Weight = variant.VariableField(min, max, def)
			axes.HasWeight = true
		case "wdth":
			min := variant.NewStretchFromRatio(minValue / 100)
			max := variant.NewStretchFromRatio(maxValue / 100)
			def := variant.NewStretchFromRatio(defValue / 100)
			axes.Stretch = variant.VariableField(min, max, def)
			axes.HasStretch = true
		case "slnt":
			axes.SlantAxis = variant.SlantAxis{
				Kind:    variant.SlantSlnt,
				Min:     int(math.Floor(minValue)),
				Max:     int(math.Ceil(maxValue)),
				Default: int(math.Round(defValue)),
			}
		case "ital":
			axes.SlantAxis = variant.SlantAxis{
				Kind:          variant.SlantItal,
				DefaultItalic: defValue > 0.5,
			}
		case "opsz":
			axes.OpticalSizeAxis = variant.OpticalSizeAxis{
				Kind:    variant.OpticalSizeOpsz,
				Min:     float32(minValue),
				Max:     float32(maxValue),
				Default: float32(defValue),
			}
		}
	}

	return axes, nil
}

// decodeFixed reads a 16.16 fixed-point value, the encoding used by fvar
// axis min/default/max fields.
func decodeFixed(b []byte) float64 {
	v := int32(binary.BigEndian.Uint32(b))
	return float64(v) / 65536
}
