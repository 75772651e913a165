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
	"testing"

	"seehuhn.de/go/fontbook/variant"
)

type fvarAxisSpec struct {
	tag           string
	min, def, max float64
}

func encodeFixed(v float64) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(int32(v*65536)))
	return out
}

func buildFvar(axes []fvarAxisSpec) []byte {
	const axisSize = 20
	buf := make([]byte, 16+axisSize*len(axes))
	binary.BigEndian.PutUint16(buf[0:2], 1) // majorVersion
	binary.BigEndian.PutUint16(buf[4:6], 16) // axesArrayOffset
	binary.BigEndian.PutUint16(buf[8:10], uint16(len(axes)))
	binary.BigEndian.PutUint16(buf[10:12], axisSize)

	for i, a := range axes {
		rec := buf[16+i*axisSize : 16+(i+1)*axisSize]
		copy(rec[0:4], a.tag)
		copy(rec[4:8], encodeFixed(a.min))
		copy(rec[8:12], encodeFixed(a.def))
		copy(rec[12:16], encodeFixed(a.max))
	}
	return buf
}

func TestReadFvarWeight(t *testing.T) {
	data := buildFvar([]fvarAxisSpec{{"wght", 200, 400, 700}})
	axes, err := readFvar(data)
	if err != nil {
		t.Fatalf("readFvar: %v", err)
	}
	if !axes.HasWeight {
		t.Fatal("expected HasWeight")
	}
	min, max := axes.Weight.Range()
	if min != 200 || max != 700 || axes.Weight.DefaultValue() != 400 {
		t.Errorf("weight field = [%v,%v] default %v", min, max, axes.Weight.DefaultValue())
	}
}

func TestReadFvarWidth(t *testing.T) {
	data := buildFvar([]fvarAxisSpec{{"wdth", 75, 100, 125}})
	axes, err := readFvar(data)
	if err != nil {
		t.Fatalf("readFvar: %v", err)
	}
	if !axes.HasStretch {
		t.Fatal("expected HasStretch")
	}
	min, max := axes.Stretch.Range()
	if min != variant.Stretch(750) || max != variant.Stretch(1250) {
		t.Errorf("stretch field = [%v,%v]", min, max)
	}
}

func TestReadFvarSlntAndItalLastWins(t *testing.T) {
	data := buildFvar([]fvarAxisSpec{
		{"slnt", -12, 0, 0},
		{"ital", 0, 1, 1},
	})
	axes, err := readFvar(data)
	if err != nil {
		t.Fatalf("readFvar: %v", err)
	}
	if axes.SlantAxis.Kind != variant.SlantItal {
		t.Errorf("SlantAxis.Kind = %v, want SlantItal (ital listed last)", axes.SlantAxis.Kind)
	}
}

func TestReadFvarOpsz(t *testing.T) {
	data := buildFvar([]fvarAxisSpec{{"opsz", 8, 12, 144}})
	axes, err := readFvar(data)
	if err != nil {
		t.Fatalf("readFvar: %v", err)
	}
	if axes.OpticalSizeAxis.Kind != variant.OpticalSizeOpsz {
		t.Fatal("expected an opsz axis")
	}
	if axes.OpticalSizeAxis.Min != 8 || axes.OpticalSizeAxis.Max != 144 {
		t.Errorf("opsz range = [%v,%v]", axes.OpticalSizeAxis.Min, axes.OpticalSizeAxis.Max)
	}
}
