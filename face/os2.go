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
	"strings"
)

// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
const os2MinLength = 78 // through version-0 Selection/FirstCharIndex/LastCharIndex fields

// os2Info holds the fields of the "OS/2" table that feed into variant
// matching and family classification.
type os2Info struct {
	WeightClass int
	WidthClass  int

	IsBold    bool
	IsItalic  bool
	IsRegular bool
	IsOblique bool

	FamilyClass int16
	Panose      [10]byte
	Vendor      string
}

func readOS2(data []byte) (*os2Info, error) {
	if len(data) < os2MinLength {
		return nil, errMalformed
	}
	version := binary.BigEndian.Uint16(data[0:2])

	weightClass := int(binary.BigEndian.Uint16(data[4:6]))
	widthClass := int(binary.BigEndian.Uint16(data[6:8]))
	familyClass := int16(binary.BigEndian.Uint16(data[30:32]))
	var panose [10]byte
	copy(panose[:], data[32:42])
	vendor := strings.TrimRight(string(data[58:62]), " \x00")

	sel := binary.BigEndian.Uint16(data[62:64])
	if version <= 3 {
		// applications should ignore bits 7-15 in a version 0-3 table
		sel &= 0x007F
	}

	return &os2Info{
		WeightClass: weightClass,
		WidthClass:  widthClass,

		IsBold:    sel&0x0060 == 0x0020,
		IsItalic:  sel&0x0041 == 0x0001,
		IsRegular: sel&0x0040 != 0,
		IsOblique: sel&0x0200 != 0,

		FamilyClass: familyClass,
		Panose:      panose,
		Vendor:      vendor,
	}, nil
}

// panoseFamilyLatinText is the value of the first PANOSE byte (family
// kind) that isSerif requires, together with the second byte (serif
// style), to recognize serif faces per spec.md §4.3.
// https://monotype.github.io/panose/pan2.htm
const (
	panoseFamilyLatinText = 2
)

// isSerif reports whether the PANOSE classification marks this as a serif
// family. Family kind 2 (Latin Text) with serif style in [2,10] covers the
// Cove/Obtuse/Square/etc. serif subfamilies; style 1 is "Any" (unknown) and
// 11-15 are the sans-serif subfamilies.
func (info *os2Info) isSerif() bool {
	if info.Panose[0] != panoseFamilyLatinText {
		return false
	}
	style := info.Panose[1]
	return style >= 2 && style <= 10
}
