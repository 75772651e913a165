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

import "encoding/binary"

const headLength = 54

// headInfo holds the "head"-table fields used for style detection.
type headInfo struct {
	UnitsPerEm uint16
	IsBold     bool
	IsItalic   bool
}

func readHead(data []byte) (*headInfo, error) {
	if len(data) < headLength {
		return nil, errMalformed
	}
	version := binary.BigEndian.Uint32(data[0:4])
	if version != 0x00010000 {
		return nil, errMalformed
	}
	magic := binary.BigEndian.Uint32(data[12:16])
	if magic != 0x5F0F3CF5 {
		return nil, errMalformed
	}

	unitsPerEm := binary.BigEndian.Uint16(data[18:20])
	macStyle := binary.BigEndian.Uint16(data[44:46])

	return &headInfo{
		UnitsPerEm: unitsPerEm,
		IsBold:     macStyle&(1<<0) != 0,
		IsItalic:   macStyle&(1<<1) != 0,
	}, nil
}
