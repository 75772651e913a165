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

// readCodepoints extracts the set of Unicode code points covered by the
// font's "cmap" table. Unlike a glyph-lookup cmap reader, we only need the
// set of covered code points, not the glyph IDs they map to, so only the
// Unicode-platform subtables are decoded and only their domains collected.
func readCodepoints(cmapTable []byte) ([]rune, error) {
	if len(cmapTable) < 4 {
		return nil, errMalformed
	}
	numTables := int(binary.BigEndian.Uint16(cmapTable[2:4]))
	if 4+8*numTables > len(cmapTable) {
		return nil, errMalformed
	}

	var codepoints []rune
	for i := 0; i < numTables; i++ {
		rec := cmapTable[4+8*i : 12+8*i]
		platformID := binary.BigEndian.Uint16(rec[0:2])
		encodingID := binary.BigEndian.Uint16(rec[2:4])
		offset := binary.BigEndian.Uint32(rec[4:8])
		if !isUnicodeSubtable(platformID, encodingID) {
			continue
		}
		if uint64(offset) >= uint64(len(cmapTable)) {
			continue
		}
		sub := cmapTable[offset:]
		if len(sub) < 2 {
			continue
		}
		format := binary.BigEndian.Uint16(sub[0:2])

		var pts []rune
		var err error
		switch format {
		case 0:
			pts, err = codepointsFormat0(sub)
		case 4:
			pts, err = codepointsFormat4(sub)
		case 6:
			pts, err = codepointsFormat6(sub)
		case 12:
			pts, err = codepointsFormat12(sub)
		default:
			continue
		}
		if err != nil {
			continue
		}
		codepoints = append(codepoints, pts...)
	}
	return codepoints, nil
}

// isUnicodeSubtable reports whether the (platformID, encodingID) pair
// identifies a Unicode-semantics cmap subtable: Unicode platform (0), or
// Windows platform (3) with a Unicode BMP (1) or full-repertoire (10)
// encoding.
func isUnicodeSubtable(platformID, encodingID uint16) bool {
	switch platformID {
	case 0:
		return true
	case 3:
		return encodingID == 1 || encodingID == 10
	}
	return false
}

func codepointsFormat0(data []byte) ([]rune, error) {
	if len(data) < 262 {
		return nil, errMalformed
	}
	var pts []rune
	for code := 0; code < 256; code++ {
		if data[6+code] != 0 {
			pts = append(pts, rune(code))
		}
	}
	return pts, nil
}

func codepointsFormat4(data []byte) ([]rune, error) {
	if len(data) < 16 {
		return nil, errMalformed
	}
	segCountX2 := int(binary.BigEndian.Uint16(data[6:8]))
	if segCountX2%2 != 0 || 16+2*segCountX2 > len(data) {
		return nil, errMalformed
	}
	segCount := segCountX2 / 2

	endCodeBase := 14
	startCodeBase := endCodeBase + segCountX2 + 2 // skip reservedPad
	idDeltaBase := startCodeBase + segCountX2
	idRangeOffsetBase := idDeltaBase + segCountX2
	if idRangeOffsetBase+segCountX2 > len(data) {
		return nil, errMalformed
	}

	var pts []rune
	for k := 0; k < segCount; k++ {
		start := binary.BigEndian.Uint16(data[startCodeBase+2*k : startCodeBase+2*k+2])
		end := binary.BigEndian.Uint16(data[endCodeBase+2*k : endCodeBase+2*k+2])
		rangeOffset := binary.BigEndian.Uint16(data[idRangeOffsetBase+2*k : idRangeOffsetBase+2*k+2])
		if start == 0xFFFF && end == 0xFFFF {
			continue
		}
		if rangeOffset == 0 {
			for c := uint32(start); c <= uint32(end); c++ {
				pts = append(pts, rune(c))
			}
			continue
		}
		// glyph values live in glyphIDArray; we only need to know which
		// code points are mapped at all, and 0 marks .notdef (unmapped).
		glyphBase := idRangeOffsetBase + 2*k
		for c := uint32(start); c <= uint32(end); c++ {
			pos := glyphBase + int(rangeOffset) + 2*int(c-uint32(start))
			if pos+2 > len(data) {
				break
			}
			gid := binary.BigEndian.Uint16(data[pos : pos+2])
			if gid != 0 {
				pts = append(pts, rune(c))
			}
		}
	}
	return pts, nil
}

func codepointsFormat6(data []byte) ([]rune, error) {
	if len(data) < 10 {
		return nil, errMalformed
	}
	first := binary.BigEndian.Uint16(data[6:8])
	count := binary.BigEndian.Uint16(data[8:10])
	if 10+2*int(count) > len(data) {
		return nil, errMalformed
	}
	pts := make([]rune, 0, count)
	for i := 0; i < int(count); i++ {
		pts = append(pts, rune(int(first)+i))
	}
	return pts, nil
}

func codepointsFormat12(data []byte) ([]rune, error) {
	if len(data) < 16 {
		return nil, errMalformed
	}
	nGroups := binary.BigEndian.Uint32(data[12:16])
	const maxGroups = 1 << 20
	if nGroups > maxGroups || 16+int(nGroups)*12 > len(data) {
		return nil, errMalformed
	}
	var pts []rune
	for i := uint32(0); i < nGroups; i++ {
		base := 16 + i*12
		start := binary.BigEndian.Uint32(data[base : base+4])
		end := binary.BigEndian.Uint32(data[base+4 : base+8])
		for c := start; c <= end && c <= 0x10FFFF; c++ {
			pts = append(pts, rune(c))
		}
	}
	return pts, nil
}
