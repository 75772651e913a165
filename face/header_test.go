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
)

// buildSFNT assembles a minimal single-face SFNT byte slice from a set of
// named tables, in the classic (non-collection) container layout.
func buildSFNT(tables map[string][]byte) []byte {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	// deterministic order for reproducible offsets in tests
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if names[j] < names[i] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}

	numTables := len(names)
	header := make([]byte, 12+16*numTables)
	binary.BigEndian.PutUint32(header[0:4], scalerTypeTrueType)
	binary.BigEndian.PutUint16(header[4:6], uint16(numTables))

	body := make([]byte, 0)
	dataStart := len(header)
	for i, name := range names {
		data := tables[name]
		rec := header[12+16*i : 12+16*(i+1)]
		copy(rec[0:4], name)
		binary.BigEndian.PutUint32(rec[8:12], uint32(dataStart+len(body)))
		binary.BigEndian.PutUint32(rec[12:16], uint32(len(data)))
		body = append(body, data...)
	}
	return append(header, body...)
}

func TestReadDirectorySingleFace(t *testing.T) {
	data := buildSFNT(map[string][]byte{
		"name": {0, 0, 0, 0, 0, 6},
		"head": make([]byte, headLength),
	})
	offsets, err := collectionOffsets(data)
	if err != nil {
		t.Fatalf("collectionOffsets: %v", err)
	}
	if len(offsets) != 1 || offsets[0] != 0 {
		t.Fatalf("offsets = %v, want [0]", offsets)
	}

	dir, err := readDirectory(data, 0)
	if err != nil {
		t.Fatalf("readDirectory: %v", err)
	}
	if _, err := dir.find("head"); err != nil {
		t.Errorf("expected head table to be found: %v", err)
	}
	if _, err := dir.find("glyf"); !isMissing(err) {
		t.Errorf("expected missing-table error for glyf, got %v", err)
	}
}

func TestCollectionOffsetsTTC(t *testing.T) {
	face1 := buildSFNT(map[string][]byte{"head": make([]byte, headLength)})
	face2 := buildSFNT(map[string][]byte{"head": make([]byte, headLength)})

	// fixed header (12 bytes) + 2 offset slots (4 bytes each), then the faces
	full := make([]byte, 12+8)
	copy(full[0:4], "ttcf")
	binary.BigEndian.PutUint16(full[4:6], 1)
	binary.BigEndian.PutUint16(full[6:8], 0)
	binary.BigEndian.PutUint32(full[8:12], 2)

	off1 := uint32(len(full))
	full = append(full, face1...)
	off2 := uint32(len(full))
	full = append(full, face2...)
	binary.BigEndian.PutUint32(full[12:16], off1)
	binary.BigEndian.PutUint32(full[16:20], off2)

	offsets, err := collectionOffsets(full)
	if err != nil {
		t.Fatalf("collectionOffsets: %v", err)
	}
	if len(offsets) != 2 {
		t.Fatalf("offsets = %v, want 2 entries", offsets)
	}
	if offsets[0] != off1 || offsets[1] != off2 {
		t.Errorf("offsets = %v, want [%d %d]", offsets, off1, off2)
	}

	for _, off := range offsets {
		if _, err := readDirectory(full, off); err != nil {
			t.Errorf("readDirectory(%d): %v", off, err)
		}
	}
}

func TestCollectionOffsetsNonCollection(t *testing.T) {
	data := buildSFNT(map[string][]byte{"head": make([]byte, headLength)})
	offsets, err := collectionOffsets(data)
	if err != nil {
		t.Fatalf("collectionOffsets: %v", err)
	}
	if len(offsets) != 1 || offsets[0] != 0 {
		t.Fatalf("offsets = %v, want [0]", offsets)
	}
}
