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

// Package face ingests SFNT/TrueType/OpenType font containers (single
// faces and collections) into Info values.
package face

import (
	"encoding/binary"
	"errors"
)

const (
	scalerTypeTrueType = 0x00010000
	scalerTypeCFF      = 0x4F54544F
	scalerTypeApple    = 0x74727565
	tagCollection      = 0x74746366 // "ttcf"
)

// errNoTable indicates that a required table is missing from a font.
type errNoTable struct {
	name string
}

func (err *errNoTable) Error() string {
	return "missing " + err.name + " table in font"
}

func isMissing(err error) bool {
	var e *errNoTable
	return errors.As(err, &e)
}

var errMalformed = errors.New("face: malformed or corrupted font data")

// record is a single table-directory entry: where a table lives within
// the font's byte slice.
type record struct {
	offset, length uint32
}

// directory is the parsed table-of-contents for one face within a font
// container.
type directory struct {
	scalerType uint32
	toc        map[string]record
}

func (d *directory) find(name string) (record, error) {
	rec, ok := d.toc[name]
	if !ok {
		return record{}, &errNoTable{name: name}
	}
	return rec, nil
}

// table returns the raw bytes of the named table, or an errNoTable error.
func (d *directory) table(data []byte, name string) ([]byte, error) {
	rec, err := d.find(name)
	if err != nil {
		return nil, err
	}
	if uint64(rec.offset)+uint64(rec.length) > uint64(len(data)) {
		return nil, errMalformed
	}
	return data[rec.offset : rec.offset+rec.length], nil
}

// collectionOffsets returns the byte offsets of each face's table
// directory within data. For a single (non-collection) font, it returns
// the one offset 0. For a TrueType Collection ("ttcf"), it returns the
// offsets listed in the TTC header.
func collectionOffsets(data []byte) ([]uint32, error) {
	if len(data) < 12 {
		return nil, errMalformed
	}
	tag := binary.BigEndian.Uint32(data[0:4])
	if tag != tagCollection {
		return []uint32{0}, nil
	}

	numFonts := binary.BigEndian.Uint32(data[8:12])
	const maxFonts = 1 << 16
	if numFonts == 0 || numFonts > maxFonts {
		return nil, errMalformed
	}
	need := 12 + int(numFonts)*4
	if need > len(data) {
		return nil, errMalformed
	}
	offsets := make([]uint32, numFonts)
	for i := range offsets {
		offsets[i] = binary.BigEndian.Uint32(data[12+i*4 : 16+i*4])
	}
	return offsets, nil
}

// readDirectory parses the table directory for the face whose own sfnt
// header starts at byteOffset within data.
func readDirectory(data []byte, byteOffset uint32) (*directory, error) {
	if uint64(byteOffset)+12 > uint64(len(data)) {
		return nil, errMalformed
	}
	buf := data[byteOffset:]

	scalerType := binary.BigEndian.Uint32(buf[0:4])
	if scalerType != scalerTypeTrueType && scalerType != scalerTypeCFF && scalerType != scalerTypeApple {
		return nil, errMalformed
	}
	numTables := int(binary.BigEndian.Uint16(buf[4:6]))
	if numTables == 0 || numTables > 280 {
		return nil, errMalformed
	}

	const recStart = 12
	need := recStart + numTables*16
	if need > len(buf) {
		return nil, errMalformed
	}

	toc := make(map[string]record, numTables)
	for i := 0; i < numTables; i++ {
		rec := buf[recStart+i*16 : recStart+(i+1)*16]
		name := string(rec[0:4])
		offset := binary.BigEndian.Uint32(rec[8:12])
		length := binary.BigEndian.Uint32(rec[12:16])
		toc[name] = record{offset: offset, length: length}
	}
	if len(toc) == 0 {
		return nil, errMalformed
	}

	return &directory{scalerType: scalerType, toc: toc}, nil
}
