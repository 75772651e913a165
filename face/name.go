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
	"unicode/utf16"
)

// Name IDs we care about, per the OpenType "name" table spec.
const (
	nameIDFamily         = 1
	nameIDFullName       = 4
	nameIDPostScriptName = 6
)

// findName decodes the first usable name record with the given ID. Per
// spec.md §4.3, Unicode/Windows records decode directly; Macintosh
// records with encoding 0 fall back to the fixed Mac Roman table.
func findName(nameTable []byte, id uint16) (string, bool) {
	if len(nameTable) < 6 {
		return "", false
	}
	numRec := int(binary.BigEndian.Uint16(nameTable[2:4]))
	storageOffset := int(binary.BigEndian.Uint16(nameTable[4:6]))
	recBase := 6
	if recBase+12*numRec > len(nameTable) {
		return "", false
	}

	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		rec := nameTable[pos : pos+12]
		platformID := binary.BigEndian.Uint16(rec[0:2])
		encodingID := binary.BigEndian.Uint16(rec[2:4])
		nameID := binary.BigEndian.Uint16(rec[6:8])
		length := int(binary.BigEndian.Uint16(rec[8:10]))
		offset := int(binary.BigEndian.Uint16(rec[10:12]))
		if nameID != id {
			continue
		}

		start := storageOffset + offset
		end := start + length
		if start < 0 || end > len(nameTable) {
			continue
		}
		raw := nameTable[start:end]

		switch platformID {
		case 0, 3: // Unicode, Windows: UTF-16BE
			if s := decodeUTF16BE(raw); s != "" {
				return s, true
			}
		case 1: // Macintosh
			if encodingID == 0 {
				if s := decodeMacRoman(raw); s != "" {
					return s, true
				}
			}
		}
	}
	return "", false
}

func decodeUTF16BE(buf []byte) string {
	if len(buf)%2 != 0 {
		buf = buf[:len(buf)-1]
	}
	units := make([]uint16, len(buf)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(buf[i*2 : i*2+2])
	}
	return string(utf16.Decode(units))
}

// Separators between names, modifiers and styles.
const nameSeparators = " -_"

// modifiers can appear in combination with suffixes, but only if preceded
// by a separator.
var typographicModifiers = []string{
	"extra", "ext", "ex", "x", "semi", "sem", "sm", "demi", "dem", "ultra",
}

// styleSuffixes are stripped repeatedly from the end of a family name.
var styleSuffixes = []string{
	"normal", "italic", "oblique", "slanted",
	"thin", "th", "hairline", "light", "lt", "regular", "medium", "med",
	"md", "bold", "bd", "demi", "extb", "black", "blk", "bk", "heavy",
	"narrow", "condensed", "cond", "cn", "cd", "compressed", "expanded", "exp",
}

// typographicFamily trims style naming from a family name and fixes bad
// Apple-font leading characters, per spec.md §4.3.
func typographicFamily(family string) string {
	family = strings.TrimLeft(family, " \t\n\r")
	family = strings.TrimPrefix(family, ".")

	lower := strings.ToLower(family)
	length := len(lower)
	trimmed := lower

	for {
		t := trimmed
		shortened := false
		for {
			stripped, ok := stripAnySuffix(t, styleSuffixes)
			if !ok {
				break
			}
			shortened = true
			t = stripped
		}
		if !shortened {
			break
		}

		if stripped, ok := stripSeparator(t); ok {
			trimmed = stripped
			t = stripped
		}

		if afterModifier, ok := stripAnySuffix(t, typographicModifiers); ok {
			if stripped, ok := stripSeparator(afterModifier); ok {
				trimmed = stripped
			}
		}

		if len(trimmed) >= length {
			break
		}
		length = len(trimmed)
	}

	return family[:length]
}

func stripAnySuffix(s string, suffixes []string) (string, bool) {
	for _, suf := range suffixes {
		if rest, ok := cutSuffix(s, suf); ok {
			return rest, true
		}
	}
	return s, false
}

func cutSuffix(s, suffix string) (string, bool) {
	if strings.HasSuffix(s, suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}

func stripSeparator(s string) (string, bool) {
	if s == "" {
		return s, false
	}
	last := s[len(s)-1]
	if strings.IndexByte(nameSeparators, last) >= 0 {
		return s[:len(s)-1], true
	}
	return s, false
}
