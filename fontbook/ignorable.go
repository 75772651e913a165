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

package fontbook

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// defaultIgnorable holds the isolated code points that the Unicode
// Character Database marks Default_Ignorable_Code_Point; the contiguous
// blocks of that property are checked in isDefaultIgnorable. These are
// characters like variation selectors and zero-width joiners that carry no
// visible glyph of their own and so should never anchor a fallback-font
// character scan.
var defaultIgnorable = rangetable.New(
	0x00AD,         // soft hyphen
	0x034F,         // combining grapheme joiner
	0x061C,         // arabic letter mark
	0x115F, 0x1160, // hangul choseong/jungseong filler
	0x17B4, 0x17B5, // khmer vowel inherent AQ/AA
	0x200B, 0x200C, 0x200D, 0x200E, 0x200F, // ZWSP, ZWNJ, ZWJ, LRM, RLM
	0x202A, 0x202B, 0x202C, 0x202D, 0x202E, // directional formatting
	0x2060, 0x2061, 0x2062, 0x2063, 0x2064, // word joiner, invisible operators
	0x2066, 0x2067, 0x2068, 0x2069, // isolates
	0xFEFF, // zero width no-break space / BOM
	0xFFF0, 0xFFF1, 0xFFF2, 0xFFF3, 0xFFF4, 0xFFF5, 0xFFF6, 0xFFF7, 0xFFF8, // unassigned specials
)

// isDefaultIgnorable reports whether r is a Unicode "default ignorable"
// code point, and so should be skipped when scanning for the first
// meaningful character in a fallback query, per spec.md §4.4.
func isDefaultIgnorable(r rune) bool {
	if unicode.Is(defaultIgnorable, r) {
		return true
	}
	return r >= 0x180B && r <= 0x180F || // mongolian variation selectors, vowel separator
		r >= 0x2065 && r <= 0x206F || // reserved and deprecated format characters
		r == 0x3164 || r == 0xFFA0 || // hangul fillers
		r >= 0xFE00 && r <= 0xFE0F || // variation selectors
		r >= 0x1BCA0 && r <= 0x1BCA3 || // shorthand format controls
		r >= 0x1D173 && r <= 0x1D17A || // musical symbol format controls
		r >= 0xE0000 && r <= 0xE0FFF // tags, variation selectors supplement, reserved
}
