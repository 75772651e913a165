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

import "unicode"

// words splits s into maximal runs of letters and digits, discarding
// everything else (spaces, punctuation). This approximates Unicode word
// segmentation closely enough for family-name comparison without pulling
// in a full UAX #29 implementation.
func words(s string) []string {
	var out []string
	start := -1
	runes := []rune(s)
	flush := func(end int) {
		if start >= 0 {
			out = append(out, string(runes[start:end]))
			start = -1
		}
	}
	for i, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
		} else {
			flush(i)
		}
	}
	flush(len(runes))
	return out
}

// sharedPrefixWords counts how many leading words left and right have in
// common. Comparison is case-sensitive, even though family lookups
// elsewhere are lowercase-keyed: this is load-bearing for distinguishing
// e.g. "Noto Sans" from a font whose family happens to differ only in
// case, matching the reference matcher's tie-break.
func sharedPrefixWords(left, right string) int {
	a, b := words(left), words(right)
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	count := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			break
		}
		count++
	}
	return count
}
