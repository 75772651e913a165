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

// Package coverage represents the set of Unicode code points a font face
// can render, as a compact run-length encoding.
package coverage

import "sort"

// Set is a compactly encoded set of code points.
//
// The set is represented by alternating specifications of how many code
// points are not in the set and how many are in the set, starting with an
// (possibly empty) out-run.
//
// For example, for the set {2, 3, 4, 9, 10, 11, 15, 18, 19}, there are:
//   - 2 code points not inside (0, 1)
//   - 3 code points inside (2, 3, 4)
//   - 4 code points not inside (5, 6, 7, 8)
//   - 3 code points inside (9, 10, 11)
//   - 3 code points not inside (12, 13, 14)
//   - 1 code point inside (15)
//   - 2 code points not inside (16, 17)
//   - 2 code points inside (18, 19)
//
// So the resulting encoding is [2, 3, 4, 3, 3, 1, 2, 2].
type Set struct {
	runs []uint32
}

// Build encodes an unsorted, possibly duplicated sequence of code points
// into a Set.
func Build(codepoints []rune) Set {
	cps := make([]uint32, len(codepoints))
	for i, c := range codepoints {
		cps[i] = uint32(c)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })

	var runs []uint32
	var next uint32
	for i, c := range cps {
		if i > 0 && c == cps[i-1] {
			continue
		}
		if len(runs) > 0 && c == next {
			runs[len(runs)-1]++
		} else {
			runs = append(runs, c-next, 1)
		}
		next = c + 1
	}
	return Set{runs: runs}
}

// Contains reports whether the code point is covered.
func (s Set) Contains(c rune) bool {
	u := uint32(c)
	var cursor uint32
	inside := false
	for _, run := range s.runs {
		if u >= cursor && u < cursor+run {
			return inside
		}
		cursor += run
		inside = !inside
	}
	return false
}

// Runs returns the underlying alternating run-length encoding, starting
// with the (possibly zero-length) initial out-run. Callers must treat the
// returned slice as read-only.
func (s Set) Runs() []uint32 {
	return s.runs
}

// FromRuns reconstructs a Set from a previously obtained run-length
// encoding, e.g. one that was persisted and read back. No validation is
// performed beyond what is needed to keep Contains/Iter total.
func FromRuns(runs []uint32) Set {
	out := make([]uint32, len(runs))
	copy(out, runs)
	return Set{runs: out}
}

// Iter calls yield for every code point covered by the set, in ascending
// order. Iteration stops early if yield returns false.
func (s Set) Iter(yield func(rune) bool) {
	var cursor uint32
	inside := false
	for _, run := range s.runs {
		if inside {
			for c := cursor; c < cursor+run; c++ {
				if !yield(rune(c)) {
					return
				}
			}
		}
		cursor += run
		inside = !inside
	}
}

// All returns every code point covered by the set as a slice, in ascending
// order. This is a convenience wrapper around Iter for callers that don't
// need to stop early.
func (s Set) All() []rune {
	var out []rune
	s.Iter(func(c rune) bool {
		out = append(out, c)
		return true
	})
	return out
}
