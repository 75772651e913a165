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

	"seehuhn.de/go/fontbook/face"
	"seehuhn.de/go/fontbook/variant"
)

// Select finds the face in familyLower that most closely matches v. It
// returns false if the family is unknown.
func (c *Catalog) Select(familyLower string, v variant.Variant, opticalSize *float32) (FaceKey, bool) {
	ids, ok := c.families[familyLower]
	if !ok {
		return FaceKey{}, false
	}
	return c.findBestVariant(nil, v, opticalSize, ids)
}

// SelectFallback finds the best stylistic substitute face able to render
// text: it scans text for the first character that is neither whitespace
// nor Unicode-default-ignorable, restricts the candidate pool to faces
// whose coverage contains that character, and picks the closest match to
// v, preferring faces similar to like (if given) by monospace/serif
// agreement and shared family-name prefix words.
func (c *Catalog) SelectFallback(like *face.Info, v variant.Variant, text string, opticalSize *float32) (FaceKey, bool) {
	var target rune = -1
	for _, r := range text {
		if !unicode.IsSpace(r) && !isDefaultIgnorable(r) {
			target = r
			break
		}
	}
	if target < 0 {
		return FaceKey{}, false
	}

	var ids []Index
	for i, info := range c.infos {
		if info.Coverage.Contains(target) {
			ids = append(ids, Index(i))
		}
	}
	return c.findBestVariant(like, v, opticalSize, ids)
}

// matchKey is the lexicographic comparison key described in spec.md §4.4:
// an optional "likeness" component (present only when a like-face was
// supplied), followed by style, stretch and weight distance.
type matchKey struct {
	hasLike           bool
	monospaceMismatch bool
	serifMismatch     bool
	sharedWordsRev    int // stored negated, so plain integer comparison reverses it
	familyLen         int

	styleDist   int
	stretchDist float64
	weightDist  int
}

// less implements the strict lexicographic ordering used to pick a
// winner: only a strictly smaller key replaces the current best, so the
// first-encountered candidate wins ties.
func (k matchKey) less(other matchKey) bool {
	if k.hasLike != other.hasLike {
		// Only ever compared within one findBestVariant call, where
		// hasLike is the same for every candidate.
		return false
	}
	if k.hasLike {
		if k.monospaceMismatch != other.monospaceMismatch {
			return !k.monospaceMismatch
		}
		if k.serifMismatch != other.serifMismatch {
			return !k.serifMismatch
		}
		if k.sharedWordsRev != other.sharedWordsRev {
			return k.sharedWordsRev < other.sharedWordsRev
		}
		if k.familyLen != other.familyLen {
			return k.familyLen < other.familyLen
		}
	}
	if k.styleDist != other.styleDist {
		return k.styleDist < other.styleDist
	}
	if k.stretchDist != other.stretchDist {
		return k.stretchDist < other.stretchDist
	}
	return k.weightDist < other.weightDist
}

func (c *Catalog) findBestVariant(like *face.Info, v variant.Variant, opticalSize *float32, ids []Index) (FaceKey, bool) {
	var bestIdx Index
	var bestKey matchKey
	found := false

	for _, id := range ids {
		info := c.infos[id]
		styleDist, stretchDist, weightDist := info.VariantCoverage.Distance(v)

		key := matchKey{
			hasLike:     like != nil,
			styleDist:   styleDist,
			stretchDist: stretchDist,
			weightDist:  weightDist,
		}
		if like != nil {
			key.monospaceMismatch = info.Flags.Has(face.FlagMonospace) != like.Flags.Has(face.FlagMonospace)
			key.serifMismatch = info.Flags.Has(face.FlagSerif) != like.Flags.Has(face.FlagSerif)
			key.sharedWordsRev = -sharedPrefixWords(info.Family, like.Family)
			key.familyLen = len(info.Family)
		}

		if !found || key.less(bestKey) {
			bestIdx = id
			bestKey = key
			found = true
		}
	}
	if !found {
		return FaceKey{}, false
	}

	info := c.infos[bestIdx]
	return FaceKey{Index: bestIdx, Params: instanceParameters(info.VariantCoverage, v, opticalSize)}, true
}

// instanceParameters derives the variable-axis instantiation for a winning
// face, per spec.md §4.4. A static face returns the zero value.
func instanceParameters(cov variant.Coverage, v variant.Variant, opticalSize *float32) InstanceParameters {
	var params InstanceParameters
	if !cov.IsVariable() {
		return params
	}

	if cov.Weight.IsVariable() {
		w := cov.Weight.Clamp(v.Weight)
		params.Weight = &w
	}
	if cov.Stretch.IsVariable() {
		s := cov.Stretch.Clamp(v.Stretch)
		params.Stretch = &s
	}

	switch cov.SlantAxis.Kind {
	case variant.SlantSlnt:
		var slant float64
		if v.Style == variant.Normal {
			slant = float64(cov.SlantAxis.Default)
		} else {
			slant = float64(min(cov.SlantAxis.Min, cov.SlantAxis.Max))
		}
		params.Slant = &slant
	case variant.SlantItal:
		italic := v.Style == variant.Italic || v.Style == variant.Oblique
		params.Italic = &italic
	}

	if cov.OpticalSizeAxis.Kind == variant.OpticalSizeOpsz {
		value := cov.OpticalSizeAxis.Default
		if opticalSize != nil {
			value = *opticalSize
		}
		value = clampFloat32(value, cov.OpticalSizeAxis.Min, cov.OpticalSizeAxis.Max)
		params.OpticalSize = &value
	}

	return params
}

func clampFloat32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
