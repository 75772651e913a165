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
	"strings"

	"seehuhn.de/go/fontbook/coverage"
	"seehuhn.de/go/fontbook/variant"
)

// Info is the result of ingesting one face from a font container: its
// family name, the variant space it covers, a few classification flags,
// and the set of Unicode code points it can render. Immutable after
// ingestion and decoupled from the byte slice it was parsed from.
type Info struct {
	Family          string
	VariantCoverage variant.Coverage
	Flags           Flags
	Coverage        coverage.Set
}

// IsLastResort reports whether this is the macOS "LastResort" font, which
// renders visible but meaningless tofu glyphs for any code point. The
// catalog's fallback selection does not consult this; such a face competes
// like any other.
func (info *Info) IsLastResort() bool {
	return info.Family == "LastResort"
}

// ParseAll iterates every face of a font container (a single SFNT face, or
// every member of a TrueType Collection), returning the faces that parsed
// successfully. Faces that fail to parse are skipped, not reported as
// errors, since a partially-unreadable collection should not prevent the
// rest of its faces from being cataloged.
func ParseAll(data []byte, overrides Overrides) []*Info {
	offsets, err := collectionOffsets(data)
	if err != nil {
		return nil
	}
	var faces []*Info
	for i := range offsets {
		info, ok := ParseSingle(data, i, overrides)
		if ok {
			faces = append(faces, info)
		}
	}
	return faces
}

// ParseSingle parses the face at the given index within data (0 for a
// plain SFNT font, 0..n-1 for a collection member). It returns false for
// any unrecoverable parse error: missing or malformed mandatory tables, or
// an index out of range.
func ParseSingle(data []byte, index int, overrides Overrides) (*Info, bool) {
	offsets, err := collectionOffsets(data)
	if err != nil || index < 0 || index >= len(offsets) {
		return nil, false
	}
	dir, err := readDirectory(data, offsets[index])
	if err != nil {
		return nil, false
	}

	nameTable, err := dir.table(data, "name")
	if err != nil {
		return nil, false
	}
	postScriptName, _ := findName(nameTable, nameIDPostScriptName)
	exception, hasException := overrides.find(postScriptName)

	family, ok := resolveFamily(nameTable, exception, hasException)
	if !ok {
		return nil, false
	}

	headInfo, err := readHeadTable(dir, data)
	if err != nil {
		return nil, false
	}

	var os2Info *os2Info
	if raw, err := dir.table(data, "OS/2"); err == nil {
		os2Info, _ = readOS2(raw)
	}

	style := resolveStyle(nameTable, headInfo, os2Info, exception, hasException)
	weight, stretch := resolveWeightStretch(os2Info, exception, hasException)

	cov := variant.Coverage{
		Style:   style,
		Weight:  variant.StaticField(weight),
		Stretch: variant.StaticField(stretch),
	}

	isVariable := false
	if raw, err := dir.table(data, "fvar"); err == nil {
		if axes, err := readFvar(raw); err == nil {
			isVariable = true
			if axes.HasWeight {
				cov.Weight = axes.Weight
			}
			if axes.HasStretch {
				cov.Stretch = axes.Stretch
			}
			cov.SlantAxis = axes.SlantAxis
			cov.OpticalSizeAxis = axes.OpticalSizeAxis
		}
	}

	var flags Flags
	if headInfo.isFixedPitch {
		flags |= FlagMonospace
	}
	if _, err := dir.find("MATH"); err == nil {
		flags |= FlagMath
	}
	if isVariable {
		flags |= FlagVariable
	}
	if os2Info != nil && os2Info.isSerif() {
		flags |= FlagSerif
	}

	var codepoints []rune
	if raw, err := dir.table(data, "cmap"); err == nil {
		codepoints, _ = readCodepoints(raw)
	}

	return &Info{
		Family:          family,
		VariantCoverage: cov,
		Flags:           flags,
		Coverage:        coverage.Build(codepoints),
	}, true
}

// combinedHead merges the head-table style bits with the post table's
// fixed-pitch flag, since the two live in separate tables but are always
// consulted together.
type combinedHead struct {
	isBold       bool
	isItalic     bool
	isFixedPitch bool
}

func readHeadTable(dir *directory, data []byte) (*combinedHead, error) {
	raw, err := dir.table(data, "head")
	if err != nil {
		return nil, err
	}
	h, err := readHead(raw)
	if err != nil {
		return nil, err
	}

	isFixedPitch := false
	if postRaw, err := dir.table(data, "post"); err == nil {
		isFixedPitch, _ = readIsFixedPitch(postRaw)
	}

	return &combinedHead{
		isBold:       h.IsBold,
		isItalic:     h.IsItalic,
		isFixedPitch: isFixedPitch,
	}, nil
}

func resolveFamily(nameTable []byte, exception Exception, hasException bool) (string, bool) {
	if hasException && exception.Family != "" {
		return exception.Family, true
	}
	family, ok := findName(nameTable, nameIDFamily)
	if !ok {
		return "", false
	}
	return typographicFamily(family), true
}

func resolveStyle(nameTable []byte, h *combinedHead, os2 *os2Info, exception Exception, hasException bool) variant.Style {
	if hasException && exception.Style != nil {
		return *exception.Style
	}

	fullName, _ := findName(nameTable, nameIDFullName)
	fullName = strings.ToLower(fullName)

	isItalic := h.isItalic || strings.Contains(fullName, "italic")
	isOblique := (os2 != nil && os2.IsOblique) ||
		strings.Contains(fullName, "oblique") || strings.Contains(fullName, "slanted")

	switch {
	case isItalic:
		return variant.Italic
	case isOblique:
		return variant.Oblique
	default:
		return variant.Normal
	}
}

func resolveWeightStretch(info *os2Info, exception Exception, hasException bool) (variant.Weight, variant.Stretch) {
	weight := variant.Regular
	stretch := variant.NormalStretch
	if info != nil {
		weight = variant.NewWeight(info.WeightClass)
		stretch = variant.NewStretchFromOpenTypeCode(info.WidthClass)
	}
	if hasException {
		if exception.Weight != nil {
			weight = *exception.Weight
		}
		if exception.Stretch != nil {
			stretch = *exception.Stretch
		}
	}
	return weight, stretch
}
