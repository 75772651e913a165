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
	"testing"

	"seehuhn.de/go/fontbook/coverage"
	"seehuhn.de/go/fontbook/face"
	"seehuhn.de/go/fontbook/variant"
)

func staticInfo(family string, weight variant.Weight, style variant.Style, codepoints ...rune) *face.Info {
	return &face.Info{
		Family: family,
		VariantCoverage: variant.Coverage{
			Style:   style,
			Weight:  variant.StaticField(weight),
			Stretch: variant.StaticField(variant.NormalStretch),
		},
		Coverage: coverage.Build(codepoints),
	}
}

func TestCatalogPushAndFamilies(t *testing.T) {
	c := New()
	idx1 := c.Push(staticInfo("Noto Sans", variant.Regular, variant.Normal, 'A'))
	idx2 := c.Push(staticInfo("Atma", variant.Regular, variant.Normal, 'A'))

	if idx1 != 0 || idx2 != 1 {
		t.Fatalf("unexpected indices: %d, %d", idx1, idx2)
	}

	families := c.Families()
	if len(families) != 2 {
		t.Fatalf("got %d families, want 2", len(families))
	}
	// "atma" < "noto sans" lexicographically.
	if families[0].DisplayName != "Atma" || families[1].DisplayName != "Noto Sans" {
		t.Fatalf("unexpected family order: %+v", families)
	}
}

func TestCatalogIndexStability(t *testing.T) {
	c := New()
	first := c.Push(staticInfo("A", variant.Regular, variant.Normal))
	info, ok := c.Info(first)
	if !ok || info.Family != "A" {
		t.Fatalf("Info(%d) = %v, %v", first, info, ok)
	}

	// Pushing more faces afterward must not change the earlier index's
	// meaning.
	c.Push(staticInfo("B", variant.Regular, variant.Normal))
	c.Push(staticInfo("C", variant.Regular, variant.Normal))

	info2, ok := c.Info(first)
	if !ok || info2 != info {
		t.Fatalf("index %d changed identity after further pushes", first)
	}
}

func TestCatalogInfoOutOfRange(t *testing.T) {
	c := New()
	if _, ok := c.Info(Index(0)); ok {
		t.Fatal("Info on empty catalog returned ok=true")
	}
	if _, ok := c.Info(Index(-1)); ok {
		t.Fatal("Info(-1) returned ok=true")
	}
}
