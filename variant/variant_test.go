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

package variant

import "testing"

func TestWeightDistance(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{500, 200, 300},
		{500, 500, 0},
		{500, 900, 400},
		{10, 100, 90},
	}
	for _, c := range cases {
		if got := Weight(c.a).Distance(Weight(c.b)); got != c.want {
			t.Errorf("Weight(%d).Distance(%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestNewWeightClamps(t *testing.T) {
	if got := NewWeight(0); got != 100 {
		t.Errorf("NewWeight(0) = %d, want 100", got)
	}
	if got := NewWeight(1000); got != 900 {
		t.Errorf("NewWeight(1000) = %d, want 900", got)
	}
}

func TestStretchRound(t *testing.T) {
	cases := []struct {
		in   Stretch
		want Stretch
	}{
		{562, UltraCondensed},
		{563, ExtraCondensed},
		{1000, NormalStretch},
		{1750, UltraExpanded},
		{1749, ExtraExpanded},
	}
	for _, c := range cases {
		if got := c.in.Round(); got != c.want {
			t.Errorf("Stretch(%d).Round() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestStretchFromOpenTypeCode(t *testing.T) {
	cases := []struct {
		code int
		want Stretch
	}{
		{1, UltraCondensed},
		{2, ExtraCondensed},
		{3, Condensed},
		{4, SemiCondensed},
		{5, NormalStretch},
		{6, SemiExpanded},
		{7, Expanded},
		{8, ExtraExpanded},
		{9, UltraExpanded},
		{20, UltraExpanded},
	}
	for _, c := range cases {
		if got := NewStretchFromOpenTypeCode(c.code); got != c.want {
			t.Errorf("NewStretchFromOpenTypeCode(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestStyleDistance(t *testing.T) {
	cases := []struct {
		a, b Style
		want int
	}{
		{Normal, Normal, 0},
		{Italic, Oblique, 1},
		{Normal, Italic, 2},
	}
	for _, c := range cases {
		if got := c.a.Distance(c.b); got != c.want {
			t.Errorf("%v.Distance(%v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCoverageSupportsImpliesZeroDistance(t *testing.T) {
	cov := Coverage{
		Style:   Normal,
		Weight:  VariableField(Weight(200), Weight(700), Weight(400)),
		Stretch: StaticField(NormalStretch),
	}
	v := Variant{Style: Normal, Weight: 600, Stretch: NormalStretch}
	if !cov.Supports(v) {
		t.Fatal("expected coverage to support variant")
	}
	_, stretchDist, weightDist := cov.Distance(v)
	if weightDist != 0 || stretchDist != 0 {
		t.Errorf("distance = (%v, %v), want (0, 0)", stretchDist, weightDist)
	}
}

func TestVariableWeightMatching(t *testing.T) {
	// Face A: static weight 400. Face B: variable weight 200..=700 default 400.
	a := Coverage{Style: Normal, Weight: StaticField(Regular), Stretch: StaticField(NormalStretch)}
	b := Coverage{Style: Normal, Weight: VariableField(Weight(200), Weight(700), Weight(400)), Stretch: StaticField(NormalStretch)}

	v := Variant{Style: Normal, Weight: 600, Stretch: NormalStretch}
	_, _, aDist := a.Distance(v)
	_, _, bDist := b.Distance(v)
	if aDist != 200 {
		t.Errorf("A weight distance = %d, want 200", aDist)
	}
	if bDist != 0 {
		t.Errorf("B weight distance = %d, want 0", bDist)
	}
}

func TestSlantAxisStylePromotion(t *testing.T) {
	cov := Coverage{
		Style:     Normal,
		Weight:    StaticField(Regular),
		Stretch:   StaticField(NormalStretch),
		SlantAxis: SlantAxis{Kind: SlantSlnt, Min: -12, Max: 0, Default: 0},
	}
	styleDist, _, _ := cov.Distance(Variant{Style: Italic, Weight: Regular, Stretch: NormalStretch})
	if styleDist != 0 {
		t.Errorf("style distance = %d, want 0", styleDist)
	}
}

func TestItalAxisTogglesNormalItalic(t *testing.T) {
	normal := Coverage{Style: Normal, SlantAxis: SlantAxis{Kind: SlantItal}}
	italic := Coverage{Style: Italic, SlantAxis: SlantAxis{Kind: SlantItal}}

	if d, _, _ := normal.Distance(Variant{Style: Italic}); d != 0 {
		t.Errorf("normal face -> italic request: distance = %d, want 0", d)
	}
	if d, _, _ := italic.Distance(Variant{Style: Normal}); d != 0 {
		t.Errorf("italic face -> normal request: distance = %d, want 0", d)
	}
	if d, _, _ := italic.Distance(Variant{Style: Oblique}); d != 1 {
		t.Errorf("italic face -> oblique request: distance = %d, want 1 (base distance)", d)
	}
}

func TestOpticalSizeAxisKeyIsBitStable(t *testing.T) {
	a := OpticalSizeAxis{Kind: OpticalSizeOpsz, Min: 8, Max: 144, Default: 12}
	b := OpticalSizeAxis{Kind: OpticalSizeOpsz, Min: 8, Max: 144, Default: 12}
	if a.Key() != b.Key() {
		t.Error("expected identical Opsz axes to produce identical keys")
	}
	none := OpticalSizeAxis{}
	if a.Key() == none.Key() {
		t.Error("expected Opsz axis key to differ from None")
	}
}

func TestIsVariable(t *testing.T) {
	static := Coverage{Weight: StaticField(Regular), Stretch: StaticField(NormalStretch)}
	if static.IsVariable() {
		t.Error("static coverage reported as variable")
	}
	variableWeight := Coverage{Weight: VariableField(Weight(100), Weight(900), Weight(400)), Stretch: StaticField(NormalStretch)}
	if !variableWeight.IsVariable() {
		t.Error("variable-weight coverage reported as static")
	}
}
