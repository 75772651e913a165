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

import "seehuhn.de/go/fontbook/variant"

// Exception corrects the family name and/or style that would otherwise be
// derived from a font's name/OS2/head tables. Entries are keyed by
// PostScript name, for fonts whose tables are known to lie about their own
// metadata.
type Exception struct {
	Family  string
	Style   *variant.Style
	Weight  *variant.Weight
	Stretch *variant.Stretch
}

// Overrides looks up a per-PostScript-name Exception. The zero Overrides
// has no entries, so ingestion falls back to the font's own tables for
// every face.
type Overrides struct {
	byPostScriptName map[string]Exception
}

// NewOverrides builds an Overrides table from the given PostScript-name
// keyed exceptions.
func NewOverrides(entries map[string]Exception) Overrides {
	return Overrides{byPostScriptName: entries}
}

func (o Overrides) find(postScriptName string) (Exception, bool) {
	if o.byPostScriptName == nil || postScriptName == "" {
		return Exception{}, false
	}
	e, ok := o.byPostScriptName[postScriptName]
	return e, ok
}
