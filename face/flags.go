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

// Flags records coarse, boolean facts about a face that do not fit the
// variant-matching model: whether it is monospaced, serif, carries math
// tables, or is a variable font.
type Flags uint8

const (
	FlagMonospace Flags = 1 << iota
	FlagSerif
	FlagMath
	FlagVariable
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}
