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

import "seehuhn.de/go/fontbook/variant"

// FaceKey identifies a selected face together with the axis values needed
// to instantiate it, if it is a variable font. Consumers re-resolve the
// index through the Catalog; FaceKey holds no reference to the face
// itself.
type FaceKey struct {
	Index  Index
	Params InstanceParameters
}

// InstanceParameters carries the variable-axis coordinates a shaper needs
// to instantiate a variable font at the chosen variant. Each field is
// present only when the corresponding axis exists and is variable on the
// winning face.
type InstanceParameters struct {
	Weight      *variant.Weight
	Stretch     *variant.Stretch
	Slant       *float64
	Italic      *bool
	OpticalSize *float32
}

// IsEmpty reports whether no axis value is set, i.e. the winning face was
// static.
func (p InstanceParameters) IsEmpty() bool {
	return p.Weight == nil && p.Stretch == nil && p.Slant == nil &&
		p.Italic == nil && p.OpticalSize == nil
}
