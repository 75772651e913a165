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

// Ordered is satisfied by the scalar types that can appear in a Field:
// Weight and Stretch, both of which are defined as named integer types.
type Ordered interface {
	~int
}

// Field is either a fixed value for a static font, or a range with a
// default for a variable font's axis.
type Field[T Ordered] struct {
	isVariable bool
	static     T
	min, max   T
	def        T
}

// StaticField builds a Field holding a fixed value.
func StaticField[T Ordered](v T) Field[T] {
	return Field[T]{static: v}
}

// VariableField builds a Field for a variable axis with the given range
// and default. The caller must ensure min <= def <= max.
func VariableField[T Ordered](min, max, def T) Field[T] {
	return Field[T]{isVariable: true, min: min, max: max, def: def}
}

// IsVariable reports whether the field carries range information.
func (f Field[T]) IsVariable() bool {
	return f.isVariable
}

// DefaultValue returns the static value, or the variable default.
func (f Field[T]) DefaultValue() T {
	if f.isVariable {
		return f.def
	}
	return f.static
}

// Range returns the field's [min, max] range. For a static field this is
// (value, value).
func (f Field[T]) Range() (min, max T) {
	if f.isVariable {
		return f.min, f.max
	}
	return f.static, f.static
}

// Contains reports whether v lies within the field's supported values: the
// single static value, or anywhere in the variable range.
func (f Field[T]) Contains(v T) bool {
	if f.isVariable {
		return v >= f.min && v <= f.max
	}
	return v == f.static
}

// Clamp returns v clamped into the field's range. For a static field this
// always returns the static value.
func (f Field[T]) Clamp(v T) T {
	if !f.isVariable {
		return f.static
	}
	if v < f.min {
		return f.min
	}
	if v > f.max {
		return f.max
	}
	return v
}
