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

// Package fontbook catalogs ingested font faces by family name and selects
// the closest-matching face for a requested style, weight and stretch.
//
// A Catalog is build-once, read-many: Push mutates it during construction;
// once the caller stops calling Push, every query method is pure and safe
// to call concurrently from any number of goroutines without further
// synchronization.
package fontbook

import (
	"sort"
	"strings"

	"seehuhn.de/go/fontbook/face"
)

// Index identifies a face within a Catalog. Once assigned by Push, a
// face's index never changes for the lifetime of the catalog.
type Index int

// Catalog stores ingested faces indexed by lowercased family name.
type Catalog struct {
	families map[string][]Index
	infos    []*face.Info
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{families: make(map[string][]Index)}
}

// FromInfos builds a catalog from a sequence of already-ingested faces, in
// the order given.
func FromInfos(infos []*face.Info) *Catalog {
	c := New()
	for _, info := range infos {
		c.Push(info)
	}
	return c
}

// Push appends info to the catalog and indexes it under its lowercased
// family name, returning its assigned index. Pushing the same face twice
// is allowed; deduplication is the caller's responsibility.
func (c *Catalog) Push(info *face.Info) Index {
	idx := Index(len(c.infos))
	c.infos = append(c.infos, info)
	key := strings.ToLower(info.Family)
	c.families[key] = append(c.families[key], idx)
	return idx
}

// Info returns the face stored at idx, or false if idx is out of range.
func (c *Catalog) Info(idx Index) (*face.Info, bool) {
	if idx < 0 || int(idx) >= len(c.infos) {
		return nil, false
	}
	return c.infos[idx], true
}

// ContainsFamily reports whether the catalog has any face for the given
// lowercased family name.
func (c *Catalog) ContainsFamily(familyLower string) bool {
	_, ok := c.families[familyLower]
	return ok
}

// Family pairs a family's display name (the original casing of the first
// face pushed for that family) with the indices of every face in it.
type Family struct {
	DisplayName string
	Indices     []Index
}

// Families returns every family the catalog knows, in ascending
// lowercase-family order. Within a family, indices appear in insertion
// order.
func (c *Catalog) Families() []Family {
	keys := make([]string, 0, len(c.families))
	for k := range c.families {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]Family, 0, len(keys))
	for _, k := range keys {
		ids := c.families[k]
		result = append(result, Family{
			DisplayName: c.infos[ids[0]].Family,
			Indices:     ids,
		})
	}
	return result
}

// SelectFamily returns every face index registered under the given
// lowercased family name, in insertion order.
func (c *Catalog) SelectFamily(familyLower string) []Index {
	return c.families[familyLower]
}
