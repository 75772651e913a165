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

import "encoding/binary"

// https://docs.microsoft.com/en-us/typography/opentype/spec/post
func readIsFixedPitch(data []byte) (bool, error) {
	if len(data) < 32 {
		return false, errMalformed
	}
	version := binary.BigEndian.Uint32(data[0:4])
	switch version {
	case 0x00010000, 0x00020000, 0x00025000, 0x00030000:
	default:
		return false, errMalformed
	}
	isFixedPitch := binary.BigEndian.Uint32(data[12:16])
	return isFixedPitch != 0, nil
}
