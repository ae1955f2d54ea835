// seehuhn.de/go/rc4 - an implementation of the RC4 stream cipher
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

package rc4

import "strconv"

// KeyLengthError is returned when a key has an unsupported length.
type KeyLengthError struct {
	Min, Max int // the permitted range of key lengths, inclusive
	Got      int
}

func (err *KeyLengthError) Error() string {
	return "rc4: key length has to be between " +
		strconv.Itoa(err.Min) + " and " + strconv.Itoa(err.Max) +
		" bytes, got " + strconv.Itoa(err.Got)
}
