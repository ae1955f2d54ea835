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

package message

// EncodingError indicates that text cannot be represented in the
// chosen character encoding.
type EncodingError struct {
	Encoding string
	Err      error
}

func (err *EncodingError) Error() string {
	return "message: cannot encode text as " + err.Encoding + ": " + err.Err.Error()
}

func (err *EncodingError) Unwrap() error {
	return err.Err
}

// DecodingError indicates that decrypted bytes are not valid text in the
// chosen character encoding.
type DecodingError struct {
	Encoding string
	Err      error
}

func (err *DecodingError) Error() string {
	return "message: decrypted data is not valid " + err.Encoding + ": " + err.Err.Error()
}

func (err *DecodingError) Unwrap() error {
	return err.Err
}
