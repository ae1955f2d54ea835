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

// Package rc4 implements the RC4 stream cipher ("ArcFour").
//
// A [Cipher] holds a secret key of 5 to 255 bytes.  Every call to
// [Cipher.Crypt] derives the permutation table from the key using the
// key-scheduling algorithm and then XORs the message with the keystream.
// Since XOR is its own inverse, the same call is used for encryption and
// for decryption:
//
//	c, err := rc4.NewCipher([]byte("This is pretty long key"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Reset()
//	ciphertext := c.Crypt([]byte("Hello, World!"))
//	plaintext := c.Crypt(ciphertext)
//
// The keystream only depends on the key.  There is no nonce, so encrypting
// two messages with the same key reveals the XOR of the two plaintexts.
// RC4 provides no integrity protection and is cryptographically broken;
// the package exists to interoperate with data protected by RC4.
//
// The package [seehuhn.de/go/rc4/message] converts between text and
// bytes using an explicit character encoding.
package rc4
