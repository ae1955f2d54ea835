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

package main

import (
	"errors"
	"os"
	"strings"

	"github.com/hashicorp/cli"

	"seehuhn.de/go/rc4/message"
)

var _ cli.Command = (*DecryptCommand)(nil)

// DecryptCommand implements "rc4crypt decrypt".
type DecryptCommand struct {
	baseCommand
}

func (c *DecryptCommand) Synopsis() string {
	return "Decrypt a message"
}

func (c *DecryptCommand) Help() string {
	helpText := `
Usage: rc4crypt decrypt [options] [ciphertext]

  Decrypts a message which was encrypted with "rc4crypt encrypt".  The
  ciphertext is taken from the command line, from the file given by -in,
  or from standard input.  The same key, -charset and -saslprep options
  as for encryption must be used.  If -out is given, the decrypted bytes
  are written to the file without character set conversion.

      $ rc4crypt decrypt -key "This is pretty long key" -in message.hex

Options:
` + sharedHelp

	return strings.TrimSpace(helpText)
}

func (c *DecryptCommand) Run(args []string) int {
	f := c.flagSet("decrypt")
	args, opt, err := c.parse(f, args)
	if err != nil {
		c.ui.Error(err.Error())
		c.ui.Error(c.Help())
		return exitUsage
	}

	key, err := c.key()
	if err != nil {
		c.ui.Error(err.Error())
		return exitUsage
	}
	data, err := c.input(args)
	if err != nil {
		c.ui.Error(err.Error())
		return exitUsage
	}
	crypt, err := c.readCiphertext(data)
	if err != nil {
		c.ui.Error("invalid ciphertext: " + err.Error())
		return exitUsage
	}

	if c.flagOut != "" {
		plain, err := c.cryptBytes(key, opt, crypt)
		if err != nil {
			c.ui.Error(err.Error())
			return cryptExitCode(err)
		}
		err = os.WriteFile(c.flagOut, plain, 0o600)
		clear(plain)
		if err != nil {
			c.ui.Error(err.Error())
			return exitCrypt
		}
		c.logger.Info("message decrypted", "bytes", len(crypt), "file", c.flagOut)
		return exitOK
	}

	plain, err := message.Decrypt(crypt, key, opt)
	if err != nil {
		c.ui.Error(err.Error())
		var decErr *message.DecodingError
		if errors.As(err, &decErr) {
			c.ui.Error("wrong key or corrupted ciphertext?")
		}
		return cryptExitCode(err)
	}
	c.logger.Info("message decrypted", "bytes", len(crypt))

	c.ui.Output(plain)
	return exitOK
}
