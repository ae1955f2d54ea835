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
	"strings"

	"github.com/hashicorp/cli"

	"seehuhn.de/go/rc4/message"
)

var _ cli.Command = (*EncryptCommand)(nil)

// EncryptCommand implements "rc4crypt encrypt".
type EncryptCommand struct {
	baseCommand
}

func (c *EncryptCommand) Synopsis() string {
	return "Encrypt a message"
}

func (c *EncryptCommand) Help() string {
	helpText := `
Usage: rc4crypt encrypt [options] [message]

  Encrypts a message with RC4.  The message is taken from the command
  line, from the file given by -in, or from standard input.  The
  ciphertext is written as hexadecimal to standard output, unless -out
  is given.  Files given by -in are encrypted byte by byte, without
  character set conversion, so they may contain binary data.

      $ rc4crypt encrypt -key "This is pretty long key" "Hello, World!"

  RC4 has no nonce: never use the same key for two different messages.

Options:
` + sharedHelp

	return strings.TrimSpace(helpText)
}

func (c *EncryptCommand) Run(args []string) int {
	f := c.flagSet("encrypt")
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
	plain, err := c.input(args)
	if err != nil {
		c.ui.Error(err.Error())
		return exitUsage
	}

	var crypt []byte
	if c.flagIn != "" {
		crypt, err = c.cryptBytes(key, opt, plain)
	} else {
		crypt, err = message.Encrypt(string(plain), key, opt)
	}
	if err != nil {
		c.ui.Error(err.Error())
		return cryptExitCode(err)
	}
	c.logger.Info("message encrypted", "bytes", len(crypt))

	err = c.writeCiphertext(crypt)
	if err != nil {
		c.ui.Error(err.Error())
		return exitCrypt
	}
	if c.flagOut != "" {
		c.logger.Debug("ciphertext written", "file", c.flagOut)
	}
	return exitOK
}

