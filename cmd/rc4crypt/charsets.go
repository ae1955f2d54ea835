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

var _ cli.Command = (*CharsetsCommand)(nil)

// CharsetsCommand implements "rc4crypt charsets".
type CharsetsCommand struct {
	ui cli.Ui
}

func (c *CharsetsCommand) Synopsis() string {
	return "List the supported character encodings"
}

func (c *CharsetsCommand) Help() string {
	helpText := `
Usage: rc4crypt charsets

  Lists the names of the character encodings which can be used with
  the -charset option.  Other common aliases, like "latin1", are
  accepted as well.
`
	return strings.TrimSpace(helpText)
}

func (c *CharsetsCommand) Run(args []string) int {
	if len(args) > 0 {
		c.ui.Error("charsets takes no arguments")
		return exitUsage
	}
	for _, name := range message.Names() {
		c.ui.Output(name)
	}
	return exitOK
}
