// This file is part of GopherI2S.
//
// GopherI2S is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherI2S is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherI2S.  If not, see <https://www.gnu.org/licenses/>.


package stepper

import (
	"fmt"

	"github.com/pkg/term"

	"github.com/gopheri2s/gopheri2s/curated"
	"github.com/gopheri2s/gopheri2s/govern"
)

// DefaultTerminal is the device opened by Interactive() when no other
// device is specified.
const DefaultTerminal = "/dev/tty"

// Interactive reads single key presses from the named terminal and passes
// them to Command() until the q command is received. The terminal is put
// into cbreak mode for the duration and restored afterwards.
func (stp *Stepper) Interactive(device string) (rerr error) {
	if device == "" {
		device = DefaultTerminal
	}

	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return fmt.Errorf("stepper: %w", err)
	}
	defer func() {
		err := t.Restore()
		if err == nil {
			err = t.Close()
		}
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("stepper: %w", err)
		}
	}()

	fmt.Fprint(stp.output, Help)

	b := make([]byte, 1)
	for stp.state != govern.Ending {
		n, err := t.Read(b)
		if err != nil {
			return fmt.Errorf("stepper: %w", err)
		}
		if n == 0 {
			continue // for loop
		}

		_, err = stp.Command(b[0])
		if err != nil {
			// unknown keys are not fatal
			if curated.Is(err, UnknownCommand) || curated.Is(err, NoHistory) {
				fmt.Fprintln(stp.output, err)
				continue // for loop
			}
			return err
		}
	}

	return nil
}
