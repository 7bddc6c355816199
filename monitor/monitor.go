// This file is part of DivCore.
//
// DivCore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DivCore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DivCore.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/divcore/curated"
	"github.com/jetsetilly/divcore/fixedpoint"
	"github.com/jetsetilly/divcore/hardware/divider"
)

// sentinel error patterns for the monitor package.
const (
	// UserQuit is how the monitor says the session ended normally.
	UserQuit = "user quit"

	// NotATerminal is returned by NewMonitor() when the input file does not
	// respond to termios attribute requests.
	NotATerminal = "monitor: input is not a terminal"
)

// Monitor is an interactive session with a divider engine.
type Monitor struct {
	div *divider.Divider
	inp divider.Inputs

	input  *os.File
	output io.Writer

	// terminal attributes for canonical and cbreak modes. the monitor
	// switches to canonical mode when reading a new operand value
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// total ticks since the session began
	ticks int
}

// NewMonitor attaches a monitor to the divider engine. Input must be a
// terminal; output is usually the same terminal.
func NewMonitor(div *divider.Divider, input *os.File, output io.Writer) (*Monitor, error) {
	mon := &Monitor{
		div:    div,
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(input.Fd(), &mon.canAttr); err != nil {
		return nil, curated.Errorf(NotATerminal)
	}
	mon.cbreakAttr = mon.canAttr
	termios.Cfmakecbreak(&mon.cbreakAttr)

	return mon, nil
}

// Run the monitor session. Returns a curated error with the UserQuit pattern
// on a clean exit.
func (mon *Monitor) Run() error {
	if err := termios.Tcsetattr(mon.input.Fd(), termios.TCIFLUSH, &mon.cbreakAttr); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer termios.Tcsetattr(mon.input.Fd(), termios.TCIFLUSH, &mon.canAttr)

	mon.printf("divider monitor. 'h' for help\n")
	mon.printState()

	b := make([]byte, 1)
	for {
		_, err := mon.input.Read(b)
		if err != nil {
			return curated.Errorf("monitor: %v", err)
		}

		if err := mon.service(b[0]); err != nil {
			return err
		}
	}
}

// service a single keypress.
func (mon *Monitor) service(key byte) error {
	switch key {
	case 'q':
		mon.printf("\n")
		return curated.Errorf(UserQuit)

	case 'h', '?':
		mon.printHelp()

	case 's', ' ':
		mon.tick()
		mon.printState()

	case 'g':
		// assert the start line for one tick. the engine will ignore it
		// unless it is in the wait phase
		mon.inp.Start = true
		mon.tick()
		mon.inp.Start = false
		mon.printState()

	case 'x':
		mon.inp.Reset = true
		mon.tick()
		mon.inp.Reset = false
		mon.printState()

	case 'r':
		// run to the next done pulse. the latency bound means we know
		// exactly how long that can take; double it so a wedged engine
		// can't hang the monitor
		ok := false
		for i := 0; i < divider.Latency*2; i++ {
			mon.tick()
			if mon.div.Done() {
				ok = true
				break
			}
		}
		if !ok {
			mon.printf("no done pulse after %d ticks (is the engine started?)\n", divider.Latency*2)
		}
		mon.printState()

	case 'a':
		if v, ok := mon.readOperand("A"); ok {
			mon.inp.A = v
		}
		mon.printState()

	case 'b':
		if v, ok := mon.readOperand("B"); ok {
			mon.inp.B = v
		}
		mon.printState()

	case 'm':
		mon.dump()
	}

	return nil
}

func (mon *Monitor) tick() {
	mon.div.Step(mon.inp)
	mon.ticks++
}

func (mon *Monitor) printf(s string, args ...interface{}) {
	io.WriteString(mon.output, fmt.Sprintf(s, args...))
}

func (mon *Monitor) printState() {
	mon.printf("[%06d] %s\n", mon.ticks, mon.div)
	if mon.div.Done() {
		mon.printf("  result: %s\n", mon.div.Result())
	}
}

func (mon *Monitor) printHelp() {
	mon.printf("s (or space)   tick the clock\n")
	mon.printf("g              assert start for one tick\n")
	mon.printf("x              assert reset for one tick\n")
	mon.printf("r              run to the next done pulse\n")
	mon.printf("a, b           set an operand (decimal, eg. -10.5)\n")
	mon.printf("m              dump engine state as a graphviz digraph\n")
	mon.printf("q              quit\n")
}

// readOperand switches the terminal back to canonical mode and reads a
// Q22.10 value on a line of its own.
func (mon *Monitor) readOperand(port string) (fixedpoint.Q2210, bool) {
	termios.Tcsetattr(mon.input.Fd(), termios.TCIFLUSH, &mon.canAttr)
	defer termios.Tcsetattr(mon.input.Fd(), termios.TCIFLUSH, &mon.cbreakAttr)

	mon.printf("%s> ", port)

	s, err := bufio.NewReader(mon.input).ReadString('\n')
	if err != nil {
		return 0, false
	}

	v, err := fixedpoint.ParseQ2210(strings.TrimSpace(s))
	if err != nil {
		mon.printf("* %v\n", err)
		return 0, false
	}

	return v, true
}

// dump writes the graphviz digraph of the engine state to the output.
func (mon *Monitor) dump() {
	b := &strings.Builder{}
	memviz.Map(b, mon.div)
	mon.printf("%s", b.String())
}
