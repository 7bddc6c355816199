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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/divcore/curated"
	"github.com/jetsetilly/divcore/fixedpoint"
	"github.com/jetsetilly/divcore/hardware/divider"
	"github.com/jetsetilly/divcore/logger"
	"github.com/jetsetilly/divcore/modalflag"
	"github.com/jetsetilly/divcore/monitor"
	"github.com/jetsetilly/divcore/regression"
	"github.com/jetsetilly/divcore/statsview"
)

// exit values for the different failure categories. zero means success.
const (
	exitParse = 10
	exitMode  = 20
)

// MissingOperands is returned by modes that expected two operands on the
// command line.
const MissingOperands = "two operands required (dividend divisor)"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TRACE", "MONITOR")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParse)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "TRACE":
		err = trace(md)
	case "MONITOR":
		err = mon(md)
	}

	if err != nil {
		if curated.Has(err, monitor.UserQuit) {
			os.Exit(0)
		}
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(exitMode)
	}
}

// operands reads the dividend and divisor from the remaining command line
// arguments.
func operands(md *modalflag.Modes) (fixedpoint.Q2210, fixedpoint.Q2210, error) {
	if len(md.RemainingArgs()) != 2 {
		return 0, 0, curated.Errorf(MissingOperands)
	}

	a, err := fixedpoint.ParseQ2210(md.GetArg(0))
	if err != nil {
		return 0, 0, err
	}

	b, err := fixedpoint.ParseQ2210(md.GetArg(1))
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// run performs a single division and prints the quotient.
func run(md *modalflag.Modes) error {
	md.NewMode()
	log := md.AddBool("log", false, "echo log entries")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	a, b, err := operands(md)
	if err != nil {
		return err
	}

	div := divider.NewDivider()
	r, _ := div.Divide(a, b)
	fmt.Println(r)

	return nil
}

// trace performs a single division, printing the engine state after every
// tick. With the -soak option it instead runs a batch of random divisions
// against the reference model.
func trace(md *modalflag.Modes) error {
	md.NewMode()
	soak := md.AddInt("soak", 0, "check n random divisions against reference model")
	seed := md.AddInt("seed", 0, "operand generator seed for -soak (0 = current time)")
	stats := md.AddBool("stats", false, "run stats server (requires statsview build tag)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			fmt.Println("* stats server not available. build with statsview tag")
		}
	}

	if *soak > 0 {
		s := int64(*seed)
		if s == 0 {
			s = time.Now().UnixNano()
			fmt.Printf("seed: %d\n", s)
		}
		return regression.Run(os.Stdout, *soak, s)
	}

	a, b, err := operands(md)
	if err != nil {
		return err
	}

	div := divider.NewDivider()
	inp := divider.Inputs{Start: true, A: a, B: b}

	div.Step(inp)
	inp.Start = false

	for t := 1; !div.Done(); t++ {
		div.Step(inp)
		fmt.Printf("[%02d] %s\n", t, div)
	}
	fmt.Println(div.Result())

	return nil
}

// mon runs the interactive monitor.
func mon(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	div := divider.NewDivider()
	m, err := monitor.NewMonitor(div, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	return m.Run()
}
