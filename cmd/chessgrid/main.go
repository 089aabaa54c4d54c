package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cricklet/chessgrid/internal/board"
	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/cricklet/chessgrid/internal/movegen"
	"github.com/pkg/profile"
	"golang.org/x/term"
)

type options struct {
	pieceType board.PieceType
	unicode   bool
	fen       Optional[string]
}

func parseArgs(args []string, isTerminal bool) (options, Error) {
	opts := options{pieceType: board.Knight, unicode: isTerminal}
	for _, arg := range args {
		switch arg {
		case "unicode":
			opts.unicode = true
		case "plain":
			opts.unicode = false
		default:
			if pieceType, err := board.PieceTypeFromString(arg); IsNil(err) {
				opts.pieceType = pieceType
			} else if _, err := board.PositionFromFen(arg); IsNil(err) {
				opts.fen = Some(arg)
			} else {
				return opts, Errorf("unknown argument '%v'", arg)
			}
		}
	}
	return opts, NilError
}

func render(p *board.Position, opts options) string {
	if opts.unicode {
		return p.Unicode()
	}
	return p.String()
}

func run(opts options, out io.Writer) Error {
	p := board.NewPosition()
	if opts.fen.HasValue() {
		var err Error
		p, err = board.PositionFromFen(opts.fen.Value())
		if !IsNil(err) {
			return err
		}
	}

	fmt.Fprint(out, render(p, opts))

	moves := movegen.MovesFor(p, opts.pieceType)
	fmt.Fprintf(out, "%v to move, %v moves count: %v\n", p.SideToMove, opts.pieceType.Name(), len(moves))

	if len(moves) == 0 {
		return NilError
	}

	fmt.Fprintf(out, "Applying first move %v...\n", moves[0])
	err := p.ApplyMove(moves[0])
	if !IsNil(err) {
		return err
	}
	fmt.Fprint(out, render(p, opts))
	return NilError
}

func main() {
	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	opts, err := parseArgs(args, term.IsTerminal(int(os.Stdout.Fd())))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err = run(opts, os.Stdout)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err.String())
		os.Exit(1)
	}
}
