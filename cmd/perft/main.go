package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cricklet/chessgrid/internal/board"
	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/cricklet/chessgrid/internal/movegen"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
)

type options struct {
	depth    int
	fen      string
	progress bool
}

// parseArgs takes the first number as the depth. Everything else is joined
// back into a FEN, since the shell splits it on spaces.
func parseArgs(args []string) (options, Error) {
	opts := options{depth: 3, fen: board.InitialFen, progress: true}

	fenParts := []string{}
	for _, arg := range args {
		if arg == "quiet" {
			opts.progress = false
		} else if depth, err := strconv.Atoi(arg); err == nil && len(fenParts) == 0 {
			if depth < 0 {
				return opts, Errorf("depth must not be negative, got %v", depth)
			}
			opts.depth = depth
		} else {
			fenParts = append(fenParts, arg)
		}
	}

	if len(fenParts) > 0 {
		opts.fen = strings.Join(fenParts, " ")
		_, err := board.PositionFromFen(opts.fen)
		if !IsNil(err) {
			return opts, err
		}
	}
	return opts, NilError
}

func run(opts options, out io.Writer) (movegen.PerftResult, Error) {
	p, err := board.PositionFromFen(opts.fen)
	if !IsNil(err) {
		return movegen.PerftResult{}, err
	}

	fmt.Fprint(out, p.String())
	fmt.Fprintf(out, "perft depth %v\n", opts.depth)

	var bar *progressbar.ProgressBar
	progress := func(done int, total int) {
		if !opts.progress {
			return
		}
		if bar == nil {
			bar = progressbar.Default(int64(total), fmt.Sprint("depth ", opts.depth))
		}
		_ = bar.Set(done)
	}

	start := time.Now()
	entries := movegen.PerftDivide(p, opts.depth, progress)
	elapsed := time.Since(start)

	for _, e := range entries {
		fmt.Fprintf(out, "%v: %v\n", e.Move, e.Result.Leaves)
	}

	total := movegen.PerftDivideTotal(entries)
	if opts.depth == 0 {
		total = movegen.Perft(p, 0)
	}
	fmt.Fprintf(out, "\nnodes %v, captures %v\n",
		humanize.Comma(int64(total.Leaves)), humanize.Comma(int64(total.Captures)))

	if opts.progress && elapsed > 0 {
		perSecond := float64(total.Leaves) / elapsed.Seconds()
		fmt.Fprintf(out, "%v @ %v/s\n", elapsed.Round(time.Millisecond), humanize.Comma(int64(perSecond)))
	}
	return total, NilError
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

	opts, err := parseArgs(args)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	_, err = run(opts, os.Stdout)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err.String())
		os.Exit(1)
	}
}
