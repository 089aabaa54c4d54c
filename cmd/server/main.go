package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/cricklet/chessgrid/internal/storage"
)

type config struct {
	port  int
	dbDir Optional[string]
}

func parseArgs(args []string) config {
	cfg := config{port: 8002}
	for _, arg := range args {
		if parsed, err := strconv.ParseInt(arg, 10, 64); err == nil {
			cfg.port = int(parsed)
		} else if strings.HasPrefix(arg, "-db=") {
			cfg.dbDir = Some(strings.TrimPrefix(arg, "-db="))
		}
	}
	return cfg
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	cfg := parseArgs(os.Args[1:])

	var store *storage.Storage
	if cfg.dbDir.HasValue() {
		var err Error
		store, err = storage.Open(cfg.dbDir.Value())
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer store.Close()
	}

	server, err := NewServer(store, &DefaultLogger)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Println("serving at", cfg.port)
	err = Wrap(http.ListenAndServe(fmt.Sprintf(":%v", cfg.port), server.Router()))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
