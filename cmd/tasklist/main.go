package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/tasklist/internal/cli"
	"github.com/idilsaglam/tasklist/internal/config"
)

func main() {
	// No flags: configuration comes from tasklist.toml and TASKLIST_* env vars.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tasklist: "+err.Error())
		os.Exit(1)
	}

	os.Exit(cli.Run(cfg, cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}))
}
