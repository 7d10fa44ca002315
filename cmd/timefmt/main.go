package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/goliatone/go-timefmt/cmd/timefmt/commands"
)

func main() {
	// .env is optional; TIMEFMT_* may come straight from the environment.
	_ = godotenv.Load()

	if err := commands.NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "timefmt: %v\n", err)
		os.Exit(1)
	}
}
