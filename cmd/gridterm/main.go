// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/gridterm/main.go
// Summary: Interactive terminal entry point.

package main

import (
	"flag"
	"log"

	"github.com/gridterm/gridterm/internal/app"
)

func main() {
	cfg := app.DefaultConfig()
	flag.StringVar(&cfg.Command, "command", cfg.Command, "command to run on the pty")
	flag.IntVar(&cfg.Scrollback, "scrollback", cfg.Scrollback, "lines retained beyond the viewport")
	flag.StringVar(&cfg.HistoryPath, "history", cfg.HistoryPath, "input history database path")
	flag.Parse()

	if err := app.Run(cfg); err != nil {
		log.Fatalf("gridterm: %v", err)
	}
}
