// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/gridcat/main.go
// Summary: Highlighted file viewer. Renders a source file through the
// decoder pipeline and prints the styled stream, or plain text when
// stdout is not a terminal.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/gridterm/gridterm/highlight"
	gridterm "github.com/gridterm/gridterm/term"
)

func main() {
	lexer := flag.String("lexer", "", "force a lexer instead of auto-detection")
	style := flag.String("style", "", "chroma style name")
	plain := flag.Bool("plain", false, "strip styling even on a terminal")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: gridcat [flags] <file>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("gridcat: %v", err)
	}

	name := *lexer
	if name == "" {
		name = highlight.Detect(path, content)
	}
	styled := highlight.Source(string(content), name, *style)

	if *plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(gridterm.Strip(styled))
		return
	}
	fmt.Print(styled)
}
