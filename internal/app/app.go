// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/app/app.go
// Summary: Interactive terminal application wiring: screen, session,
// line editor and persistent history.
// Usage: Called from cmd/gridterm; owns the tcell event loop.

package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/gridterm/gridterm/host"
	"github.com/gridterm/gridterm/input"
	"github.com/gridterm/gridterm/render"
	gridterm "github.com/gridterm/gridterm/term"
)

const (
	refreshInterval  = 30 * time.Millisecond
	scrollStep       = 3
	historySeedLimit = 500
)

// Config holds the interactive application's settings.
type Config struct {
	// Command is the child process to run on the pty.
	Command string

	// Scrollback is the number of lines retained beyond the viewport.
	Scrollback int

	// HistoryPath overrides the default history database location.
	// Empty selects <user config dir>/gridterm/history.db.
	HistoryPath string
}

// DefaultConfig returns sensible defaults, using $SHELL when set.
func DefaultConfig() Config {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return Config{
		Command:    shell,
		Scrollback: 1000,
	}
}

// Run starts the interactive terminal and blocks until the user quits.
func Run(cfg Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	store, history := openHistory(cfg)
	if store != nil {
		defer store.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	buf := gridterm.NewBuffer(gridterm.Config{
		Width:         cols,
		Height:        rows,
		MaxScrollback: cfg.Scrollback,
	})
	session := host.NewSession(buf)
	if err := session.Start(cfg.Command); err != nil {
		return err
	}
	defer session.Close()

	editor := input.NewEditor(history)
	return eventLoop(screen, session, editor, store)
}

// openHistory opens the persistent store and seeds the in-memory
// history from it. A store failure degrades to session-only history.
func openHistory(cfg Config) (*input.Store, *input.History) {
	history := input.NewHistory(historySeedLimit)

	path := cfg.HistoryPath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			log.Printf("no config dir, history will not persist: %v", err)
			return nil, history
		}
		path = filepath.Join(dir, "gridterm", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("history dir unavailable: %v", err)
		return nil, history
	}

	store, err := input.OpenStore(path)
	if err != nil {
		log.Printf("history store unavailable: %v", err)
		return nil, history
	}
	recent, err := store.Recent(historySeedLimit)
	if err != nil {
		log.Printf("history seed failed: %v", err)
	}
	history.Seed(recent)
	return store, history
}

// eventLoop multiplexes key events against periodic repaints of the
// pty-fed buffer.
func eventLoop(screen tcell.Screen, session *host.Session, editor *input.Editor, store *input.Store) error {
	quit := make(chan struct{})
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()
	defer close(quit)

	for {
		draw(screen, session, editor)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			cols, rows := ev.Size()
			session.Resize(cols, rows)
			screen.Sync()

		case *tcell.EventInterrupt:
			// Periodic repaint; drawing happens at the top of the loop.

		case *tcell.EventKey:
			if done := handleKey(ev, session, editor, store); done {
				return nil
			}

		case nil:
			return nil
		}
	}
}

// handleKey applies one key event. It reports true when the
// application should exit.
func handleKey(ev *tcell.EventKey, session *host.Session, editor *input.Editor, store *input.Store) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true

	case tcell.KeyPgUp:
		session.Lock()
		session.Buffer().ScrollUp(scrollStep)
		session.Unlock()
	case tcell.KeyPgDn:
		session.Lock()
		session.Buffer().ScrollDown(scrollStep)
		session.Unlock()

	case tcell.KeyUp:
		editor.HistoryPrev()
	case tcell.KeyDown:
		editor.HistoryNext()
	case tcell.KeyLeft:
		editor.MoveLeft()
	case tcell.KeyRight:
		editor.MoveRight()
	case tcell.KeyHome, tcell.KeyCtrlA:
		editor.MoveHome()
	case tcell.KeyEnd, tcell.KeyCtrlE:
		editor.MoveEnd()
	case tcell.KeyCtrlK:
		editor.Kill()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		editor.Backspace()
	case tcell.KeyDelete:
		editor.Delete()

	case tcell.KeyEnter:
		line := editor.Submit()
		if store != nil {
			if err := store.Append(line); err != nil {
				log.Printf("history append failed: %v", err)
			}
		}
		session.Lock()
		session.Buffer().ScrollToBottom()
		session.Unlock()
		if err := session.SendInput([]byte(line + "\n")); err != nil {
			log.Printf("send input failed: %v", err)
		}

	case tcell.KeyCtrlC:
		// Forward the interrupt to the child rather than quitting.
		if err := session.SendInput([]byte{0x03}); err != nil {
			log.Printf("send interrupt failed: %v", err)
		}

	case tcell.KeyRune:
		editor.Insert(ev.Rune())
	}
	return false
}

// draw paints the buffer viewport, then overlays the composed input
// line on the bottom row while one is being edited.
func draw(screen tcell.Screen, session *host.Session, editor *input.Editor) {
	session.Lock()
	defer session.Unlock()

	buf := session.Buffer()
	render.Draw(screen, buf)

	if line := editor.Line(); line != "" || editor.Cursor() > 0 {
		y := buf.Height() - 1
		style := tcell.StyleDefault.Reverse(true)
		x := 0
		for _, r := range line {
			if x >= buf.Width() {
				break
			}
			screen.SetContent(x, y, r, nil, style)
			x++
		}
		col := editor.Cursor()
		if col > buf.Width()-1 {
			col = buf.Width() - 1
		}
		screen.ShowCursor(col, y)
	}
	screen.Show()
}
