// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/session.go
// Summary: Session runs a command on a pty and streams its output
// through the buffer's decoder.
// Usage: Start, then read buffer state under Lock/Unlock; SendInput
// forwards keystrokes to the child.
// Notes: The buffer itself is unsynchronized; the session owns the
// mutex that serializes pump writes against render reads.

package host

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/creack/pty"

	"github.com/gridterm/gridterm/term"
)

// Session couples a child process on a pty with a scrollback buffer.
type Session struct {
	buf *term.Buffer
	mu  sync.Mutex

	cmd  *exec.Cmd
	ptmx *os.File

	stop chan struct{}
	done chan struct{}
}

// NewSession creates a session around an existing buffer.
func NewSession(buf *term.Buffer) *Session {
	return &Session{
		buf:  buf,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start launches command on a pty sized to the buffer's viewport and
// begins pumping its output into the buffer.
func (s *Session) Start(command string, args ...string) error {
	s.mu.Lock()
	cols, rows := s.buf.Width(), s.buf.Height()
	s.mu.Unlock()

	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLUMNS="+strconv.Itoa(cols),
		"LINES="+strconv.Itoa(rows),
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return fmt.Errorf("start %s on pty: %w", command, err)
	}
	s.cmd = cmd
	s.ptmx = ptmx

	go func() {
		defer close(s.done)
		if err := s.Pump(ptmx); err != nil {
			log.Printf("session pump ended: %v", err)
		}
	}()
	return nil
}

// Pump decodes r rune by rune into the buffer until EOF or Close. It
// holds the session lock per line-sized chunk rather than per rune so
// renders interleave without starving.
func (s *Session) Pump(r io.Reader) error {
	reader := bufio.NewReader(r)
	chunk := make([]rune, 0, 256)

	flush := func() {
		if len(chunk) == 0 {
			return
		}
		s.mu.Lock()
		s.buf.Write(string(chunk))
		s.mu.Unlock()
		chunk = chunk[:0]
	}

	for {
		select {
		case <-s.stop:
			flush()
			return nil
		default:
		}

		ru, _, err := reader.ReadRune()
		if err != nil {
			flush()
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read pty: %w", err)
		}
		chunk = append(chunk, ru)
		if ru == '\n' || len(chunk) == cap(chunk) {
			flush()
		}
		// Drain whatever is already buffered before yielding the lock.
		if reader.Buffered() == 0 {
			flush()
		}
	}
}

// SendInput forwards bytes (keystrokes) to the child process.
func (s *Session) SendInput(data []byte) error {
	if s.ptmx == nil {
		return fmt.Errorf("session not started")
	}
	if _, err := s.ptmx.Write(data); err != nil {
		return fmt.Errorf("write pty: %w", err)
	}
	return nil
}

// Resize updates both the buffer viewport and the pty window size.
func (s *Session) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	s.mu.Lock()
	s.buf.Resize(cols, rows)
	s.mu.Unlock()

	if s.ptmx != nil {
		if err := pty.Setsize(s.ptmx, &pty.Winsize{
			Rows: uint16(rows),
			Cols: uint16(cols),
		}); err != nil {
			log.Printf("pty resize failed: %v", err)
		}
	}
}

// Lock acquires the session lock for reading buffer state during a
// render pass.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Buffer returns the underlying buffer. Callers must hold the session
// lock while touching it.
func (s *Session) Buffer() *term.Buffer { return s.buf }

// Wait blocks until the pump goroutine finishes.
func (s *Session) Wait() { <-s.done }

// Close stops the pump, closes the pty and kills the child process.
func (s *Session) Close() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	if s.ptmx != nil {
		s.ptmx.Close()
	}
	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
}
