// Package logging provides the console progress writer for fixturegen.
// Generation logic reports events through an interface; this package owns
// the timestamped presentation so the generator stays testable without
// asserting on log text.
package logging

import (
	"fmt"
	"io"
	"time"
)

// timestampLayout matches the historical console format of the generator.
const timestampLayout = "2006-01-02 15:04:05"

// Console writes progress lines as "[YYYY-MM-DD HH:MM:SS] message".
type Console struct {
	w   io.Writer
	now func() time.Time
}

// NewConsole returns a Console writing to w with the wall clock.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, now: time.Now}
}

// NewConsoleAt returns a Console with an injected clock. Used by tests.
func NewConsoleAt(w io.Writer, now func() time.Time) *Console {
	return &Console{w: w, now: now}
}

// Stepf writes one timestamped line.
func (c *Console) Stepf(format string, args ...any) {
	fmt.Fprintf(c.w, "[%s] %s\n", c.now().Format(timestampLayout), fmt.Sprintf(format, args...))
}

// Created writes the per-fixture line with its character count.
func (c *Console) Created(filename string, chars int, description string) {
	c.Stepf("✓ Created %s (%d chars) - %s", filename, chars, description)
}

// Blank writes an untimestamped separator line.
func (c *Console) Blank() {
	fmt.Fprintln(c.w)
}
