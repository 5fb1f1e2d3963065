package node

import (
	"fmt"
	"strings"
)

// Errors collects the failures recorded while a registry's declarations
// run. Every node created for a registry shares one Errors value, so a
// failure deep inside a nested configure function is still visible after
// the outermost declaration returns.
type Errors struct {
	errs []error

	// Set on a provisional sink created by fork. While held, errors are
	// kept locally; after commit they are forwarded to up.
	up   *Errors
	held bool
}

// Add records err. Nil errors are ignored.
func (e *Errors) Add(err error) {
	if e == nil || err == nil {
		return
	}
	if e.up != nil && !e.held {
		e.up.Add(err)
		return
	}
	e.errs = append(e.errs, err)
}

// Len returns the number of recorded errors.
func (e *Errors) Len() int {
	if e == nil {
		return 0
	}
	return len(e.errs)
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *Errors) Err() error {
	if e.Len() == 0 {
		return nil
	}
	return e
}

// Error implements the error interface with a formatted multi-error message.
func (e *Errors) Error() string {
	switch e.Len() {
	case 0:
		return ""
	case 1:
		return e.errs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "node: %d error(s):\n", len(e.errs))
	for _, err := range e.errs {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the recorded errors so errors.Is and errors.As can
// inspect each of them.
func (e *Errors) Unwrap() []error {
	if e == nil {
		return nil
	}
	return append([]error(nil), e.errs...)
}

// fork returns a provisional sink whose errors reach e only after commit.
func (e *Errors) fork() *Errors {
	return &Errors{up: e, held: true}
}

// commit forwards everything held so far and makes the sink pass-through.
func (e *Errors) commit() {
	if e.up == nil || !e.held {
		return
	}
	e.held = false
	for _, err := range e.errs {
		e.up.Add(err)
	}
	e.errs = nil
}
