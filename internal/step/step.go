// Package step runs a labelled unit of work and ties the label to whatever goes wrong inside it.
package step

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Error is returned when the body of a step fails
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("step %q: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Run executes fn once under the given name.
// The label is logged on entry and exit and attached to any returned error.
func Run(log logrus.FieldLogger, name string, fn func() error) error {
	entry := log.WithField("step", name)
	entry.Debug("step started")

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	if err != nil {
		entry.WithError(err).WithField("elapsed", elapsed).Warn("step failed")
		return &Error{Name: name, Err: err}
	}

	entry.WithField("elapsed", elapsed).Debug("step finished")
	return nil
}

// Runf is Run with a formatted name
func Runf(log logrus.FieldLogger, fn func() error, format string, args ...any) error {
	return Run(log, fmt.Sprintf(format, args...), fn)
}
