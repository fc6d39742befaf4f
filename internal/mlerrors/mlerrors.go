// Package mlerrors has errors that carry a message meant for the person at
// the Marlin shell alongside the usual technical one.
package mlerrors

import (
	"errors"
	"fmt"
)

// consoleError is an error caused by a shell command that could not be
// carried out. It has a human-readable message to show at the console as well
// as a typical more technical "error message" style message.
type consoleError struct {
	msg   string
	human string
	wrap  error
}

func (e *consoleError) Error() string {
	return e.msg
}

// ConsoleMessage gives the message to show at the console.
func (e *consoleError) ConsoleMessage() string {
	return e.human
}

func (e *consoleError) Unwrap() error {
	return e.wrap
}

// Console returns a new error that has both the message to show the user and
// the technical description of the error.
func Console(human, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("console error: %s", human)
	}
	return &consoleError{
		msg:   technical,
		human: human,
	}
}

// Consolef returns a new error with a message to show to the user built from
// the format string and its arguments, and a generated Error() description.
func Consolef(format string, a ...interface{}) error {
	return Console(fmt.Sprintf(format, a...), "")
}

// WrapConsole is Console but the returned error also wraps e.
func WrapConsole(e error, human, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("console error: %s: %v", human, e)
	}
	return &consoleError{
		msg:   technical,
		human: human,
		wrap:  e,
	}
}

// WrapConsolef is Consolef but the returned error also wraps e.
func WrapConsolef(e error, format string, a ...interface{}) error {
	return WrapConsole(e, fmt.Sprintf(format, a...), "")
}

// ConsoleMessage gets the message to display at the console for err. If err
// or anything it wraps was made by this package, its human message is given;
// otherwise err.Error() is.
func ConsoleMessage(err error) string {
	var ce *consoleError
	if errors.As(err, &ce) {
		return ce.ConsoleMessage()
	}
	return err.Error()
}
