// Package serr holds the errors returned by the Marlin server's service layer.
// Its Error type carries a message plus any number of causes, and errors.Is
// reports true for an Error checked against any one of its causes. The API
// layer uses that to pick an HTTP status without typecasting.
package serr

import "errors"

var (
	ErrBadCredentials = errors.New("the supplied username/password combination is incorrect")
	ErrPermissions    = errors.New("you don't have permission to do that")
	ErrNotFound       = errors.New("the requested entity could not be found")
	ErrAlreadyExists  = errors.New("resource with same identifying information already exists")
	ErrDB             = errors.New("an error occured with the DB")
	ErrBadArgument    = errors.New("one or more of the arguments is invalid")
	ErrBodyUnmarshal  = errors.New("malformed data in request")
)

// Error is an error with a message and zero or more causes. Its Error()
// output is the message followed by the text of the first cause.
//
// Use New or WrapDB to create one.
type Error struct {
	msg   string
	cause []error
}

func (e Error) Error() string {
	switch {
	case len(e.cause) == 0:
		return e.msg
	case e.msg == "":
		return e.cause[0].Error()
	default:
		return e.msg + ": " + e.cause[0].Error()
	}
}

// Unwrap gives the causes of e to the errors API.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is returns whether target is an Error equal to e or is directly one of its
// causes.
func (e Error) Is(target error) bool {
	if other, ok := target.(Error); ok && e.msg == other.msg && len(e.cause) == len(other.cause) {
		same := true
		for i := range e.cause {
			if e.cause[i] != other.cause[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}

	for i := range e.cause {
		if e.cause[i] == target {
			return true
		}
	}
	return false
}

// WrapDB creates an Error caused by err and ErrDB. msg may be left empty.
func WrapDB(msg string, err error) Error {
	return Error{
		msg:   msg,
		cause: []error{err, ErrDB},
	}
}

// New creates an Error with the given message and causes.
func New(msg string, causes ...error) Error {
	err := Error{msg: msg}
	if len(causes) > 0 {
		err.cause = make([]error, len(causes))
		copy(err.cause, causes)
	}
	return err
}
