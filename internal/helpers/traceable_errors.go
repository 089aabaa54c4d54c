package helpers

import (
	"strings"

	"github.com/ztrue/tracerr"
)

type Error struct {
	errs []tracerr.Error
}

var NilError = Error{nil}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

func (e Error) Error() string {
	result := []string{}
	for _, err := range e.errs {
		result = append(result, err.Error())
	}
	return strings.Join(result, "; ")
}

// String includes the stack trace of every joined error.
func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += tracerr.Sprint(err) + "\n"
	}
	return result
}

func (e Error) First() tracerr.Error {
	if e.errs == nil {
		return nil
	}
	return e.errs[0]
}

// Unwrap exposes every joined error so errors.Is and errors.As see through Error.
func (e Error) Unwrap() []error {
	result := make([]error, 0, len(e.errs))
	for _, err := range e.errs {
		result = append(result, err)
	}
	return result
}

func Wrap(err error) Error {
	if err == nil {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func WrapReturn[T any](x T, err error) (T, Error) {
	return x, Wrap(err)
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	}
	if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

func (e Error) NumErrors() int {
	num := 0
	for _, err := range e.errs {
		if err != nil {
			num++
		}
	}
	return num
}

func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}
