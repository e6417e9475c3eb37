/*
 * errors.go, part of gopolymer.
 *
 * Copyright 2026 The gopolymer authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package polymer

import (
	"fmt"
	"strings"
)

//Kinds of errors returned by this package.
const (
	InvalidParameters = "invalid parameters"
	DivideByZero      = "division by zero"
	InvalidEnsemble   = "invalid ensemble"
	AlreadyGenerated  = "chain already generated"
)

//Sentinel errors, to be used with errors.Is.
var (
	ErrInvalidParameters = &CError{kind: InvalidParameters}
	ErrDivideByZero      = &CError{kind: DivideByZero}
	ErrInvalidEnsemble   = &CError{kind: InvalidEnsemble}
	ErrAlreadyGenerated  = &CError{kind: AlreadyGenerated}
)

//CError (Chain Error) is the error type returned by this package. It implements Error.
type CError struct {
	kind     string
	msg      string
	deco     []string
	critical bool
	cause    error
}

func newCError(kind, msg, caller string) *CError {
	return &CError{kind: kind, msg: msg, deco: []string{caller}, critical: true}
}

//Error returns the kind, the message and the decoration of the error.
func (err *CError) Error() string {
	s := "gopolymer: " + err.kind
	if err.msg != "" {
		s += ": " + err.msg
	}
	if err.cause != nil {
		s += ": " + err.cause.Error()
	}
	if len(err.deco) > 0 {
		s += fmt.Sprintf(" (in %s)", strings.Join(err.deco, " <- "))
	}
	return s
}

//Decorate Adds new information to the error
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err *CError) Critical() bool { return err.critical }

//Kind returns the kind of the error, one of the constants of this package.
func (err *CError) Kind() string { return err.kind }

//Is reports whether target is a CError of the same kind.
func (err *CError) Is(target error) bool {
	t, ok := target.(*CError)
	return ok && t.kind == err.kind
}

//Unwrap returns the error, if any, that caused this one.
func (err *CError) Unwrap() error { return err.cause }

//errDecorate is a helper function that asserts that the error
//implements Error and decorates the error with the caller's name before returning it.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
