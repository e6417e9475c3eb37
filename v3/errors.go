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

package v3

import (
	"fmt"
	"strings"
)

//the same as polymer.Error but avoid circular import.
type errorInt interface {
	Error() string
	Decorate(string) []string
}

//Error is the error type returned by v3 functions. It fulfills polymer.Error.
type Error struct {
	kind     string
	message  string
	deco     []string
	critical bool
}

//Kinds of v3 errors. They are the values compared by errors.Is.
const (
	DivideByZero = "division by a near-zero magnitude"
	BadShape     = "ill-formed coordinates"
)

//Sentinels to be used with errors.Is
var (
	ErrDivideByZero = &Error{kind: DivideByZero}
	ErrShape        = &Error{kind: BadShape}
)

func newError(kind, message, caller string) *Error {
	return &Error{kind: kind, message: message, deco: []string{caller}, critical: true}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	if err.message == "" {
		return "gopolymer/v3: " + err.kind
	}
	return fmt.Sprintf("gopolymer/v3: %s: %s", err.kind, err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//Is reports whether target is a v3 error of the same kind.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == err.kind
}

//Trace returns the decoration as a single string, innermost caller first.
func (err *Error) Trace() string {
	return strings.Join(err.deco, " <- ")
}

//errDecorate is a helper function that asserts that the error
//implements polymer.Error and decorates the error with the caller's name before returning it.
//Errors that don't implement it are returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(errorInt)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("gopolymer/v3: A Matrix should have 3 columns")
	ErrIndexOutOfRange = PanicMsg("gopolymer/v3: index out of range")
)
