/*
 * interfaces.go, part of gopolymer.
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

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a function in the calling stack, plus, optionally, relevant information
	//in the format "FunctionName: Extra info". It returns the resulting decoration slice. If passed an
	//empty string, it just returns the current value.
	Decorate(string) []string
}

//Logger is the logging interface used by the simulator. The library never
//logs on its own; set Params.Logger to get messages.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

//NoOpLogger is a logger that does nothing. It is the default.
type NoOpLogger struct{}

func (n NoOpLogger) Debugf(format string, v ...any) {}
func (n NoOpLogger) Infof(format string, v ...any)  {}
func (n NoOpLogger) Warnf(format string, v ...any)  {}
func (n NoOpLogger) Errorf(format string, v ...any) {}
