/*
 * logger.go, part of gopolymer.
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

package main

import (
	"io"
	"log"
	"strings"
)

//LogLevel represents the logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

//parseLogLevel parses a string log level (case-insensitive). Unknown
//levels give info.
func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

//Logger is a leveled logger. It satisfies polymer.Logger.
type Logger struct {
	level LogLevel
	l     *log.Logger
}

//NewLogger returns a logger writing to out messages of the given level and above.
func NewLogger(out io.Writer, level string) *Logger {
	return &Logger{
		level: parseLogLevel(level),
		l:     log.New(out, "", log.LstdFlags),
	}
}

func (l *Logger) logf(level LogLevel, format string, v ...any) {
	if level >= l.level {
		l.l.Printf("["+strings.ToUpper(level.String())+"] "+format, v...)
	}
}

func (l *Logger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...any)  { l.logf(LogLevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...any)  { l.logf(LogLevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...any) { l.logf(LogLevelError, format, v...) }
