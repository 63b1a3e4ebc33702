/*
 * Copyright 2018-2020 the original author or authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// EnvDebug enables debug logging when set to a non-empty value.
	EnvDebug = "RECIPE_DEBUG"

	// EnvLogLevel selects the log level. Only "debug" changes behavior.
	EnvLogLevel = "RECIPE_LOG_LEVEL"
)

// Logger is the interface recipes and build systems use to report progress.
type Logger interface {
	Debug(a ...interface{})
	Debugf(format string, a ...interface{})
	DebugWriter() io.Writer
	IsDebugEnabled() bool

	Info(a ...interface{})
	Infof(format string, a ...interface{})
	InfoWriter() io.Writer
}

// PlainLogger implements Logger and logs messages to a writer.
type PlainLogger struct {
	debug io.Writer
	info  io.Writer
}

// New creates a new instance of PlainLogger writing info messages to writer.  It configures debug logging to the same
// writer if $RECIPE_DEBUG or $RECIPE_LOG_LEVEL are set.
func New(writer io.Writer) PlainLogger {
	if strings.ToLower(os.Getenv(EnvLogLevel)) == "debug" || os.Getenv(EnvDebug) != "" {
		return PlainLogger{debug: writer, info: writer}
	}

	return PlainLogger{info: writer}
}

// NewDiscard creates a new instance of PlainLogger that discards all log messages. Useful in testing.
func NewDiscard() PlainLogger {
	return PlainLogger{}
}

// Debug formats using the default formats for its operands and writes to the configured debug writer. Spaces are added
// between operands when neither is a string.
func (l PlainLogger) Debug(a ...interface{}) {
	if !l.IsDebugEnabled() {
		return
	}

	writeln(l.debug, a...)
}

// Debugf formats according to a format specifier and writes to the configured debug writer.
func (l PlainLogger) Debugf(format string, a ...interface{}) {
	if !l.IsDebugEnabled() {
		return
	}

	writef(l.debug, format, a...)
}

// DebugWriter returns the configured debug writer, or io.Discard if debug is disabled.
func (l PlainLogger) DebugWriter() io.Writer {
	if !l.IsDebugEnabled() {
		return io.Discard
	}

	return l.debug
}

// IsDebugEnabled indicates whether debug logging is enabled.
func (l PlainLogger) IsDebugEnabled() bool {
	return l.debug != nil
}

// Info formats using the default formats for its operands and writes to the configured info writer.
func (l PlainLogger) Info(a ...interface{}) {
	if l.info == nil {
		return
	}

	writeln(l.info, a...)
}

// Infof formats according to a format specifier and writes to the configured info writer.
func (l PlainLogger) Infof(format string, a ...interface{}) {
	if l.info == nil {
		return
	}

	writef(l.info, format, a...)
}

// InfoWriter returns the configured info writer, or io.Discard if there is none.
func (l PlainLogger) InfoWriter() io.Writer {
	if l.info == nil {
		return io.Discard
	}

	return l.info
}

func writeln(writer io.Writer, a ...interface{}) {
	s := fmt.Sprint(a...)

	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	_, _ = fmt.Fprint(writer, s)
}

func writef(writer io.Writer, format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}

	_, _ = fmt.Fprintf(writer, format, a...)
}
