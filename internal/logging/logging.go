/*
 * MIT License
 *
 * Copyright (c) 2026 corechess contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a small helper over "github.com/op/go-logging" so
// that each package that wants a logger doesn't repeat backend/formatter
// setup. Unlike the teacher engine's logging package, there is only one
// backend (stdout) and one named logger per caller: this engine has no
// multi-day UCI session to also log to a file.
package logging

import (
	golog "log"
	"os"

	"github.com/op/go-logging"

	"github.com/kopplabs/corechess/internal/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-7.7s}:  %{message}`,
)

var levelByName = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

// GetLog returns a *logging.Logger named for the calling package, backed
// by stdout and leveled from config.Settings.Log.Level (defaulting to
// INFO if config hasn't been set up or the name is unrecognized).
func GetLog(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	level, ok := levelByName[config.Settings.Log.Level]
	if !ok {
		level = logging.INFO
	}
	leveled.SetLevel(level, "")
	log.SetBackend(leveled)
	return log
}
