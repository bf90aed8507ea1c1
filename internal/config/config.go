//
// corechess - a minimal negamax chess engine
//
// MIT License
//
// Copyright (c) 2026 corechess contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration read from a TOML
// file or defaulted, for the few knobs this engine has: search depth and
// log level. There is no eval-weight or search-feature config because
// this engine has neither tunable eval terms nor search features to
// toggle (no PVS, no null-move, no TT) - depth is the only search
// parameter a fixed-depth negamax takes.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Search searchConfiguration
	Log    logConfiguration
}

type searchConfiguration struct {
	// Depth is the fixed ply depth find_best_move searches to.
	Depth int
}

type logConfiguration struct {
	// Level is one of critical|error|warning|notice|info|debug.
	Level string
}

func defaults() conf {
	return conf{
		Search: searchConfiguration{Depth: 4},
		Log:    logConfiguration{Level: "info"},
	}
}

// Setup reads path (a TOML file) into Settings, falling back to defaults
// for anything the file doesn't set or if the file can't be read.
func Setup(path string) {
	if initialized {
		return
	}
	Settings = defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Printf("config: %s not read, using defaults (%v)", path, err)
		}
	}
	initialized = true
}
