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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopplabs/corechess/internal/board"
	"github.com/kopplabs/corechess/internal/config"
	"github.com/kopplabs/corechess/internal/logging"
	"github.com/kopplabs/corechess/internal/notation"
	"github.com/kopplabs/corechess/internal/search"
	. "github.com/kopplabs/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	depthFlag := flag.Int("depth", 0, "search depth, overrides the config file when non-zero")
	flag.Parse()

	config.Setup(*configFile)
	depth := config.Settings.Search.Depth
	if *depthFlag != 0 {
		depth = *depthFlag
	}

	log := logging.GetLog("main")
	b := board.NewBoard()
	s := search.NewSearch()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		b.PrintBoard(os.Stdout)

		var legal []Move
		b.GenerateLegalMoves(&legal)
		if len(legal) == 0 {
			if b.IsInCheck() {
				out.Printf("checkmate: %s to move has no legal moves\n", b.SideToMove.Str())
			} else {
				out.Println("stalemate")
			}
			return
		}

		if b.SideToMove == Black {
			m := s.FindBestMove(b, depth)
			if m.IsNone() {
				out.Println("engine has no move")
				return
			}
			out.Printf("engine plays %s (score %d, nodes visited %d)\n",
				notation.MoveToString(m), s.BestScore, s.NodesVisited)
			b.MakeMove(m)
			continue
		}

		out.Print("your move: ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "quit" || input == "exit" {
			return
		}
		m := notation.ParseMove(input)
		if !isLegal(m, legal) {
			log.Warningf("rejected move %q: not a legal move in this position", input)
			continue
		}
		b.MakeMove(m)
	}
}

func isLegal(m Move, legal []Move) bool {
	if m.IsNone() {
		return false
	}
	for _, candidate := range legal {
		if candidate == m {
			return true
		}
	}
	return false
}
