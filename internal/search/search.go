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

// Package search implements fixed-depth negamax with alpha-beta pruning
// over an internal/board.Board.
package search

import (
	"github.com/op/go-logging"

	"github.com/kopplabs/corechess/internal/board"
	myLogging "github.com/kopplabs/corechess/internal/logging"
	. "github.com/kopplabs/corechess/internal/types"
)

// Search holds the mutable state one fixed-depth search run needs: a
// logger, node-visited statistics and a pool of move-list buffers
// indexed by remaining depth so neither FindBestMove nor Negamax
// allocates a move slice per node.
type Search struct {
	log          *logging.Logger
	Trace        bool
	NodesVisited uint64
	// BestScore is the score FindBestMove recorded for its returned
	// move, from the root side to move's perspective.
	BestScore Value

	moveBufs [][]Move
}

// NewSearch returns a ready-to-use Search.
func NewSearch() *Search {
	return &Search{log: myLogging.GetLog("search")}
}

// bufAt returns the reusable move-list buffer for the given remaining
// depth, growing the pool on first use at that depth.
func (s *Search) bufAt(depth int) *[]Move {
	for len(s.moveBufs) <= depth {
		s.moveBufs = append(s.moveBufs, nil)
	}
	return &s.moveBufs[depth]
}

// Negamax returns the score of b from the side to move's perspective,
// searching depth plies with an alpha-beta window of (alpha, beta).
func (s *Search) Negamax(b *board.Board, depth int, alpha, beta Value) Value {
	if depth == 0 {
		return Value(b.Evaluate()) * sideSign(b)
	}

	moves := s.bufAt(depth)
	b.GenerateLegalMoves(moves)
	if len(*moves) == 0 {
		if b.IsInCheck() {
			return -(CheckmateScore + Value(depth))
		}
		return 0
	}

	best := -InfinityScore
	for _, m := range *moves {
		state := b.MakeMove(m)
		s.NodesVisited++
		score := -s.Negamax(b, depth-1, -beta, -alpha)
		b.UnmakeMove(m, state)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// FindBestMove generates the legal moves at the root and returns the one
// with the highest negamax score, searching depth plies; among moves with
// equal scores the earliest generated one wins. Callers are expected to
// have already ruled out a terminal position; with no legal moves it
// returns MoveNone.
func (s *Search) FindBestMove(b *board.Board, depth int) Move {
	moves := s.bufAt(depth)
	b.GenerateLegalMoves(moves)
	if len(*moves) == 0 {
		return MoveNone
	}

	alpha, beta := -InfinityScore, InfinityScore
	best := MoveNone
	for _, m := range *moves {
		state := b.MakeMove(m)
		s.NodesVisited++
		score := -s.Negamax(b, depth-1, -beta, -alpha)
		b.UnmakeMove(m, state)

		if s.Trace {
			s.log.Debugf("root move %s score %d", m, score)
		}
		// A move that loses to a deep mate scores below -InfinityScore, so
		// the first move is always recorded to keep a legal move in hand.
		if score > alpha || best.IsNone() {
			alpha = score
			best = m
			s.BestScore = score
		}
	}
	return best
}

func sideSign(b *board.Board) Value {
	if b.SideToMove == White {
		return 1
	}
	return -1
}
