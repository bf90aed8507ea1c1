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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopplabs/corechess/internal/board"
	. "github.com/kopplabs/corechess/internal/types"
)

// TestNegamaxSymmetryAtDepthZero covers spec property 5: negamax(0, -inf,
// +inf) from the side to move equals evaluate() signed for that side.
func TestNegamaxSymmetryAtDepthZero(t *testing.T) {
	b := board.NewBoard()
	s := NewSearch()
	score := s.Negamax(b, 0, -InfinityScore, InfinityScore)
	assert.Equal(t, Value(b.Evaluate()), score)

	b.MakeMove(Move{From: ParseSquare("e2"), To: ParseSquare("e4"), Promotion: NoPieceType})
	score = s.Negamax(b, 0, -InfinityScore, InfinityScore)
	assert.Equal(t, -Value(b.Evaluate()), score)
}

// TestNegamaxFindsMateInOne is scenario S6: from the fool's-mate position,
// negamax(1, -inf, +inf) for the mated side returns -(CheckmateScore+1).
func TestNegamaxFindsMateInOne(t *testing.T) {
	b := board.NewBoard()
	play := func(from, to string) {
		b.MakeMove(Move{From: ParseSquare(from), To: ParseSquare(to), Promotion: NoPieceType})
	}
	play("f2", "f3")
	play("e7", "e5")
	play("g2", "g4")
	play("d8", "h4")

	s := NewSearch()
	score := s.Negamax(b, 1, -InfinityScore, InfinityScore)
	assert.Equal(t, -(CheckmateScore + 1), score)
}

// TestFindBestMoveIsDeterministic covers the determinism property: the
// same position and depth must return bit-exactly the same move.
func TestFindBestMoveIsDeterministic(t *testing.T) {
	b1 := board.NewBoard()
	b2 := board.NewBoard()
	m1 := NewSearch().FindBestMove(b1, 3)
	m2 := NewSearch().FindBestMove(b2, 3)
	assert.Equal(t, m1, m2)
	assert.False(t, m1.IsNone())
}

// TestFindBestMoveNoLegalMovesReturnsSentinel covers the documented
// degenerate case: a position with no legal replies yields MoveNone.
func TestFindBestMoveNoLegalMovesReturnsSentinel(t *testing.T) {
	b := board.NewBoard()
	play := func(from, to string) {
		b.MakeMove(Move{From: ParseSquare(from), To: ParseSquare(to), Promotion: NoPieceType})
	}
	play("f2", "f3")
	play("e7", "e5")
	play("g2", "g4")
	play("d8", "h4")

	s := NewSearch()
	assert.Equal(t, MoveNone, s.FindBestMove(b, 2))
}
