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

package board

import (
	"testing"

	. "github.com/kopplabs/corechess/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestNewBoardStartingPosition(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, White, b.SideToMove)
	assert.Equal(t, SqNone, b.EnPassantSquare)
	assert.Equal(t, CastlingAll, b.CastlingRights)
	assert.Equal(t, 0, b.Evaluate())
}

// TestStartingPositionMoveCount is scenario S1: the starting position has
// exactly 20 legal moves (16 pawn pushes, 4 knight moves).
func TestStartingPositionMoveCount(t *testing.T) {
	b := NewBoard()
	var moves []Move
	b.GenerateLegalMoves(&moves)
	assert.Len(t, moves, 20)
}

// TestMakeUnmakeRoundTrip covers the universal property that playing and
// unplaying any legal move restores the board exactly.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := NewBoard()
	var moves []Move
	b.GenerateLegalMoves(&moves)
	before := *b
	for _, m := range moves {
		state := b.MakeMove(m)
		b.UnmakeMove(m, state)
		assert.Equal(t, before, *b, "round trip for %s left the board changed", m)
	}
}

// TestLegalMovesSubsetOfPseudoLegal covers the property that every legal
// move also appears in the pseudo-legal list.
func TestLegalMovesSubsetOfPseudoLegal(t *testing.T) {
	b := NewBoard()
	var pseudo, legal []Move
	b.GeneratePseudoLegalMoves(&pseudo)
	b.GenerateLegalMoves(&legal)
	for _, m := range legal {
		assert.Contains(t, pseudo, m)
	}
}

// TestEnPassantCapture is scenario S3: after 1. e4 Nc6 2. e5 d5, White's
// pawn on e5 may capture en passant onto d6.
func TestEnPassantCapture(t *testing.T) {
	b := NewBoard()
	play := func(from, to string) {
		m := Move{From: ParseSquare(from), To: ParseSquare(to), Promotion: NoPieceType}
		b.MakeMove(m)
	}
	play("e2", "e4")
	play("b8", "c6")
	play("e4", "e5")
	play("d7", "d5")

	assert.Equal(t, ParseSquare("d6"), b.EnPassantSquare)

	var legal []Move
	b.GenerateLegalMoves(&legal)
	capture := Move{From: ParseSquare("e5"), To: ParseSquare("d6"), Promotion: NoPieceType}
	assert.Contains(t, legal, capture)

	b.MakeMove(capture)
	assert.Equal(t, Empty, b.Pieces[ParseSquare("d5")], "captured pawn should be removed")
	assert.Equal(t, WP, b.Pieces[ParseSquare("d6")])
}

// TestCastlingKingSide is scenario S4: clearing the squares between king
// and rook makes king-side castling available, and it moves both pieces.
func TestCastlingKingSide(t *testing.T) {
	b := NewBoard()
	b.Pieces[ParseSquare("f1")] = Empty
	b.Pieces[ParseSquare("g1")] = Empty

	var legal []Move
	b.GenerateLegalMoves(&legal)
	castle := Move{From: ParseSquare("e1"), To: ParseSquare("g1"), Promotion: NoPieceType}
	assert.Contains(t, legal, castle)

	state := b.MakeMove(castle)
	assert.Equal(t, WK, b.Pieces[ParseSquare("g1")])
	assert.Equal(t, WR, b.Pieces[ParseSquare("f1")])
	assert.Equal(t, Empty, b.Pieces[ParseSquare("e1")])
	assert.Equal(t, Empty, b.Pieces[ParseSquare("h1")])
	assert.False(t, b.CastlingRights.Has(CastlingWK))
	assert.False(t, b.CastlingRights.Has(CastlingWQ))

	b.UnmakeMove(castle, state)
	assert.Equal(t, WK, b.Pieces[ParseSquare("e1")])
	assert.Equal(t, WR, b.Pieces[ParseSquare("h1")])
	assert.Equal(t, CastlingAll, b.CastlingRights)
}

// TestCastlingRejectedThroughCheck is the redesign-flag fix: castling must
// be rejected when the king starts in check, ends in check, or crosses an
// attacked square, even though the squares it crosses are empty.
func TestCastlingRejectedThroughCheck(t *testing.T) {
	b := NewBoard()
	b.Pieces[ParseSquare("f1")] = Empty
	b.Pieces[ParseSquare("g1")] = Empty
	b.Pieces[ParseSquare("f2")] = Empty
	// Black rook on f6 has a clear file down to f1, attacking the square
	// the king must cross.
	b.Pieces[ParseSquare("f7")] = Empty
	b.Pieces[ParseSquare("f8")] = Empty
	b.Pieces[ParseSquare("f6")] = BR

	var legal []Move
	b.GenerateLegalMoves(&legal)
	castle := Move{From: ParseSquare("e1"), To: ParseSquare("g1"), Promotion: NoPieceType}
	assert.NotContains(t, legal, castle)
}

// TestPromotionGeneratesAllFourPieces is scenario S5: a pawn one step
// from promotion produces queen, rook, bishop and knight promotions, in
// that order.
func TestPromotionGeneratesAllFourPieces(t *testing.T) {
	b := &Board{SideToMove: White, EnPassantSquare: SqNone, CastlingRights: CastlingNone}
	for i := range b.Pieces {
		b.Pieces[i] = Empty
	}
	b.Pieces[ParseSquare("a7")] = WP
	b.Pieces[ParseSquare("a1")] = WK
	b.Pieces[ParseSquare("h8")] = BK

	var legal []Move
	b.GenerateLegalMoves(&legal)

	var promos []PieceType
	for _, m := range legal {
		if m.From == ParseSquare("a7") {
			promos = append(promos, m.Promotion)
		}
	}
	assert.Equal(t, []PieceType{Queen, Rook, Bishop, Knight}, promos)
}

// TestCheckmateHasNoLegalMoves is scenario S6: the fool's mate position
// leaves the side to move in check with zero legal replies.
func TestCheckmateHasNoLegalMoves(t *testing.T) {
	b := NewBoard()
	play := func(from, to string) {
		b.MakeMove(Move{From: ParseSquare(from), To: ParseSquare(to), Promotion: NoPieceType})
	}
	play("f2", "f3")
	play("e7", "e5")
	play("g2", "g4")
	play("d8", "h4")

	assert.True(t, b.IsInCheck())
	var legal []Move
	b.GenerateLegalMoves(&legal)
	assert.Empty(t, legal)
}

// TestEmptyBoardEvaluatesToZero covers the universal property that
// material evaluation of an empty board is zero.
func TestEmptyBoardEvaluatesToZero(t *testing.T) {
	b := &Board{}
	for i := range b.Pieces {
		b.Pieces[i] = Empty
	}
	assert.Equal(t, 0, b.Evaluate())
}

func TestIsSquareAttackedIgnoresSideToMove(t *testing.T) {
	b := NewBoard()
	// White to move, but the helper must answer for whichever side is
	// asked about regardless of SideToMove.
	assert.True(t, b.IsSquareAttacked(ParseSquare("e2"), White))
	assert.False(t, b.IsSquareAttacked(ParseSquare("e4"), Black))
}
