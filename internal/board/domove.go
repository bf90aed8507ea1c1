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
	"github.com/kopplabs/corechess/internal/assert"
	. "github.com/kopplabs/corechess/internal/types"
)

// BoardState is the undo record MakeMove hands back: everything UnmakeMove
// needs to restore a Board that cannot be rederived from the move and the
// post-move position alone (what got captured and where, and the rights/en
// passant state that held before the move).
type BoardState struct {
	CapturedPiece  Piece
	CapturedSquare Square
	PrevEnPassant  Square
	PrevCastling   CastlingRights
}

// MakeMove applies m to the board and returns the state needed to reverse
// it with UnmakeMove. It assumes m is at least pseudo-legal; legality
// (not leaving the mover's own king in check) is the caller's concern,
// see GenerateLegalMoves.
func (b *Board) MakeMove(m Move) BoardState {
	assert.Assert(m.From.OnBoard() && m.To.OnBoard(), "MakeMove: %s is off board", m)

	side := b.SideToMove
	moving := b.Pieces[m.From]
	assert.Assert(moving != Empty, "MakeMove: no piece on %s", m.From)

	state := BoardState{
		CapturedPiece:  b.Pieces[m.To],
		CapturedSquare: m.To,
		PrevEnPassant:  b.EnPassantSquare,
		PrevCastling:   b.CastlingRights,
	}

	// An en passant capture lands on an empty square; the captured pawn
	// sits one rank behind it, not on it.
	if moving.TypeOf() == Pawn && m.To == b.EnPassantSquare &&
		m.From.File() != m.To.File() && state.CapturedPiece == Empty {
		capSq := Square(int(m.To) - 8*side.PawnDirection())
		state.CapturedSquare = capSq
		state.CapturedPiece = b.Pieces[capSq]
		b.Pieces[capSq] = Empty
	}

	if state.CapturedPiece != Empty {
		b.clearRightsForRookSquare(state.CapturedSquare)
	}

	placed := moving
	if m.Promotion != NoPieceType {
		placed = MakePiece(side, m.Promotion)
	}
	b.Pieces[m.To] = placed
	b.Pieces[m.From] = Empty

	switch moving.TypeOf() {
	case King:
		b.CastlingRights.Remove(castlingRightsForSide(side))
		if diff := int(m.To) - int(m.From); diff == 2 || diff == -2 {
			b.moveCastlingRook(m.From, diff)
		}
	case Rook:
		b.clearRightsForRookSquare(m.From)
	}

	if moving.TypeOf() == Pawn && abs(int(m.To)-int(m.From)) == 16 {
		b.EnPassantSquare = Square((int(m.From) + int(m.To)) / 2)
	} else {
		b.EnPassantSquare = SqNone
	}

	b.SideToMove = side.Flip()
	return state
}

// UnmakeMove reverses m using the state MakeMove returned for it. Calls
// must nest like a stack: the most recent MakeMove is the first one
// unmade.
func (b *Board) UnmakeMove(m Move, prev BoardState) {
	mover := b.SideToMove.Flip()

	placed := b.Pieces[m.To]
	assert.Assert(placed != Empty, "UnmakeMove: no piece on %s to undo %s", m.To, m)
	origPiece := placed
	if m.Promotion != NoPieceType {
		origPiece = MakePiece(mover, Pawn)
	}
	b.Pieces[m.From] = origPiece
	b.Pieces[m.To] = Empty

	if prev.CapturedPiece != Empty {
		b.Pieces[prev.CapturedSquare] = prev.CapturedPiece
	}

	if placed.TypeOf() == King {
		if diff := int(m.To) - int(m.From); diff == 2 || diff == -2 {
			b.undoCastlingRook(m.From, diff)
		}
	}

	b.EnPassantSquare = prev.PrevEnPassant
	b.CastlingRights = prev.PrevCastling
	b.SideToMove = mover
}

func castlingRightsForSide(s Side) CastlingRights {
	if s == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// clearRightsForRookSquare drops the castling right tied to whichever
// corner sq is, a no-op for any other square.
func (b *Board) clearRightsForRookSquare(sq Square) {
	switch sq {
	case 0:
		b.CastlingRights.Remove(CastlingWQ)
	case 7:
		b.CastlingRights.Remove(CastlingWK)
	case 56:
		b.CastlingRights.Remove(CastlingBQ)
	case 63:
		b.CastlingRights.Remove(CastlingBK)
	}
}

func (b *Board) moveCastlingRook(kingFrom Square, diff int) {
	rookFrom, rookTo := castlingRookSquares(kingFrom, diff)
	b.Pieces[rookTo] = b.Pieces[rookFrom]
	b.Pieces[rookFrom] = Empty
}

func (b *Board) undoCastlingRook(kingFrom Square, diff int) {
	rookFrom, rookTo := castlingRookSquares(kingFrom, diff)
	b.Pieces[rookFrom] = b.Pieces[rookTo]
	b.Pieces[rookTo] = Empty
}

// castlingRookSquares returns the rook's origin and destination for a
// king move from kingFrom by diff (+2 king-side, -2 queen-side).
func castlingRookSquares(kingFrom Square, diff int) (from, to Square) {
	if diff == 2 {
		return kingFrom + 3, kingFrom + 1
	}
	return kingFrom - 4, kingFrom - 1
}
