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

// Package board implements a square-centric chess position: piece
// placement, pseudo-legal and legal move generation, attack detection,
// a reversible make/unmake pair, and static material evaluation.
//
// A Board is created with NewBoard() and mutated only through MakeMove /
// UnmakeMove. It is never copied during search; recursion pairs each
// MakeMove with an UnmakeMove so the board is restored on every return
// path.
package board

import (
	"fmt"
	"io"

	. "github.com/kopplabs/corechess/internal/types"
)

// Board represents a full chess position: piece placement plus the
// derived state needed to apply and reverse moves.
type Board struct {
	Pieces          [64]Piece
	SideToMove      Side
	EnPassantSquare Square
	CastlingRights  CastlingRights

	// pseudoBuf is scratch space for GenerateLegalMoves. It is reused
	// across calls, including the nested calls a search makes at
	// deeper plies after a MakeMove/UnmakeMove pair, since each call
	// fully consumes it into the caller's own moves slice before the
	// next one runs.
	pseudoBuf []Move
}

// NewBoard returns a board in the standard starting position: White to
// move, all castling rights available, no en passant target.
func NewBoard() *Board {
	b := &Board{
		SideToMove:      White,
		EnPassantSquare: SqNone,
		CastlingRights:  CastlingAll,
	}
	for sq := 0; sq < 64; sq++ {
		b.Pieces[sq] = Empty
	}
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, pt := range backRank {
		b.Pieces[SquareOf(file, 0)] = MakePiece(White, pt)
		b.Pieces[SquareOf(file, 7)] = MakePiece(Black, pt)
	}
	for file := 0; file < 8; file++ {
		b.Pieces[SquareOf(file, 1)] = WP
		b.Pieces[SquareOf(file, 6)] = BP
	}
	return b
}

// PrintBoard renders the 8x8 grid (rank 8 on top, rank 1 on bottom) to w,
// followed by the side to move, the castling-rights string and the en
// passant square (or "none").
func (b *Board) PrintBoard(w io.Writer) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(w, "%s ", b.Pieces[SquareOf(file, rank)].String())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
	fmt.Fprintf(w, "side to move: %s\n", b.SideToMove.Str())
	fmt.Fprintf(w, "castling: %s\n", b.CastlingRights.String())
	if b.EnPassantSquare == SqNone {
		fmt.Fprintln(w, "en passant: none")
	} else {
		fmt.Fprintf(w, "en passant: %d\n", int(b.EnPassantSquare))
	}
}
