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
	. "github.com/kopplabs/corechess/internal/types"
)

var knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
var kingOffsets = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}

// slideDirections: first four orthogonal (rook), last four diagonal
// (bishop); queen uses all eight.
var slideDirections = [8]int{-8, -1, 1, 8, -9, -7, 7, 9}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// GeneratePseudoLegalMoves clears moves and appends every pseudo-legal
// move for the side to move: geometry, blocking and capture targeting are
// enforced, but the mover's own king may be left in check (filtered by
// GenerateLegalMoves) and castling out of or through check is rejected
// here by generateCastling, while castling into check is left to
// GenerateLegalMoves (the original engine this spec distills from does not
// check this; this one does).
func (b *Board) GeneratePseudoLegalMoves(moves *[]Move) {
	*moves = (*moves)[:0]
	for sq := 0; sq < 64; sq++ {
		p := b.Pieces[sq]
		if !b.isOurPiece(p) {
			continue
		}
		switch p.TypeOf() {
		case Pawn:
			b.generatePawnMoves(Square(sq), moves)
		case Knight:
			b.generateKnightMoves(Square(sq), moves)
		case King:
			b.generateKingMoves(Square(sq), moves)
			b.generateCastling(Square(sq), moves)
		case Bishop:
			b.generateSlidingMoves(Square(sq), slideDirections[4:8], moves)
		case Rook:
			b.generateSlidingMoves(Square(sq), slideDirections[0:4], moves)
		case Queen:
			b.generateSlidingMoves(Square(sq), slideDirections[0:8], moves)
		}
	}
}

// addPawnMove appends a non-promotion move, or the four promotion moves
// (Queen, Rook, Bishop, Knight, in that stable order) when to lands on
// the promotion rank.
func (b *Board) addPawnMove(from, to Square, moves *[]Move) {
	if to.Rank() == b.SideToMove.PromotionRow() {
		for _, pt := range PromotionOrder {
			*moves = append(*moves, Move{From: from, To: to, Promotion: pt})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Promotion: NoPieceType})
}

func (b *Board) generatePawnMoves(sq Square, moves *[]Move) {
	side := b.SideToMove
	dir := side.PawnDirection()
	file := sq.File()

	single := Square(int(sq) + 8*dir)
	if single.OnBoard() && b.Pieces[single] == Empty {
		b.addPawnMove(sq, single, moves)
		if sq.Rank() == side.StartRow() {
			double := Square(int(sq) + 16*dir)
			if double.OnBoard() && b.Pieces[double] == Empty {
				*moves = append(*moves, Move{From: sq, To: double, Promotion: NoPieceType})
			}
		}
	}

	captures := [2]struct {
		to       Square
		wantFile int
	}{
		{Square(int(sq) + 8*dir - 1), file - 1},
		{Square(int(sq) + 8*dir + 1), file + 1},
	}
	for _, c := range captures {
		if !c.to.OnBoard() || c.to.File() != c.wantFile {
			continue
		}
		if b.isOpponentPiece(b.Pieces[c.to]) {
			b.addPawnMove(sq, c.to, moves)
		}
		if b.EnPassantSquare != SqNone && c.to == b.EnPassantSquare {
			*moves = append(*moves, Move{From: sq, To: c.to, Promotion: NoPieceType})
		}
	}
}

func (b *Board) generateKnightMoves(sq Square, moves *[]Move) {
	for _, off := range knightOffsets {
		to := Square(int(sq) + off)
		if !to.OnBoard() {
			continue
		}
		dr, dc := abs(to.Rank()-sq.Rank()), abs(to.File()-sq.File())
		if !((dr == 2 && dc == 1) || (dr == 1 && dc == 2)) {
			continue
		}
		if !b.isOurPiece(b.Pieces[to]) {
			*moves = append(*moves, Move{From: sq, To: to, Promotion: NoPieceType})
		}
	}
}

func (b *Board) generateKingMoves(sq Square, moves *[]Move) {
	for _, off := range kingOffsets {
		to := Square(int(sq) + off)
		if !to.OnBoard() {
			continue
		}
		if abs(to.Rank()-sq.Rank()) > 1 || abs(to.File()-sq.File()) > 1 {
			continue
		}
		if !b.isOurPiece(b.Pieces[to]) {
			*moves = append(*moves, Move{From: sq, To: to, Promotion: NoPieceType})
		}
	}
}

// generateCastling emits castling moves for the king on sq. Besides the
// geometry spec.md §4.3.3 names (rights bit set, squares between king and
// rook empty), this also rejects castling when the king is currently in
// check or would cross an attacked square - spec.md §9 calls this out as
// a correctness requirement the original source gets wrong; "landing in
// check" is still caught by the generic legal-move filter afterwards.
func (b *Board) generateCastling(sq Square, moves *[]Move) {
	side := b.SideToMove
	opponent := side.Flip()
	if b.IsSquareAttacked(sq, opponent) {
		return
	}
	switch {
	case side == White && sq == 4:
		if b.CastlingRights.Has(CastlingWK) &&
			b.Pieces[5] == Empty && b.Pieces[6] == Empty &&
			!b.IsSquareAttacked(5, opponent) {
			*moves = append(*moves, Move{From: 4, To: 6, Promotion: NoPieceType})
		}
		if b.CastlingRights.Has(CastlingWQ) &&
			b.Pieces[1] == Empty && b.Pieces[2] == Empty && b.Pieces[3] == Empty &&
			!b.IsSquareAttacked(3, opponent) {
			*moves = append(*moves, Move{From: 4, To: 2, Promotion: NoPieceType})
		}
	case side == Black && sq == 60:
		if b.CastlingRights.Has(CastlingBK) &&
			b.Pieces[61] == Empty && b.Pieces[62] == Empty &&
			!b.IsSquareAttacked(61, opponent) {
			*moves = append(*moves, Move{From: 60, To: 62, Promotion: NoPieceType})
		}
		if b.CastlingRights.Has(CastlingBQ) &&
			b.Pieces[57] == Empty && b.Pieces[58] == Empty && b.Pieces[59] == Empty &&
			!b.IsSquareAttacked(59, opponent) {
			*moves = append(*moves, Move{From: 60, To: 58, Promotion: NoPieceType})
		}
	}
}

func (b *Board) generateSlidingMoves(sq Square, directions []int, moves *[]Move) {
	for _, d := range directions {
		cur := sq
		for {
			next := Square(int(cur) + d)
			if !next.OnBoard() {
				break
			}
			dRow, dCol := next.Rank()-cur.Rank(), next.File()-cur.File()
			var valid bool
			switch d {
			case -8, 8:
				valid = dCol == 0
			case -1, 1:
				valid = dRow == 0
			default: // -9, -7, 7, 9
				valid = abs(dRow) == 1 && abs(dCol) == 1
			}
			if !valid {
				break
			}
			target := b.Pieces[next]
			if b.isOurPiece(target) {
				break
			}
			*moves = append(*moves, Move{From: sq, To: next, Promotion: NoPieceType})
			if target != Empty {
				break
			}
			cur = next
		}
	}
}
