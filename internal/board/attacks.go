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

// IsSquareAttacked reports whether any piece of attackingSide could
// pseudo-legally capture onto sq, ignoring whose turn it actually is. It
// is the sole primitive used for check detection and for rejecting
// castling through or out of check; it does not depend on SideToMove,
// which is what lets the search call IsInCheck after the side has
// already been toggled by MakeMove.
func (b *Board) IsSquareAttacked(sq Square, attackingSide Side) bool {
	return b.attackedByPawn(sq, attackingSide) ||
		b.attackedByKnight(sq, attackingSide) ||
		b.attackedBySlider(sq, attackingSide) ||
		b.attackedByKing(sq, attackingSide)
}

func (b *Board) attackedByPawn(sq Square, attackingSide Side) bool {
	dir := -1
	if attackingSide == Black {
		dir = 1
	}
	file := sq.File()
	attacker := MakePiece(attackingSide, Pawn)
	for _, c := range [2]struct {
		sq       Square
		wantFile int
	}{
		{Square(int(sq) + 8*dir - 1), file - 1},
		{Square(int(sq) + 8*dir + 1), file + 1},
	} {
		if c.sq.OnBoard() && c.sq.File() == c.wantFile && b.Pieces[c.sq] == attacker {
			return true
		}
	}
	return false
}

func (b *Board) attackedByKnight(sq Square, attackingSide Side) bool {
	attacker := MakePiece(attackingSide, Knight)
	for _, off := range knightOffsets {
		to := Square(int(sq) + off)
		if !to.OnBoard() {
			continue
		}
		dr, dc := abs(to.Rank()-sq.Rank()), abs(to.File()-sq.File())
		if (dr == 2 && dc == 1) || (dr == 1 && dc == 2) {
			if b.Pieces[to] == attacker {
				return true
			}
		}
	}
	return false
}

func (b *Board) attackedByKing(sq Square, attackingSide Side) bool {
	attacker := MakePiece(attackingSide, King)
	for _, off := range kingOffsets {
		to := Square(int(sq) + off)
		if !to.OnBoard() {
			continue
		}
		if abs(to.Rank()-sq.Rank()) <= 1 && abs(to.File()-sq.File()) <= 1 {
			if b.Pieces[to] == attacker {
				return true
			}
		}
	}
	return false
}

func (b *Board) attackedBySlider(sq Square, attackingSide Side) bool {
	for _, d := range slideDirections {
		orthogonal := d == -8 || d == 8 || d == -1 || d == 1
		cur := sq
		for {
			next := Square(int(cur) + d)
			if !next.OnBoard() {
				break
			}
			dRow, dCol := next.Rank()-cur.Rank(), next.File()-cur.File()
			var valid bool
			if orthogonal {
				valid = dRow == 0 || dCol == 0
			} else {
				valid = abs(dRow) == 1 && abs(dCol) == 1
			}
			if !valid {
				break
			}
			target := b.Pieces[next]
			if target != Empty {
				if target.Side() == attackingSide {
					pt := target.TypeOf()
					if orthogonal && (pt == Rook || pt == Queen) {
						return true
					}
					if !orthogonal && (pt == Bishop || pt == Queen) {
						return true
					}
				}
				break
			}
			cur = next
		}
	}
	return false
}
