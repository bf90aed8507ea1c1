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

// IsInCheck reports whether the side to move's king is currently attacked.
func (b *Board) IsInCheck() bool {
	king := b.kingSquare(b.SideToMove)
	if king == SqNone {
		return false
	}
	return b.IsSquareAttacked(king, b.SideToMove.Flip())
}

// GenerateLegalMoves clears moves and appends every legal move for the
// side to move: every pseudo-legal move is played on the board, the
// mover's king is checked for attack, and the move is unplayed before the
// next candidate is tried. pseudoBuf is reused across calls (including
// recursive calls made from deeper in a search) to avoid allocating a
// fresh scratch slice at every node.
func (b *Board) GenerateLegalMoves(moves *[]Move) {
	b.GeneratePseudoLegalMoves(&b.pseudoBuf)
	*moves = (*moves)[:0]
	mover := b.SideToMove
	opponent := mover.Flip()
	for _, m := range b.pseudoBuf {
		state := b.MakeMove(m)
		kingSq := b.kingSquare(mover)
		stillLegal := kingSq == SqNone || !b.IsSquareAttacked(kingSq, opponent)
		b.UnmakeMove(m, state)
		if stillLegal {
			*moves = append(*moves, m)
		}
	}
}
