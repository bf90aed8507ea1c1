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

// isOurPiece reports whether p belongs to the side to move.
func (b *Board) isOurPiece(p Piece) bool {
	return p.Side() == b.SideToMove
}

// isOpponentPiece reports whether p belongs to the opponent of the side
// to move.
func (b *Board) isOpponentPiece(p Piece) bool {
	s := p.Side()
	return s != SideNone && s != b.SideToMove
}

// kingSquare returns the square holding s's king, or SqNone if somehow
// absent (defensive; never occurs in a well-formed game).
func (b *Board) kingSquare(s Side) Square {
	king := MakePiece(s, King)
	for sq := 0; sq < 64; sq++ {
		if b.Pieces[sq] == king {
			return Square(sq)
		}
	}
	assert.Assert(false, "no %s king on board", s.Str())
	return SqNone
}
