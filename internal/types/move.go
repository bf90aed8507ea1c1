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

package types

import "fmt"

// Move is a plain value: an origin square, a destination square, and an
// optional promotion piece type (NoPieceType for "no promotion").
//
// Unlike the teacher engine's bit-packed Move (which also carries a move
// type tag and a sort value for move ordering and transposition lookups),
// this Move stays a flat struct: this engine has no move ordering and the
// move type (normal / en passant / castling / promotion) is always cheap
// to re-derive from board state when needed.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// MoveNone is the sentinel "no move" value, also returned by
// notation.ParseMove for a string that is not well-formed long algebraic
// notation (ParseMove does not check legality).
var MoveNone = Move{From: SqNone, To: SqNone, Promotion: NoPieceType}

// IsNone reports whether m is the sentinel MoveNone.
func (m Move) IsNone() bool {
	return m == MoveNone
}

// String renders m in long algebraic notation: "<file><rank><file><rank>"
// plus an optional promotion letter.
func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	s := fmt.Sprintf("%s%s", m.From.String(), m.To.String())
	if c := m.Promotion.PromotionChar(); c != 0 {
		s += string(c)
	}
	return s
}
