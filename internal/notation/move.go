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

// Package notation converts between Move values and long algebraic
// notation ("e2e4", "e7e8q"), the canonical text form spec §6 describes.
package notation

import (
	. "github.com/kopplabs/corechess/internal/types"
)

// MoveToString renders m in long algebraic notation: from-square,
// to-square, and a trailing promotion letter if any.
func MoveToString(m Move) string {
	return m.String()
}

// ParseMove parses long algebraic notation into a Move. It returns
// MoveNone if s isn't well-formed; it does not check legality or even
// that the squares are occupied, since that is exactly what matching the
// result against GenerateLegalMoves's output is for.
func ParseMove(s string) Move {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone
	}
	from := ParseSquare(s[0:2])
	to := ParseSquare(s[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone
	}
	promotion := NoPieceType
	if len(s) == 5 {
		promotion = PieceTypeFromPromotionChar(s[4])
		if promotion == NoPieceType {
			return MoveNone
		}
	}
	return Move{From: from, To: to, Promotion: promotion}
}
