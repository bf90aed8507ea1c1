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

// Square is a board index in row*8+column form, row 0 = rank 1, column 0 =
// file a. SqNone marks "no square" (e.g. no en passant target).
type Square int

const SqNone Square = -1

// OnBoard reports whether sq is a valid index into a 64-square board.
func (sq Square) OnBoard() bool {
	return sq >= 0 && sq < 64
}

// File returns the 0-based file (column), 0 = a.
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the 0-based rank (row), 0 = rank 1.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// SquareOf builds a Square from a 0-based file and rank.
func SquareOf(file, rank int) Square {
	return Square(rank*8 + file)
}

// String renders the square in algebraic notation (e.g. "e4"), or "-" for
// SqNone.
func (sq Square) String() string {
	if sq == SqNone {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses algebraic notation ("a1".."h8") into a Square, or
// SqNone if the string isn't a valid square.
func ParseSquare(s string) Square {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return SqNone
	}
	return SquareOf(int(s[0]-'a'), int(s[1]-'1'))
}
