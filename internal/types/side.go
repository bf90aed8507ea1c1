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

// Side is one of the two chess colors.
type Side int8

const (
	White Side = iota
	Black
	SideNone
)

// Flip returns the opposing side. Flipping SideNone is not meaningful and
// is not called anywhere in this engine.
func (s Side) Flip() Side {
	return s ^ 1
}

// Str returns "w" or "b", matching the castling/FEN convention.
func (s Side) Str() string {
	if s == White {
		return "w"
	}
	return "b"
}

// PawnDirection returns +1 for White (pawns advance toward higher ranks)
// and -1 for Black.
func (s Side) PawnDirection() int {
	if s == White {
		return 1
	}
	return -1
}

// StartRow returns the rank a side's pawns begin on (0-based).
func (s Side) StartRow() int {
	if s == White {
		return 1
	}
	return 6
}

// PromotionRow returns the rank a side's pawns promote on (0-based).
func (s Side) PromotionRow() int {
	if s == White {
		return 7
	}
	return 0
}
