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

// CastlingRights is a 4-bit mask of the castling rights still available.
type CastlingRights uint8

const (
	CastlingWK CastlingRights = 1
	CastlingWQ CastlingRights = 2
	CastlingBK CastlingRights = 4
	CastlingBQ CastlingRights = 8

	CastlingWhite CastlingRights = CastlingWK | CastlingWQ
	CastlingBlack CastlingRights = CastlingBK | CastlingBQ
	CastlingAll   CastlingRights = CastlingWhite | CastlingBlack
	CastlingNone  CastlingRights = 0
)

// Has reports whether every bit of rhs is set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs
}

// Remove clears the given bits and returns the new value.
func (lhs *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*lhs &^= rhs
	return *lhs
}

// String renders the mask as "KQkq", using "-" for rights that are absent.
func (lhs CastlingRights) String() string {
	buf := [4]byte{'-', '-', '-', '-'}
	if lhs.Has(CastlingWK) {
		buf[0] = 'K'
	}
	if lhs.Has(CastlingWQ) {
		buf[1] = 'Q'
	}
	if lhs.Has(CastlingBK) {
		buf[2] = 'k'
	}
	if lhs.Has(CastlingBQ) {
		buf[3] = 'q'
	}
	return string(buf[:])
}
