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

// Piece is a closed set of the twelve colored chess pieces plus an empty
// square marker. The encoding places every white piece below every black
// piece so that a piece's Side can be read off with a single range
// comparison (see Piece.Side).
type Piece int8

// Piece constants: the six white pieces (pawn, knight, bishop, rook, queen,
// king), then the six black pieces in the same order, then Empty. The
// promotion order is a separate table, PromotionOrder.
const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	Empty

	whiteFirst = WP
	whiteLast  = WK
	blackFirst = BP
	blackLast  = BK
)

// pieceGlyph renders a piece using the standard English letters, uppercase
// for White and lowercase for Black, '.' for an empty square.
var pieceGlyph = [...]byte{
	WP: 'P', WN: 'N', WB: 'B', WR: 'R', WQ: 'Q', WK: 'K',
	BP: 'p', BN: 'n', BB: 'b', BR: 'r', BQ: 'q', BK: 'k',
	Empty: '.',
}

// String returns the single-character glyph for the piece.
func (p Piece) String() string {
	return string(pieceGlyph[p])
}

// Side returns the color of the piece, or SideNone for Empty.
func (p Piece) Side() Side {
	switch {
	case p >= whiteFirst && p <= whiteLast:
		return White
	case p >= blackFirst && p <= blackLast:
		return Black
	default:
		return SideNone
	}
}

// A piece's kind regardless of color is read with TypeOf, which maps both
// colors of a kind to the same PieceType below; the move generator
// dispatches on that value.

// PieceType identifies a piece kind independent of color. Used to build
// the promotion piece from a color and to index the material value table.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// TypeOf returns the color-independent piece type, or NoPieceType for Empty.
func (p Piece) TypeOf() PieceType {
	switch p {
	case WP, BP:
		return Pawn
	case WN, BN:
		return Knight
	case WB, BB:
		return Bishop
	case WR, BR:
		return Rook
	case WQ, BQ:
		return Queen
	case WK, BK:
		return King
	default:
		return NoPieceType
	}
}

// MakePiece builds the colored piece for the given side and piece type.
func MakePiece(s Side, pt PieceType) Piece {
	if s == White {
		return [...]Piece{Pawn: WP, Knight: WN, Bishop: WB, Rook: WR, Queen: WQ, King: WK}[pt]
	}
	return [...]Piece{Pawn: BP, Knight: BN, Bishop: BB, Rook: BR, Queen: BQ, King: BK}[pt]
}

// pieceValue holds centipawn material values indexed by PieceType; king is
// zero because it is never captured.
var pieceValue = [...]int{
	Pawn: 100, Knight: 300, Bishop: 300, Rook: 500, Queen: 900, King: 0,
}

// Value returns the material value of the piece in centipawns from White's
// perspective: positive for white pieces, negative for black pieces, zero
// for Empty.
func (p Piece) Value() int {
	switch p.Side() {
	case White:
		return pieceValue[p.TypeOf()]
	case Black:
		return -pieceValue[p.TypeOf()]
	default:
		return 0
	}
}

// PromotionOrder is the stable order add_pawn_move expands a promoting pawn
// push into, per spec: Queen, Rook, Bishop, Knight.
var PromotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// PromotionChar returns the single-letter UCI promotion suffix for a piece
// type: q, r, b or n.
func (pt PieceType) PromotionChar() byte {
	switch pt {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	default:
		return 0
	}
}

// PieceTypeFromPromotionChar inverts PromotionChar, returning NoPieceType
// for anything else.
func PieceTypeFromPromotionChar(c byte) PieceType {
	switch c {
	case 'q':
		return Queen
	case 'r':
		return Rook
	case 'b':
		return Bishop
	case 'n':
		return Knight
	default:
		return NoPieceType
	}
}
