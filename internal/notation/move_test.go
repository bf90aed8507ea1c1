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

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopplabs/corechess/internal/types"
)

func TestMoveToStringPlain(t *testing.T) {
	m := Move{From: ParseSquare("e2"), To: ParseSquare("e4"), Promotion: NoPieceType}
	assert.Equal(t, "e2e4", MoveToString(m))
}

func TestMoveToStringPromotion(t *testing.T) {
	m := Move{From: ParseSquare("a7"), To: ParseSquare("a8"), Promotion: Queen}
	assert.Equal(t, "a7a8q", MoveToString(m))
}

func TestParseMoveRoundTrip(t *testing.T) {
	for _, s := range []string{"e2e4", "a7a8q", "e7e8n", "g1f3"} {
		m := ParseMove(s)
		assert.False(t, m.IsNone())
		assert.Equal(t, s, MoveToString(m))
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e4qq", "z9z9", "e2e4x"} {
		assert.True(t, ParseMove(s).IsNone(), "expected %q to be rejected", s)
	}
}
