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

package search

import (
	"testing"

	"github.com/pkg/profile"

	"github.com/kopplabs/corechess/internal/board"
)

// BenchmarkFindBestMoveStartingPosition profiles a fixed-depth search of
// the starting position. Run with -bench and -cpuprofile flags for spot
// checks of the move-generation/make-unmake hot path; this is tooling,
// not part of the search algorithm.
func BenchmarkFindBestMoveStartingPosition(b *testing.B) {
	defer profile.Start(profile.CPUProfile, profile.NoShutdownHook).Stop()
	for i := 0; i < b.N; i++ {
		bd := board.NewBoard()
		s := NewSearch()
		s.FindBestMove(bd, 4)
	}
}
