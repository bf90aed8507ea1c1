//go:build !debug

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

// Package assert is a helper for invariant checks that should only run in
// debug builds. Internal invariant violations (make/unmake pairing,
// missing king, out-of-range squares) are programmer errors, not
// caller-recoverable failures, so they are asserted rather than returned
// as errors - and compiled out entirely in release builds.
package assert

// DEBUG is true only when built with the "debug" build tag.
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
// In release builds this is a no-op; callers should still guard expensive
// argument construction with `if assert.DEBUG { ... }` since Go evaluates
// call arguments even when the body is empty.
func Assert(test bool, msg string, a ...interface{}) {}
