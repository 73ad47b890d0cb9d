// Package dimen implements dimensions of measured text and points of a
// text box.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
)

// Units are whatever the host surface measures in (pixels for SVG,
// millimeters for canvas). The typesetter never converts between units.

// Dimensions is the extent of a measured piece of text.
// Width and height are never negative.
type Dimensions struct {
	W, H float64
}

// Zero dimensions are returned for empty text.
var Zero = Dimensions{}

// Stringer implementation.
func (d Dimensions) String() string {
	return fmt.Sprintf("(%.2f × %.2f)", d.W, d.H)
}

// IsZero is a predicate: does d cover no area in either direction?
func (d Dimensions) IsZero() bool {
	return d.W == 0 && d.H == 0
}

// Swap returns d with width and height exchanged, as needed for text flowing
// along a rotated axis.
func (d Dimensions) Swap() Dimensions {
	return Dimensions{W: d.H, H: d.W}
}

// Point is a point in the coordinate system of a host surface.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// ---------------------------------------------------------------------------

// Max returns the greater of two dimensions.
func Max(a, b float64) float64 {
	return math.Max(a, b)
}

// Epsilon is the tolerance for comparing measured widths. Rulers backed by
// floating point font metrics accumulate rounding errors.
const Epsilon = 1e-9

// Fits is a predicate: does extent w fit into available space?
// The boundary is inclusive.
func Fits(w, available float64) bool {
	return w <= available+Epsilon
}
