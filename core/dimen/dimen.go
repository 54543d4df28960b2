// Package dimen implements dimensions and units.
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
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Dimen is a dimension type.
// Values are in PostScript big points, i.e. 1/72 inch. Metrics from AFM files
// are in 1/1000 of the font size and are converted with FromDesignUnits.
type Dimen float64

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	BP   Dimen = 1               // big point (PostScript) = 1/72 inch
	PX   Dimen = 1               // "pixels"
	PT   Dimen = 72.0 / 72.27    // printers point 1/72.27 inch
	IN   Dimen = 72              // inch
	MM   Dimen = 72.0 / 25.4     // millimeters
	CM   Dimen = 72.0 / 2.54     // centimeters
	PC   Dimen = 12 * 72 / 72.27 // pica
)

// Some common paper sizes
var DINA4 = Point{210 * MM, 297 * MM}
var DINA5 = Point{148 * MM, 210 * MM}
var USLetter = Point{8.5 * IN, 11 * IN}
var USLegal = Point{8.5 * IN, 14 * IN}

// Stringer implementation.
func (d Dimen) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64) + "bp"
}

// Points returns a dimension in big (PostScript) points.
func (d Dimen) Points() float64 {
	return float64(d)
}

// FromDesignUnits converts a metric in 1/1000 em to a dimension for a font
// of the given size.
func FromDesignUnits(du float64, size float64) Dimen {
	return Dimen(du * size / 1000.0)
}

// Point is a point on a page.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", p.X, p.Y)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(%|[a-zA-Z]{2})?$`)

// ParseDimen parses a string to return a dimension. Units are bp, px, pt, pc,
// mm, cm and in; a number without unit is taken as big points.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension holds the plain number.
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, errors.New("format error parsing dimension")
	}
	scale := BP
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX", "":
			scale = BP
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "pc", "PC":
			scale = PC
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, errors.New("format error parsing dimension")
		}
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, errors.New("format error parsing dimension")
	}
	return Dimen(n) * scale, ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
