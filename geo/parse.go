package geo

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

var glyphReplacer = strings.NewReplacer(
	"º", "°", "˚", "°",
	"′", "'", "’", "'", "‘", "'", "´", "'",
	"″", "\"", "”", "\"", "“", "\"", "''", "\"",
)

// ParsePoint reads a coordinate pair written with '.' as decimal
// separator. See ParsePointIn.
func ParsePoint(s string) (Point, bool) {
	return parsePoint(s, ".")
}

// ParsePointIn reads a coordinate pair such as "52.5°N, 13.4°E",
// "N 52° 31' 0\" E 13° 24'", "-33.9 151.2" or "1.5e1 2e1". Hemisphere
// letters may come before or after each value and decide which value is
// the latitude; without them the latitude comes first. The decimal
// separator is taken from the language; when it is a comma the two values
// must be separated by ';' or whitespace.
//
// Malformed or ambiguous input returns the invalid point and false.
func ParsePointIn(s string, tag language.Tag) (Point, bool) {
	return parsePoint(s, decimalSeparator(tag))
}

type component struct {
	value float64
	dir   rune
}

func (c component) axis() rune {
	switch c.dir {
	case 'N', 'S':
		return 'y'
	case 'E', 'W':
		return 'x'
	}
	return 0
}

func parsePoint(s, sep string) (Point, bool) {
	s = glyphReplacer.Replace(strings.ToUpper(s))
	switch sep {
	case ".":
	case ",":
		s = strings.ReplaceAll(s, ",", ".")
	default:
		s = strings.ReplaceAll(s, sep, ".")
	}

	sc := &scanner{s: []rune(s)}
	first, ok := sc.component()
	if !ok {
		return Point{}, false
	}
	sc.skipSpace()
	if r := sc.peek(); r == ';' || r == ',' {
		sc.i++
	}
	second, ok := sc.component()
	if !ok {
		return Point{}, false
	}
	sc.skipSpace()
	if sc.i != len(sc.s) {
		return Point{}, false
	}

	lat, lon := first, second
	switch a1, a2 := first.axis(), second.axis(); {
	case a1 != 0 && a1 == a2:
		return Point{}, false
	case a1 == 'x' || a2 == 'y':
		lat, lon = second, first
	}

	if math.Abs(lat.value) > 90 || math.Abs(lon.value) > 180 {
		return Point{}, false
	}
	return NewPoint(lon.value, lat.value, 0, Degree), true
}

type scanner struct {
	s []rune
	i int
}

func (sc *scanner) peek() rune {
	if sc.i >= len(sc.s) {
		return 0
	}
	return sc.s[sc.i]
}

func (sc *scanner) skipSpace() {
	for sc.i < len(sc.s) && unicode.IsSpace(sc.s[sc.i]) {
		sc.i++
	}
}

func (sc *scanner) direction() rune {
	switch r := sc.peek(); r {
	case 'N', 'S', 'E', 'W':
		sc.i++
		return r
	}
	return 0
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// number reads an unsigned decimal, optionally with an exponent.
func (sc *scanner) number(allowExp bool) (float64, bool, bool) {
	start := sc.i
	digits := 0
	for isDigit(sc.peek()) {
		sc.i++
		digits++
	}
	if sc.peek() == '.' {
		sc.i++
		for isDigit(sc.peek()) {
			sc.i++
			digits++
		}
	}
	if digits == 0 {
		sc.i = start
		return 0, false, false
	}
	exp := false
	if allowExp && sc.peek() == 'E' {
		j := sc.i + 1
		if j < len(sc.s) && (sc.s[j] == '+' || sc.s[j] == '-') {
			j++
		}
		if j < len(sc.s) && isDigit(sc.s[j]) {
			for j < len(sc.s) && isDigit(sc.s[j]) {
				j++
			}
			sc.i = j
			exp = true
		}
	}
	v, err := strconv.ParseFloat(string(sc.s[start:sc.i]), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false, false
	}
	return v, exp, true
}

// component reads one signed angle in degrees with its optional
// hemisphere letter.
func (sc *scanner) component() (component, bool) {
	var c component
	sc.skipSpace()
	sign := 0.0
	switch sc.peek() {
	case '-':
		sign = -1
		sc.i++
	case '+':
		sign = 1
		sc.i++
	}
	sc.skipSpace()
	lead := sc.direction()
	sc.skipSpace()

	v, exp, ok := sc.number(true)
	if !ok {
		return c, false
	}
	save := sc.i
	sc.skipSpace()
	if sc.peek() == '°' {
		if exp {
			return c, false
		}
		sc.i++
		var ok bool
		if v, ok = sc.minutesSeconds(v); !ok {
			return c, false
		}
	} else {
		sc.i = save
	}

	trail := rune(0)
	if lead == 0 {
		save = sc.i
		sc.skipSpace()
		spaced := sc.i > save
		trail = sc.direction()
		// "52.5 E13.4": a letter glued to the following number leads it.
		if trail == 0 || (spaced && isDigit(sc.peek())) {
			trail = 0
			sc.i = save
		}
	}
	c.dir = lead
	if trail != 0 {
		c.dir = trail
	}
	if c.dir != 0 && sign != 0 {
		return c, false
	}
	if c.dir == 'S' || c.dir == 'W' || sign < 0 {
		v = -v
	}
	c.value = v
	return c, true
}

// minutesSeconds extends whole degrees with optional ' and " fields.
func (sc *scanner) minutesSeconds(deg float64) (float64, bool) {
	save := sc.i
	sc.skipSpace()
	if !isDigit(sc.peek()) {
		sc.i = save
		return deg, true
	}
	m, _, _ := sc.number(false)
	sc.skipSpace()
	if sc.peek() != '\'' {
		sc.i = save
		return deg, true
	}
	sc.i++
	if deg != math.Floor(deg) || m >= 60 {
		return 0, false
	}
	deg += m / 60

	save = sc.i
	sc.skipSpace()
	if !isDigit(sc.peek()) {
		sc.i = save
		return deg, true
	}
	s, _, _ := sc.number(false)
	sc.skipSpace()
	if sc.peek() != '"' {
		sc.i = save
		return deg, true
	}
	sc.i++
	if m != math.Floor(m) || s >= 60 {
		return 0, false
	}
	return deg + s/3600, true
}
