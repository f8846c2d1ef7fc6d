// Package legacyargs preserves the positional-argument conventions of the
// original calculator: trailing tokens after the primary value may be an
// object name, a body/material pair, or numeric parameters, disambiguated
// by a greedy right-to-left probe with C strtod/atof semantics. The flag
// surface in internal/cli is the unambiguous replacement; this package
// exists so historical invocations keep their meaning.
package legacyargs

import "strconv"

// Classified is the result of splitting trailing positional arguments.
// Name fields are empty when the corresponding token was not recognized.
// Numeric holds the remaining leading tokens in order; callers map them
// positionally onto their mode's parameters.
type Classified struct {
	ObjectName   string
	BodyName     string
	MaterialName string
	Numeric      []string
}

// Classify splits the tokens that follow a mode's primary value.
//
// The probe mirrors the original scanner: when at least three trailing
// tokens are present and the last two both fail to parse as numbers, they
// are taken as (body, material); a fourth-from-end non-numeric token is
// then taken as the object name. Otherwise a lone non-numeric final token
// is the object name. Exactly one name, one body, and one material can be
// recovered per invocation. A numeric-looking object name is consumed as
// a number; that ambiguity is inherent to the positional form.
func Classify(args []string) Classified {
	var c Classified
	consumed := 0

	if len(args) >= 3 && !IsNumber(args[len(args)-2]) && !IsNumber(args[len(args)-1]) {
		c.BodyName = args[len(args)-2]
		c.MaterialName = args[len(args)-1]
		consumed = 2
		if len(args) >= 4 && !IsNumber(args[len(args)-3]) {
			c.ObjectName = args[len(args)-3]
			consumed = 3
		}
	} else if len(args) >= 1 && !IsNumber(args[len(args)-1]) {
		c.ObjectName = args[len(args)-1]
		consumed = 1
	}

	c.Numeric = args[:len(args)-consumed]
	return c
}

// Atof converts s with C atof semantics: the longest valid leading float
// prefix is parsed and anything else yields 0. It never fails; non-numeric
// required inputs surface later as non-positive domain errors rather than
// parse errors.
func Atof(s string) float64 {
	v, _ := parseFloatPrefix(s)
	return v
}

// IsNumber reports whether s parses fully as a number under strtod rules:
// leading whitespace allowed, no trailing remainder.
func IsNumber(s string) bool {
	_, n := parseFloatPrefix(s)
	return n > 0 && n == len(s)
}

// parseFloatPrefix scans the longest strtod-style float at the start of s
// and returns its value along with the number of bytes consumed, including
// leading whitespace. A scan that finds no digits consumes nothing.
func parseFloatPrefix(s string) (float64, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, 0
	}

	// Exponent is only consumed when complete; "1e" parses as just "1".
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := false
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits = true
		}
		if expDigits {
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, 0
	}
	return v, i
}
