// File: parse.go
// Role: line and clause parsing.
//
// Grammar:
//
//	line     = color " bags contain " ruleList "."
//	ruleList = "no other bags" | clause { "," clause }
//	clause   = count " " color " " ("bag" | "bags")
//	count    = nonzero digit { digit }
//	color    = word { " " word }   (lowercase letters, not "bag", "bags" or "contain")
package bagrule

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const noOtherBags = "no other bags"

var (
	lineRe   = regexp.MustCompile(`^([a-z]+(?: [a-z]+)*) bags contain (.+)\.$`)
	clauseRe = regexp.MustCompile(`^(\S+) ([a-z]+(?: [a-z]+)*) bags?$`)
	countRe  = regexp.MustCompile(`^[1-9][0-9]*$`)
)

// reserved words are part of the grammar and never part of a color.
var reserved = map[string]struct{}{
	"bag":     {},
	"bags":    {},
	"contain": {},
}

// Parse parses a single rule line. Surrounding whitespace is ignored;
// the trailing period is required.
//
// Errors:
//   - *ParseError wrapping ErrMalformedLine, ErrMalformedClause or ErrBadCount.
func Parse(line string) (Bag, error) {
	text := strings.TrimSpace(line)
	m := lineRe.FindStringSubmatch(text)
	if m == nil || !validColor(m[1]) {
		return Bag{}, &ParseError{Text: text, Err: ErrMalformedLine}
	}

	bag := Bag{Color: m[1]}
	if m[2] == noOtherBags {
		return bag, nil
	}

	clauses := strings.Split(m[2], ",")
	bag.Rules = make([]Rule, 0, len(clauses))
	for _, raw := range clauses {
		r, err := parseClause(strings.TrimSpace(raw))
		if err != nil {
			err.Text = text
			return Bag{}, err
		}
		bag.Rules = append(bag.Rules, r)
	}

	return bag, nil
}

// parseClause parses "<count> <color> bag|bags". The count must be plain
// decimal digits without sign or leading zero.
func parseClause(clause string) (Rule, *ParseError) {
	if clause == noOtherBags {
		return Rule{}, &ParseError{Clause: clause, Err: ErrMalformedClause}
	}
	m := clauseRe.FindStringSubmatch(clause)
	if m == nil || !validColor(m[2]) {
		return Rule{}, &ParseError{Clause: clause, Err: ErrMalformedClause}
	}
	if !countRe.MatchString(m[1]) {
		return Rule{}, &ParseError{Clause: clause, Err: ErrBadCount}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Rule{}, &ParseError{Clause: clause, Err: ErrBadCount}
	}

	return Rule{Color: m[2], Count: n}, nil
}

// validColor reports whether none of the words of color is reserved.
func validColor(color string) bool {
	for _, w := range strings.Fields(color) {
		if _, ok := reserved[w]; ok {
			return false
		}
	}

	return true
}

// ParseLines parses lines in order and stops at the first malformed one.
// The returned *ParseError carries the 1-based line number. No partial
// result is returned on error.
func ParseLines(lines []string) ([]Bag, error) {
	out := make([]Bag, 0, len(lines))
	for i, line := range lines {
		b, err := Parse(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		out = append(out, b)
	}

	return out, nil
}
