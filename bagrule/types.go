// File: types.go
// Role: Rule/Bag data model, canonical rendering and parse errors.
//
// Determinism:
//   - Bag.String() renders rules in their stored order.
package bagrule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors wrapped by *ParseError.
var (
	// ErrMalformedLine indicates the line does not match
	// "<color> bags contain <rule-list>." (including a missing period).
	ErrMalformedLine = errors.New("bagrule: malformed rule line")

	// ErrMalformedClause indicates one comma-separated rule clause does not
	// match "<count> <color> bag|bags".
	ErrMalformedClause = errors.New("bagrule: malformed rule clause")

	// ErrBadCount indicates a clause count that is not a positive integer.
	ErrBadCount = errors.New("bagrule: count must be a positive integer")
)

// Rule states that one bag holds Count bags of Color.
type Rule struct {
	Color string
	Count int
}

// Bag is one parsed line: the outer Color and its ordered Rules.
// An empty Rules slice means the bag holds no other bags.
type Bag struct {
	Color string
	Rules []Rule
}

// IsLeaf reports whether the bag holds no other bags.
func (b Bag) IsLeaf() bool { return len(b.Rules) == 0 }

// String renders b as a rule line that Parse accepts, e.g.
//
//	bright white bags contain 1 shiny gold bag.
//	faded blue bags contain no other bags.
func (b Bag) String() string {
	var sb strings.Builder
	sb.WriteString(b.Color)
	sb.WriteString(" bags contain ")
	if b.IsLeaf() {
		sb.WriteString(noOtherBags)
	}
	for i, r := range b.Rules {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(r.Count))
		sb.WriteByte(' ')
		sb.WriteString(r.Color)
		if r.Count == 1 {
			sb.WriteString(" bag")
		} else {
			sb.WriteString(" bags")
		}
	}
	sb.WriteByte('.')

	return sb.String()
}

// ParseError describes why a rule line was rejected.
//
// Line is the 1-based line number when produced by ParseLines and 0 for a
// single Parse call. Clause is set when a single rule clause was at fault.
// Err is one of ErrMalformedLine, ErrMalformedClause or ErrBadCount.
type ParseError struct {
	Line   int
	Text   string
	Clause string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	sb.WriteString(e.Err.Error())
	if e.Clause != "" {
		fmt.Fprintf(&sb, ": clause %q", e.Clause)
	} else {
		fmt.Fprintf(&sb, ": %q", e.Text)
	}

	return sb.String()
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
