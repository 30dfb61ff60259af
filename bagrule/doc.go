// Package bagrule parses textual bag containment rules such as
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//	faded blue bags contain no other bags.
//
// into Bag values: an outer color and the ordered list of Rules it holds.
// "no other bags" becomes an empty rule list; "bag" versus "bags" carries
// no meaning. Bag.String renders the canonical line back, so Parse and
// String round-trip on the semantic fields.
//
// Malformed input never panics. Parse and ParseLines return a *ParseError
// that wraps ErrMalformedLine, ErrMalformedClause or ErrBadCount, so callers
// can branch with errors.Is and inspect the offending line with errors.As.
package bagrule
