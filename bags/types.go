// Package bags defines the errors, options and result types of the bag
// containment resolver.
package bags

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/bagraph/dfs"
)

// DefaultCacheSize is the number of per-color content totals kept between queries.
const DefaultCacheSize = 1024

var (
	// ErrUnknownColor indicates a color with no bag definition, either
	// referenced by a rule or passed to a query.
	ErrUnknownColor = errors.New("bags: unknown color")

	// ErrDuplicateColor indicates two bag definitions for the same color.
	ErrDuplicateColor = errors.New("bags: duplicate color")

	// ErrNotContained indicates that no chain of rules puts one color
	// inside another.
	ErrNotContained = errors.New("bags: not contained")

	// ErrOverflow indicates a content count that does not fit in int64.
	ErrOverflow = errors.New("bags: content count overflows int64")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("bags: option violation")
)

// LookupError reports a color that has no bag definition.
// ReferencedBy names the bag whose rule mentions Color; it is empty
// when the color came from a query.
type LookupError struct {
	Color        string
	ReferencedBy string
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.ReferencedBy != "" {
		return fmt.Sprintf("%v %q referenced by %q", ErrUnknownColor, e.Color, e.ReferencedBy)
	}

	return fmt.Sprintf("%v %q", ErrUnknownColor, e.Color)
}

// Unwrap lets errors.Is(err, ErrUnknownColor) match.
func (e *LookupError) Unwrap() error { return ErrUnknownColor }

// CycleError reports a containment cycle met by a downward query.
// Path is closed: [c0 c1 ... c0].
type CycleError = dfs.CycleError

// Container is one color that can hold the queried color.
// Depth is the number of containment steps: 1 for a direct container.
type Container struct {
	Color string
	Depth int
}

// Stats summarizes a Graph.
type Stats struct {
	Bags   int // defined colors
	Rules  int // containment rules (edges)
	Leaves int   // bags that hold nothing
	Held   int64 // bags held directly, summed over every rule
	Cached int   // content totals currently memoized
}

// Option configures a Graph built by New.
type Option func(*Options)

// Options holds the configurable parameters of a Graph.
type Options struct {
	// CacheSize bounds the memo of content totals shared between queries.
	// Zero disables the memo. Default is DefaultCacheSize.
	CacheSize int

	// Logger receives construction diagnostics at debug level.
	// Queries log through the logger carried by their context instead.
	Logger *slog.Logger
}

// DefaultOptions returns Options with DefaultCacheSize and slog.Default().
func DefaultOptions() Options {
	return Options{
		CacheSize: DefaultCacheSize,
		Logger:    slog.Default(),
	}
}

// WithCacheSize sets the memo capacity; 0 disables memoization.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		o.CacheSize = n
	}
}

// WithLogger sets the construction logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
