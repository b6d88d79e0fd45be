// Package transform rewrites the react namespace import of a file into
// direct bindings for the members the file actually uses.
package transform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Well-known members of the target library.
const (
	CreateElement = "createElement"
	Fragment      = "Fragment"

	// NamespaceName is the conventional namespace identifier whose member
	// accesses are normalized.
	NamespaceName = "React"
)

// RequiredMembers are injected into every qualifying import once per unit.
var RequiredMembers = []string{CreateElement, Fragment}

// Sentinel errors for option validation.
var (
	ErrInvalidExtract     = errors.New("invalid extract option")
	ErrInvalidDeclaration = errors.New("invalid declaration option")
	ErrInvalidSource      = errors.New("invalid source option")
)

// Default option values.
const (
	DefaultDeclaration = "const"
	DefaultSource      = "react"
	extractAllKeyword  = "all"
)

// Extract is the extraction policy: either every used name, or names used
// at least Threshold times.
type Extract struct {
	All       bool
	Threshold int
}

// ExtractAll extracts every name with a count above zero.
var ExtractAll = Extract{All: true}

// ExtractAtLeast extracts names used n or more times.
func ExtractAtLeast(n int) Extract {
	return Extract{Threshold: n}
}

func (e Extract) String() string {
	if e.All {
		return extractAllKeyword
	}
	return strconv.Itoa(e.Threshold)
}

// ParseExtract accepts "all", a non-negative integer, or its string form.
func ParseExtract(v any) (Extract, error) {
	switch val := v.(type) {
	case Extract:
		if !val.All && val.Threshold < 0 {
			return Extract{}, fmt.Errorf("%w: negative threshold %d", ErrInvalidExtract, val.Threshold)
		}
		return val, nil
	case string:
		s := strings.TrimSpace(val)
		if strings.EqualFold(s, extractAllKeyword) {
			return ExtractAll, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Extract{}, fmt.Errorf("%w: %q", ErrInvalidExtract, val)
		}
		return ParseExtract(n)
	case int:
		if val < 0 {
			return Extract{}, fmt.Errorf("%w: negative threshold %d", ErrInvalidExtract, val)
		}
		return ExtractAtLeast(val), nil
	case int64:
		return ParseExtract(int(val))
	case float64:
		if val != math.Trunc(val) {
			return Extract{}, fmt.Errorf("%w: %v is not an integer", ErrInvalidExtract, val)
		}
		return ParseExtract(int(val))
	default:
		return Extract{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidExtract, v)
	}
}

// Options configures the rewrite.
type Options struct {
	// Declaration is the binding keyword of the destructuring statement.
	Declaration string
	Extract     Extract
	// Source is the module specifier whose imports are rewritten.
	Source string
}

// DefaultOptions returns const declarations, extract all, source react.
func DefaultOptions() Options {
	return Options{
		Declaration: DefaultDeclaration,
		Extract:     ExtractAll,
		Source:      DefaultSource,
	}
}

// ParseOptions overlays raw on the defaults. Unrecognized keys are ignored.
func ParseOptions(raw map[string]any) (Options, error) {
	opts := DefaultOptions()

	if v, ok := raw["declaration"]; ok {
		s, isString := v.(string)
		if !isString {
			return Options{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDeclaration, v)
		}
		opts.Declaration = s
	}
	if v, ok := raw["extract"]; ok {
		e, err := ParseExtract(v)
		if err != nil {
			return Options{}, err
		}
		opts.Extract = e
	}
	if v, ok := raw["source"]; ok {
		s, isString := v.(string)
		if !isString {
			return Options{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidSource, v)
		}
		opts.Source = s
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks the declaration keyword, threshold and source.
func (o Options) Validate() error {
	switch o.Declaration {
	case "const", "let", "var":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDeclaration, o.Declaration)
	}
	if !o.Extract.All && o.Extract.Threshold < 0 {
		return fmt.Errorf("%w: negative threshold %d", ErrInvalidExtract, o.Extract.Threshold)
	}
	if o.Source == "" {
		return fmt.Errorf("%w: empty module name", ErrInvalidSource)
	}
	return nil
}
