// Package values converts between command-line list literals and domain
// values. Parsing and formatting are adapter concerns: the transform
// library itself only ever sees parsed values.
package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halden-labs/prepkit-cli/internal/core/domain"
)

// ParseOne converts a single comma-separated field into a Value.
// Empty fields and the literal "None" are missing markers; numeric
// literals become numbers; everything else is text.
func ParseOne(field string) domain.Value {
	field = strings.TrimSpace(field)
	if field == "" || field == "None" {
		return domain.Missing()
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return domain.NewNumber(f)
	}
	return domain.NewText(field)
}

// Parse converts a comma-separated list into a Value sequence.
// Every field parses; there is no failure mode here.
func Parse(list string) []domain.Value {
	fields := strings.Split(list, ",")
	result := make([]domain.Value, len(fields))
	for i, f := range fields {
		result[i] = ParseOne(f)
	}
	return result
}

// ParseFloats converts a comma-separated list into a float sequence.
// Numeric commands require every field to be a number; the first field
// that does not parse fails the whole input with domain.ErrInvalidInput.
func ParseFloats(list string) ([]float64, error) {
	fields := strings.Split(list, ",")
	result := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q as number: %w", f, domain.ErrInvalidInput)
		}
		result[i] = v
	}
	return result, nil
}

// ParseNested converts a bracketed nested-list literal such as
// "[[1,2],[3,4]]" into a list of Value sequences. Only one level of
// nesting is accepted.
func ParseNested(list string) ([][]domain.Value, error) {
	s := strings.TrimSpace(list)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("nested list must be bracketed, e.g. [[1,2],[3,4]]: %w", domain.ErrInvalidInput)
	}

	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return [][]domain.Value{}, nil
	}

	groups, err := splitTopLevel(inner)
	if err != nil {
		return nil, err
	}

	result := make([][]domain.Value, 0, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if len(g) < 2 || g[0] != '[' || g[len(g)-1] != ']' {
			return nil, fmt.Errorf("element %q is not a list: %w", g, domain.ErrInvalidInput)
		}
		body := strings.TrimSpace(g[1 : len(g)-1])
		if strings.ContainsAny(body, "[]") {
			return nil, fmt.Errorf("more than one level of nesting in %q: %w", g, domain.ErrInvalidInput)
		}
		if body == "" {
			result = append(result, []domain.Value{})
			continue
		}
		result = append(result, Parse(body))
	}

	return result, nil
}

// splitTopLevel splits on commas that are not inside brackets.
func splitTopLevel(s string) ([]string, error) {
	var groups []string
	depth := 0
	start := 0

	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets in %q: %w", s, domain.ErrInvalidInput)
			}
		case ',':
			if depth == 0 {
				groups = append(groups, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets in %q: %w", s, domain.ErrInvalidInput)
	}

	groups = append(groups, s[start:])
	return groups, nil
}

// FormatFloats renders a float sequence as a bracketed list with the
// given number of decimal places.
func FormatFloats(vals []float64, decimals int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatFloat renders one float with the given number of decimal places.
func FormatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// FormatInts renders an integer sequence as a bracketed list.
func FormatInts(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatValues renders a Value sequence as a bracketed list.
func FormatValues(vals []domain.Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatStrings renders a string sequence as a bracketed list.
func FormatStrings(vals []string) string {
	return "[" + strings.Join(vals, ", ") + "]"
}
