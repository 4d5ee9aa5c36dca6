package app

import (
	"regexp"
	"strconv"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	extraValuesRegex     = regexp.MustCompile(`(\([^()]*\))(?:\s*,\s*\([^()]*\))+`)
)

// formatDBQueryForTrace flattens whitespace and folds multi-row VALUES lists,
// e.g. "VALUES ($1, $2), ($3, $4)" becomes "VALUES ($1, $2) /* 2 rows */".
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSuffix(strings.TrimSpace(query), ";")
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if idx := strings.Index(strings.ToUpper(normalized), " VALUES "); idx >= 0 {
		head, tail := normalized[:idx], normalized[idx:]
		tail = extraValuesRegex.ReplaceAllStringFunc(tail, func(tuples string) string {
			first := tuples[:strings.Index(tuples, ")")+1]
			rows := strings.Count(tuples, "(")
			return first + " /* " + strconv.Itoa(rows) + " rows */"
		})
		normalized = head + tail
	}

	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
