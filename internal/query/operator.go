// Package query compiles sparse order filter/sort requests into WHERE and
// ORDER BY fragments for the order search query. Fragments are plain text;
// the repository layer appends them to the base SELECT with its joins.
package query

import (
	"strconv"
	"strings"
)

// Reverse is the set of logical field identifiers whose comparison operator
// is negated for a request. Identifiers are filter field names ("id",
// "fuzzy", "warehouse_ids"), never raw column names. A nil Reverse negates
// nothing.
type Reverse map[string]bool

// EqOrNot returns the equality operator for field, negated when the field
// is in the reverse set.
func EqOrNot(reverse Reverse, field string) string {
	if reverse[field] {
		return "!="
	}
	return "="
}

// InOrNot returns the set-membership operator for field, negated when the
// field is in the reverse set. Spacing is part of the contract: the caller
// concatenates column, operator and value list directly.
func InOrNot(reverse Reverse, field string) string {
	if reverse[field] {
		return " NOT IN "
	}
	return " IN "
}

// LikeOrNot returns the pattern-match operator for field, negated when the
// field is in the reverse set.
func LikeOrNot(reverse Reverse, field string) string {
	if reverse[field] {
		return "NOT LIKE"
	}
	return "LIKE"
}

// joinInt64 renders values as a comma-separated literal list for IN (...).
func joinInt64(values []int64, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.FormatInt(v, 10))
	}
	return strings.Join(parts, sep)
}

// escapeString doubles single quotes so interpolated string values cannot
// terminate the surrounding SQL literal.
func escapeString(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}
