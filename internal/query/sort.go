package query

import (
	"errors"
	"fmt"
	"strings"
)

// Sort directions rendered into ORDER BY terms.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ErrInvalidSortField rejects sort tokens naming columns outside the
// sortable allow-list.
var ErrInvalidSortField = errors.New("invalid sort field")

// ErrInvalidFilterField rejects reverse identifiers naming fields outside
// the reversible allow-list.
var ErrInvalidFilterField = errors.New("invalid filter field")

// sortColumnAliases remaps foreign-key columns to the human-readable
// display columns selected by the order search joins.
var sortColumnAliases = map[string]string{
	"warehouse_id":        "warehouse_name",
	"person_related_id":   "person_related_name",
	"person_in_charge_id": "person_in_charge_name",
	"order_category_id":   "order_status_name",
}

// sortableColumns is the allow-list of sort token base columns. Everything
// here is either an orders column or one of the aliased join columns.
var sortableColumns = map[string]bool{
	"id":                   true,
	"created_by_user_id":   true,
	"updated_by_user_id":   true,
	"date":                 true,
	"last_updated_date":    true,
	"person_in_charge_id":  true,
	"order_category_id":    true,
	"from_guest_order_id":  true,
	"currency":             true,
	"total_amount":         true,
	"total_amount_settled": true,
	"order_payment_status": true,
	"warehouse_id":         true,
	"person_related_id":    true,
	"order_type":           true,
}

// reversibleFields is the allow-list of logical identifiers accepted in the
// reverse set. Only equality, membership and fuzzy fields are reversible;
// range bounds are not.
var reversibleFields = map[string]bool{
	"id":                   true,
	"created_by_user_id":   true,
	"updated_by_user_id":   true,
	"fuzzy":                true,
	"warehouse_ids":        true,
	"person_related_id":    true,
	"person_in_charge_id":  true,
	"order_type":           true,
	"order_payment_status": true,
	"order_category_id":    true,
	"currency":             true,
}

// ParseSortToken splits a "field[:direction]" token into its base column
// and direction. A missing or unrecognized direction degrades to ascending;
// the token is never rejected here (boundary validation is a separate,
// explicit step, see ValidateSortToken).
func ParseSortToken(token string) (column, direction string) {
	column, suffix, ok := strings.Cut(token, ":")
	direction = SortAsc
	if ok && strings.EqualFold(suffix, SortDesc) {
		direction = SortDesc
	}
	return column, direction
}

// ValidateSortToken checks a sort token's base column against the sortable
// allow-list. Handlers call this before a filter reaches the compiler so
// unknown tokens fail the request instead of flowing into SQL text.
func ValidateSortToken(token string) error {
	column, _ := ParseSortToken(token)
	if !sortableColumns[column] {
		return fmt.Errorf("%w: %q", ErrInvalidSortField, column)
	}
	return nil
}

// ValidateReverseField checks a reverse identifier against the reversible
// allow-list.
func ValidateReverseField(field string) error {
	if !reversibleFields[field] {
		return fmt.Errorf("%w: %q", ErrInvalidFilterField, field)
	}
	return nil
}
