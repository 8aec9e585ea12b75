package query

import (
	"errors"
	"testing"
)

func TestParseSortToken(t *testing.T) {
	tests := []struct {
		token   string
		wantCol string
		wantDir string
	}{
		{"id", "id", "asc"},
		{"id:asc", "id", "asc"},
		{"id:desc", "id", "desc"},
		{"id:DESC", "id", "desc"},
		{"warehouse_id:desc", "warehouse_id", "desc"},
		// Malformed directions degrade to ascending instead of failing.
		{"id:sideways", "id", "asc"},
		{"id:", "id", "asc"},
		{"", "", "asc"},
	}
	for _, tt := range tests {
		col, dir := ParseSortToken(tt.token)
		if col != tt.wantCol || dir != tt.wantDir {
			t.Errorf("ParseSortToken(%q): expected (%q, %q), got (%q, %q)",
				tt.token, tt.wantCol, tt.wantDir, col, dir)
		}
	}
}

func TestValidateSortToken(t *testing.T) {
	valid := []string{
		"id", "id:desc", "date", "last_updated_date:desc",
		"warehouse_id", "person_related_id:desc", "person_in_charge_id",
		"order_category_id", "currency", "total_amount:desc",
		"total_amount_settled", "order_payment_status", "order_type",
		"created_by_user_id", "updated_by_user_id", "from_guest_order_id",
	}
	for _, tok := range valid {
		if err := ValidateSortToken(tok); err != nil {
			t.Errorf("ValidateSortToken(%q): unexpected error %v", tok, err)
		}
	}

	invalid := []string{"password", "users.secret", "id;DROP TABLE orders", "fuzzy"}
	for _, tok := range invalid {
		err := ValidateSortToken(tok)
		if !errors.Is(err, ErrInvalidSortField) {
			t.Errorf("ValidateSortToken(%q): expected ErrInvalidSortField, got %v", tok, err)
		}
	}
}

func TestValidateReverseField(t *testing.T) {
	valid := []string{
		"id", "created_by_user_id", "updated_by_user_id", "fuzzy",
		"warehouse_ids", "person_related_id", "person_in_charge_id",
		"order_type", "order_payment_status", "order_category_id", "currency",
	}
	for _, field := range valid {
		if err := ValidateReverseField(field); err != nil {
			t.Errorf("ValidateReverseField(%q): unexpected error %v", field, err)
		}
	}

	// Range bounds are not reversible.
	invalid := []string{"date_start", "date_end", "last_updated_date_start", "last_updated_date_end", "sorters", "nope"}
	for _, field := range invalid {
		err := ValidateReverseField(field)
		if !errors.Is(err, ErrInvalidFilterField) {
			t.Errorf("ValidateReverseField(%q): expected ErrInvalidFilterField, got %v", field, err)
		}
	}
}
