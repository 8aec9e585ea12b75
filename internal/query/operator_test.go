package query

import "testing"

func TestOperatorResolvers(t *testing.T) {
	reverse := Reverse{"id": true, "fuzzy": true, "warehouse_ids": true}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"eq not reversed", EqOrNot(reverse, "currency"), "="},
		{"eq reversed", EqOrNot(reverse, "id"), "!="},
		{"eq nil reverse", EqOrNot(nil, "id"), "="},
		{"in not reversed", InOrNot(reverse, "order_payment_status"), " IN "},
		{"in reversed", InOrNot(reverse, "warehouse_ids"), " NOT IN "},
		{"in nil reverse", InOrNot(nil, "warehouse_ids"), " IN "},
		{"like not reversed", LikeOrNot(reverse, "other"), "LIKE"},
		{"like reversed", LikeOrNot(reverse, "fuzzy"), "NOT LIKE"},
		{"like nil reverse", LikeOrNot(nil, "fuzzy"), "LIKE"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}

func TestJoinInt64(t *testing.T) {
	tests := []struct {
		values []int64
		want   string
	}{
		{[]int64{1, 2, 3}, "1,2,3"},
		{[]int64{42}, "42"},
		{[]int64{-1, 0}, "-1,0"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := joinInt64(tt.values, ","); got != tt.want {
			t.Errorf("joinInt64(%v): expected %q, got %q", tt.values, tt.want, got)
		}
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"o'brien", "o''brien"},
		{"''", "''''"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := escapeString(tt.in); got != tt.want {
			t.Errorf("escapeString(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
