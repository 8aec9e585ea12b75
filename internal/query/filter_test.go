package query

import (
	"strings"
	"testing"

	"github.com/lxh0508/elerp/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestWhereClauseEmptyFilter(t *testing.T) {
	f := &OrderFilter{}
	if got := f.WhereClause(); got != "" {
		t.Fatalf("empty filter: expected empty WHERE fragment, got %q", got)
	}
	if got := f.OrderClause(); got != "" {
		t.Fatalf("empty filter: expected empty ORDER BY fragment, got %q", got)
	}
}

func TestWhereClauseScalarEquality(t *testing.T) {
	tests := []struct {
		name    string
		filter  OrderFilter
		want    string
		wantRev string
		revKey  string
	}{
		{
			name:    "id",
			filter:  OrderFilter{ID: ptr(int64(42))},
			want:    "WHERE orders.id=42",
			wantRev: "WHERE orders.id!=42",
			revKey:  "id",
		},
		{
			name:    "created_by_user_id",
			filter:  OrderFilter{CreatedByUserID: ptr(int64(7))},
			want:    "WHERE orders.created_by_user_id=7",
			wantRev: "WHERE orders.created_by_user_id!=7",
			revKey:  "created_by_user_id",
		},
		{
			name:    "updated_by_user_id",
			filter:  OrderFilter{UpdatedByUserID: ptr(int64(9))},
			want:    "WHERE orders.updated_by_user_id=9",
			wantRev: "WHERE orders.updated_by_user_id!=9",
			revKey:  "updated_by_user_id",
		},
		{
			name:    "person_related_id",
			filter:  OrderFilter{PersonRelatedID: ptr(int64(3))},
			want:    "WHERE orders.person_related_id=3",
			wantRev: "WHERE orders.person_related_id!=3",
			revKey:  "person_related_id",
		},
		{
			name:    "person_in_charge_id",
			filter:  OrderFilter{PersonInChargeID: ptr(int64(5))},
			want:    "WHERE orders.person_in_charge_id=5",
			wantRev: "WHERE orders.person_in_charge_id!=5",
			revKey:  "person_in_charge_id",
		},
		{
			name:    "order_category_id",
			filter:  OrderFilter{OrderCategoryID: ptr(int64(11))},
			want:    "WHERE orders.order_category_id=11",
			wantRev: "WHERE orders.order_category_id!=11",
			revKey:  "order_category_id",
		},
		{
			name:    "order_type",
			filter:  OrderFilter{OrderType: ptr(model.OrderTypeStockIn)},
			want:    "WHERE orders.order_type='StockIn'",
			wantRev: "WHERE orders.order_type!='StockIn'",
			revKey:  "order_type",
		},
		{
			name:    "currency",
			filter:  OrderFilter{Currency: ptr(model.CurrencyUSD)},
			want:    "WHERE orders.currency='USD'",
			wantRev: "WHERE orders.currency!='USD'",
			revKey:  "currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.WhereClause(); got != tt.want {
				t.Errorf("forward: expected %q, got %q", tt.want, got)
			}
			rev := tt.filter
			rev.Reverse = Reverse{tt.revKey: true}
			if got := rev.WhereClause(); got != tt.wantRev {
				t.Errorf("reversed: expected %q, got %q", tt.wantRev, got)
			}
		})
	}
}

func TestWhereClauseFuzzy(t *testing.T) {
	f := &OrderFilter{Fuzzy: ptr("abc")}
	want := "WHERE CAST(orders.id AS TEXT) LIKE '%abc%'" +
		" OR persons_related.name LIKE '%abc%'" +
		" OR persons_in_charge.name LIKE '%abc%'" +
		" OR order_status_list.name LIKE '%abc%'" +
		" OR warehouses.name LIKE '%abc%'"
	if got := f.WhereClause(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWhereClauseFuzzyReversedFlipsAllColumns(t *testing.T) {
	f := &OrderFilter{Fuzzy: ptr("abc"), Reverse: Reverse{"fuzzy": true}}
	got := f.WhereClause()
	if n := strings.Count(got, "NOT LIKE '%abc%'"); n != 5 {
		t.Fatalf("expected 5 NOT LIKE comparisons, got %d in %q", n, got)
	}
	if strings.Count(got, "LIKE") != 5 {
		t.Fatalf("expected LIKE to appear exactly 5 times, got %q", got)
	}
}

func TestWhereClauseFuzzyEscapesQuotes(t *testing.T) {
	f := &OrderFilter{Fuzzy: ptr("o'brien")}
	got := f.WhereClause()
	if strings.Contains(got, "'%o'brien%'") {
		t.Fatalf("unescaped quote in fragment %q", got)
	}
	if !strings.Contains(got, "'%o''brien%'") {
		t.Fatalf("expected doubled quote in fragment %q", got)
	}
}

func TestWhereClauseWarehouseIDs(t *testing.T) {
	f := &OrderFilter{WarehouseIDs: []int64{1, 2, 3}}
	want := "WHERE orders.warehouse_id IN (1,2,3)"
	if got := f.WhereClause(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	f.Reverse = Reverse{"warehouse_ids": true}
	want = "WHERE orders.warehouse_id NOT IN (1,2,3)"
	if got := f.WhereClause(); got != want {
		t.Fatalf("reversed: expected %q, got %q", want, got)
	}
}

func TestWhereClausePaymentStatusMembership(t *testing.T) {
	f := &OrderFilter{OrderPaymentStatus: []model.OrderPaymentStatus{model.PaymentSettled, model.PaymentNone}}
	want := "WHERE orders.order_payment_status IN ('Settled','None')"
	if got := f.WhereClause(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	f.Reverse = Reverse{"order_payment_status": true}
	want = "WHERE orders.order_payment_status NOT IN ('Settled','None')"
	if got := f.WhereClause(); got != want {
		t.Fatalf("reversed: expected %q, got %q", want, got)
	}
}

func TestWhereClauseDateRange(t *testing.T) {
	f := &OrderFilter{DateStart: ptr(int64(100)), DateEnd: ptr(int64(200))}
	want := "WHERE orders.date>=100 AND orders.date<=200"
	if got := f.WhereClause(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWhereClauseDateRangeIgnoresReverse(t *testing.T) {
	// Range bounds are not reversible; stray reverse entries must not
	// change them.
	f := &OrderFilter{
		DateStart: ptr(int64(100)),
		DateEnd:   ptr(int64(200)),
		Reverse:   Reverse{"date_start": true, "date_end": true},
	}
	want := "WHERE orders.date>=100 AND orders.date<=200"
	if got := f.WhereClause(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWhereClauseLastUpdatedRangeUsesLiteralColumns(t *testing.T) {
	// The compound column names are intentional; see DESIGN.md.
	f := &OrderFilter{
		LastUpdatedDateStart: ptr(int64(10)),
		LastUpdatedDateEnd:   ptr(int64(20)),
	}
	want := "WHERE orders.last_updated_date_start>=10 AND orders.last_updated_date_end<=20"
	if got := f.WhereClause(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWhereClauseFieldOrder(t *testing.T) {
	f := &OrderFilter{
		ID:                   ptr(int64(1)),
		CreatedByUserID:      ptr(int64(2)),
		UpdatedByUserID:      ptr(int64(3)),
		Fuzzy:                ptr("x"),
		WarehouseIDs:         []int64{4},
		PersonRelatedID:      ptr(int64(5)),
		PersonInChargeID:     ptr(int64(6)),
		OrderPaymentStatus:   []model.OrderPaymentStatus{model.PaymentSettled},
		OrderType:            ptr(model.OrderTypeReturn),
		OrderCategoryID:      ptr(int64(7)),
		Currency:             ptr(model.CurrencyCNY),
		DateStart:            ptr(int64(8)),
		DateEnd:              ptr(int64(9)),
		LastUpdatedDateStart: ptr(int64(10)),
		LastUpdatedDateEnd:   ptr(int64(11)),
	}
	got := f.WhereClause()

	markers := []string{
		"orders.id=1",
		"orders.created_by_user_id=2",
		"orders.updated_by_user_id=3",
		"CAST(orders.id AS TEXT) LIKE '%x%'",
		"orders.warehouse_id IN (4)",
		"orders.person_related_id=5",
		"orders.person_in_charge_id=6",
		"orders.order_type='Return'",
		"orders.order_payment_status IN ('Settled')",
		"orders.order_category_id=7",
		"orders.currency='CNY'",
		"orders.date>=8",
		"orders.date<=9",
		"orders.last_updated_date_start>=10",
		"orders.last_updated_date_end<=11",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(got, m)
		if idx < 0 {
			t.Fatalf("missing clause %q in %q", m, got)
		}
		if idx < last {
			t.Fatalf("clause %q out of order in %q", m, got)
		}
		last = idx
	}
	if n := strings.Count(got, " AND "); n != len(markers)-1 {
		t.Fatalf("expected %d AND separators, got %d in %q", len(markers)-1, n, got)
	}
}

func TestOrderClauseRemapsForeignKeyColumns(t *testing.T) {
	tests := []struct {
		sorters []string
		want    string
	}{
		{[]string{"warehouse_id:desc"}, "ORDER BY warehouse_name desc"},
		{[]string{"person_related_id"}, "ORDER BY person_related_name asc"},
		{[]string{"person_in_charge_id:desc"}, "ORDER BY person_in_charge_name desc"},
		{[]string{"order_category_id"}, "ORDER BY order_status_name asc"},
		{[]string{"id"}, "ORDER BY orders.id asc"},
		{[]string{"date:desc"}, "ORDER BY orders.date desc"},
		{[]string{"date:desc", "warehouse_id", "id:desc"}, "ORDER BY orders.date desc, warehouse_name asc, orders.id desc"},
	}
	for _, tt := range tests {
		f := &OrderFilter{Sorters: tt.sorters}
		if got := f.OrderClause(); got != tt.want {
			t.Errorf("sorters %v: expected %q, got %q", tt.sorters, tt.want, got)
		}
	}
}

func TestOrderClauseNilVersusEmpty(t *testing.T) {
	f := &OrderFilter{}
	if got := f.OrderClause(); got != "" {
		t.Fatalf("nil sorters: expected empty fragment, got %q", got)
	}
	f.Sorters = []string{}
	if got := f.OrderClause(); got != "" {
		t.Fatalf("empty sorters: expected empty fragment, got %q", got)
	}
}

func TestSortTokenRoundTrip(t *testing.T) {
	// Re-parsing a compiled token list preserves field order and direction.
	tokens := []string{"date:desc", "warehouse_id", "total_amount:desc", "id"}
	for _, tok := range tokens {
		col, dir := ParseSortToken(tok)
		col2, dir2 := ParseSortToken(col + ":" + dir)
		if col2 != col || dir2 != dir {
			t.Errorf("token %q: round-trip gave (%q, %q), want (%q, %q)", tok, col2, dir2, col, dir)
		}
	}
}
