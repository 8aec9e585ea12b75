package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lxh0508/elerp/internal/model"

	"github.com/gin-gonic/gin"
)

func newFilterContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/orders?"+rawQuery, nil)
	return c
}

func TestParseOrderFilterEmpty(t *testing.T) {
	c := newFilterContext(t, "")
	f, err := parseOrderFilter(c)
	if err != nil {
		t.Fatalf("parseOrderFilter: %v", err)
	}
	if got := f.WhereClause(); got != "" {
		t.Errorf("WhereClause() = %q, want empty", got)
	}
	if got := f.OrderClause(); got != "" {
		t.Errorf("OrderClause() = %q, want empty", got)
	}
}

func TestParseOrderFilterScalars(t *testing.T) {
	c := newFilterContext(t, "id=7&created_by_user_id=3&order_type=StockOut&currency=USD&order_category_id=2")
	f, err := parseOrderFilter(c)
	if err != nil {
		t.Fatalf("parseOrderFilter: %v", err)
	}
	if f.ID == nil || *f.ID != 7 {
		t.Errorf("ID = %v, want 7", f.ID)
	}
	if f.CreatedByUserID == nil || *f.CreatedByUserID != 3 {
		t.Errorf("CreatedByUserID = %v, want 3", f.CreatedByUserID)
	}
	if f.OrderType == nil || *f.OrderType != model.OrderTypeStockOut {
		t.Errorf("OrderType = %v, want StockOut", f.OrderType)
	}
	if f.Currency == nil || *f.Currency != model.CurrencyUSD {
		t.Errorf("Currency = %v, want USD", f.Currency)
	}
	if f.UpdatedByUserID != nil {
		t.Errorf("UpdatedByUserID = %v, want nil for absent param", f.UpdatedByUserID)
	}
}

func TestParseOrderFilterMultiValue(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		wantIDs  []int64
	}{
		{"comma separated", "warehouse_ids=1,2,3", []int64{1, 2, 3}},
		{"repeated keys", "warehouse_ids=1&warehouse_ids=2&warehouse_ids=3", []int64{1, 2, 3}},
		{"mixed", "warehouse_ids=1,2&warehouse_ids=3", []int64{1, 2, 3}},
		{"empty value reads as absent", "warehouse_ids=", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parseOrderFilter(newFilterContext(t, tt.rawQuery))
			if err != nil {
				t.Fatalf("parseOrderFilter: %v", err)
			}
			if len(f.WarehouseIDs) != len(tt.wantIDs) {
				t.Fatalf("WarehouseIDs = %v, want %v", f.WarehouseIDs, tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if f.WarehouseIDs[i] != id {
					t.Errorf("WarehouseIDs[%d] = %d, want %d", i, f.WarehouseIDs[i], id)
				}
			}
		})
	}
}

func TestParseOrderFilterSortersAndReverse(t *testing.T) {
	c := newFilterContext(t, "sorters=warehouse_id:desc,id&reverse=currency,fuzzy")
	f, err := parseOrderFilter(c)
	if err != nil {
		t.Fatalf("parseOrderFilter: %v", err)
	}
	if got := f.OrderClause(); got != "ORDER BY warehouse_name desc, orders.id asc" {
		t.Errorf("OrderClause() = %q", got)
	}
	if !f.Reverse["currency"] || !f.Reverse["fuzzy"] {
		t.Errorf("Reverse = %v, want currency and fuzzy set", f.Reverse)
	}
}

func TestParseOrderFilterRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
	}{
		{"non-numeric id", "id=abc"},
		{"non-numeric warehouse id", "warehouse_ids=1,x"},
		{"unknown order type", "order_type=Bogus"},
		{"unknown currency", "currency=XYZ"},
		{"unknown payment status", "order_payment_status=Paid"},
		{"unknown sort column", "sorters=password:desc"},
		{"unknown reverse field", "reverse=drop_table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseOrderFilter(newFilterContext(t, tt.rawQuery)); err == nil {
				t.Errorf("parseOrderFilter(%q) accepted bad input", tt.rawQuery)
			}
		})
	}
}

func TestParseOrderFilterPaymentStatuses(t *testing.T) {
	c := newFilterContext(t, "order_payment_status=Unsettled,PartialSettled")
	f, err := parseOrderFilter(c)
	if err != nil {
		t.Fatalf("parseOrderFilter: %v", err)
	}
	want := []model.OrderPaymentStatus{model.PaymentUnsettled, model.PaymentPartialSettled}
	if len(f.OrderPaymentStatus) != len(want) {
		t.Fatalf("OrderPaymentStatus = %v, want %v", f.OrderPaymentStatus, want)
	}
	for i, s := range want {
		if f.OrderPaymentStatus[i] != s {
			t.Errorf("OrderPaymentStatus[%d] = %q, want %q", i, f.OrderPaymentStatus[i], s)
		}
	}
}

func TestParseOrderFilterFeedsCompiler(t *testing.T) {
	c := newFilterContext(t, "fuzzy=screw&warehouse_ids=5&date_start=100")
	f, err := parseOrderFilter(c)
	if err != nil {
		t.Fatalf("parseOrderFilter: %v", err)
	}
	got := f.WhereClause()
	want := "WHERE CAST(orders.id AS TEXT) LIKE '%screw%' OR persons_related.name LIKE '%screw%' OR persons_in_charge.name LIKE '%screw%' OR order_status_list.name LIKE '%screw%' OR warehouses.name LIKE '%screw%' AND orders.warehouse_id IN (5) AND orders.date>=100"
	if got != want {
		t.Errorf("WhereClause()\n got %q\nwant %q", got, want)
	}
}
