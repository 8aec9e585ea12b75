package query

import (
	"fmt"
	"strings"

	"github.com/lxh0508/elerp/internal/model"
)

// OrderFilter is a pure description of an order search: every field is
// optional and an absent field contributes no clause. Nil pointers and nil
// slices mean "no constraint"; a non-nil empty slice is rendered as an
// empty IN () list, matching the behavior of the HTTP surface this filter
// is decoded from.
type OrderFilter struct {
	ID                   *int64
	CreatedByUserID      *int64
	UpdatedByUserID      *int64
	Fuzzy                *string
	WarehouseIDs         []int64
	PersonRelatedID      *int64
	PersonInChargeID     *int64
	OrderPaymentStatus   []model.OrderPaymentStatus
	OrderType            *model.OrderType
	OrderCategoryID      *int64
	Currency             *model.OrderCurrency
	DateStart            *int64
	DateEnd              *int64
	LastUpdatedDateStart *int64
	LastUpdatedDateEnd   *int64
	Sorters              []string
	Reverse              Reverse
}

// WhereClause compiles the present filter fields into a WHERE fragment,
// or "" when no field is set. Clauses are emitted in fixed field order and
// joined with AND. Values are interpolated as literals: numeric fields are
// typed integers, enum fields are closed sets, and free-text fields are
// quote-escaped before use.
func (f *OrderFilter) WhereClause() string {
	conditions := make([]string, 0, 5)
	reverse := f.Reverse

	if f.ID != nil {
		eq := EqOrNot(reverse, "id")
		conditions = append(conditions, fmt.Sprintf("orders.id%s%d", eq, *f.ID))
	}
	if f.CreatedByUserID != nil {
		eq := EqOrNot(reverse, "created_by_user_id")
		conditions = append(conditions, fmt.Sprintf("orders.created_by_user_id%s%d", eq, *f.CreatedByUserID))
	}
	if f.UpdatedByUserID != nil {
		eq := EqOrNot(reverse, "updated_by_user_id")
		conditions = append(conditions, fmt.Sprintf("orders.updated_by_user_id%s%d", eq, *f.UpdatedByUserID))
	}
	if f.Fuzzy != nil {
		eq := LikeOrNot(reverse, "fuzzy")
		v := escapeString(*f.Fuzzy)
		conditions = append(conditions, fmt.Sprintf(
			"CAST(orders.id AS TEXT) %[1]s '%%%[2]s%%' OR persons_related.name %[1]s '%%%[2]s%%' OR persons_in_charge.name %[1]s '%%%[2]s%%' OR order_status_list.name %[1]s '%%%[2]s%%' OR warehouses.name %[1]s '%%%[2]s%%'",
			eq, v))
	}
	if f.WarehouseIDs != nil {
		in := InOrNot(reverse, "warehouse_ids")
		conditions = append(conditions, fmt.Sprintf("orders.warehouse_id%s(%s)", in, joinInt64(f.WarehouseIDs, ",")))
	}
	if f.PersonRelatedID != nil {
		eq := EqOrNot(reverse, "person_related_id")
		conditions = append(conditions, fmt.Sprintf("orders.person_related_id%s%d", eq, *f.PersonRelatedID))
	}
	if f.PersonInChargeID != nil {
		eq := EqOrNot(reverse, "person_in_charge_id")
		conditions = append(conditions, fmt.Sprintf("orders.person_in_charge_id%s%d", eq, *f.PersonInChargeID))
	}
	if f.OrderType != nil {
		eq := EqOrNot(reverse, "order_type")
		conditions = append(conditions, fmt.Sprintf("orders.order_type%s'%s'", eq, *f.OrderType))
	}
	if f.OrderPaymentStatus != nil {
		in := InOrNot(reverse, "order_payment_status")
		conditions = append(conditions, fmt.Sprintf("orders.order_payment_status%s('%s')", in, joinStatuses(f.OrderPaymentStatus)))
	}
	if f.OrderCategoryID != nil {
		eq := EqOrNot(reverse, "order_category_id")
		conditions = append(conditions, fmt.Sprintf("orders.order_category_id%s%d", eq, *f.OrderCategoryID))
	}
	if f.Currency != nil {
		eq := EqOrNot(reverse, "currency")
		conditions = append(conditions, fmt.Sprintf("orders.currency%s'%s'", eq, *f.Currency))
	}
	if f.DateStart != nil {
		conditions = append(conditions, fmt.Sprintf("orders.date>=%d", *f.DateStart))
	}
	if f.DateEnd != nil {
		conditions = append(conditions, fmt.Sprintf("orders.date<=%d", *f.DateEnd))
	}
	// The two clauses below compare against last_updated_date_start and
	// last_updated_date_end rather than last_updated_date. This mirrors the
	// filter logic deployments depend on; see DESIGN.md before changing it.
	if f.LastUpdatedDateStart != nil {
		conditions = append(conditions, fmt.Sprintf("orders.last_updated_date_start>=%d", *f.LastUpdatedDateStart))
	}
	if f.LastUpdatedDateEnd != nil {
		conditions = append(conditions, fmt.Sprintf("orders.last_updated_date_end<=%d", *f.LastUpdatedDateEnd))
	}

	if len(conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conditions, " AND ")
}

// OrderClause compiles the sort tokens into an ORDER BY fragment, or ""
// when no sorter is present. Tokens keep their caller-supplied order;
// foreign-key columns are remapped to their joined display-name aliases and
// everything else is qualified with the orders table.
func (f *OrderFilter) OrderClause() string {
	if f.Sorters == nil {
		return ""
	}
	conditions := make([]string, 0, len(f.Sorters))
	for _, sorter := range f.Sorters {
		col, dir := ParseSortToken(sorter)
		if alias, ok := sortColumnAliases[col]; ok {
			conditions = append(conditions, alias+" "+dir)
		} else {
			conditions = append(conditions, "orders."+col+" "+dir)
		}
	}
	if len(conditions) == 0 {
		return ""
	}
	return "ORDER BY " + strings.Join(conditions, ", ")
}

// joinStatuses renders payment statuses as the inner part of a quoted IN
// list: A','B becomes ('A','B') once the caller wraps it.
func joinStatuses(statuses []model.OrderPaymentStatus) string {
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, "','")
}
