package model

// OrderType classifies what an order does to stock. There is no default:
// every order must be created with an explicit type.
type OrderType string

const (
	OrderTypeStockIn            OrderType = "StockIn"
	OrderTypeStockOut           OrderType = "StockOut"
	OrderTypeReturn             OrderType = "Return"
	OrderTypeExchange           OrderType = "Exchange"
	OrderTypeCalibration        OrderType = "Calibration"
	OrderTypeCalibrationStrict  OrderType = "CalibrationStrict"
	OrderTypeVerification       OrderType = "Verification"
	OrderTypeVerificationStrict OrderType = "VerificationStrict"
)

var orderTypes = map[OrderType]bool{
	OrderTypeStockIn:            true,
	OrderTypeStockOut:           true,
	OrderTypeReturn:             true,
	OrderTypeExchange:           true,
	OrderTypeCalibration:        true,
	OrderTypeCalibrationStrict:  true,
	OrderTypeVerification:       true,
	OrderTypeVerificationStrict: true,
}

func (t OrderType) Valid() bool {
	return orderTypes[t]
}

// OrderCurrency is the currency an order is billed in.
type OrderCurrency string

const (
	CurrencyCNY     OrderCurrency = "CNY"
	CurrencyHKD     OrderCurrency = "HKD"
	CurrencyUSD     OrderCurrency = "USD"
	CurrencyGBP     OrderCurrency = "GBP"
	CurrencyMYR     OrderCurrency = "MYR"
	CurrencyIDR     OrderCurrency = "IDR"
	CurrencyINR     OrderCurrency = "INR"
	CurrencyPHP     OrderCurrency = "PHP"
	CurrencyUnknown OrderCurrency = "Unknown"
)

var orderCurrencies = map[OrderCurrency]bool{
	CurrencyCNY: true, CurrencyHKD: true, CurrencyUSD: true,
	CurrencyGBP: true, CurrencyMYR: true, CurrencyIDR: true,
	CurrencyINR: true, CurrencyPHP: true, CurrencyUnknown: true,
}

func (c OrderCurrency) Valid() bool {
	return orderCurrencies[c]
}

// DefaultCurrency is applied when an order is created without one.
const DefaultCurrency = CurrencyUnknown

// OrderPaymentStatus tracks how much of an order has been settled.
type OrderPaymentStatus string

const (
	PaymentSettled        OrderPaymentStatus = "Settled"
	PaymentUnsettled      OrderPaymentStatus = "Unsettled"
	PaymentPartialSettled OrderPaymentStatus = "PartialSettled"
	PaymentNone           OrderPaymentStatus = "None"
)

var orderPaymentStatuses = map[OrderPaymentStatus]bool{
	PaymentSettled:        true,
	PaymentUnsettled:      true,
	PaymentPartialSettled: true,
	PaymentNone:           true,
}

func (s OrderPaymentStatus) Valid() bool {
	return orderPaymentStatuses[s]
}

// DefaultPaymentStatus is applied when an order is created without one.
const DefaultPaymentStatus = PaymentUnsettled

// Order is a transaction header. Dates are integer epoch seconds to match
// the wire format used by clients.
type Order struct {
	ID                 int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedByUserID    int64              `gorm:"index" json:"created_by_user_id"`
	UpdatedByUserID    int64              `json:"updated_by_user_id"`
	Date               int64              `gorm:"index" json:"date"`
	LastUpdatedDate    int64              `json:"last_updated_date"`
	PersonInChargeID   int64              `gorm:"index" json:"person_in_charge_id"`
	OrderCategoryID    int64              `gorm:"index" json:"order_category_id"`
	FromGuestOrderID   int64              `json:"from_guest_order_id"`
	Currency           OrderCurrency      `gorm:"type:varchar(10);default:'Unknown'" json:"currency"`
	Items              []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount        float64            `gorm:"type:decimal(18,4);default:0" json:"total_amount"`
	TotalAmountSettled float64            `gorm:"type:decimal(18,4);default:0" json:"total_amount_settled"`
	OrderPaymentStatus OrderPaymentStatus `gorm:"type:varchar(20);default:'Unsettled'" json:"order_payment_status"`
	WarehouseID        int64              `gorm:"index" json:"warehouse_id"`
	PersonRelatedID    int64              `gorm:"index" json:"person_related_id"`
	Description        string             `gorm:"type:text" json:"description"`
	OrderType          OrderType          `gorm:"type:varchar(30);not null" json:"order_type"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. It has no lifecycle of its own: items
// are created and deleted with their parent order.
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   int64   `gorm:"not null;index" json:"-"`
	SKUID     int64   `gorm:"column:sku_id;not null" json:"sku_id"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(18,4);not null" json:"price"`
	Exchanged bool    `gorm:"default:false" json:"exchanged"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
