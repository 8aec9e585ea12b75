package model

import "testing"

func TestOrderTypeValid(t *testing.T) {
	valid := []OrderType{
		OrderTypeStockIn, OrderTypeStockOut, OrderTypeReturn, OrderTypeExchange,
		OrderTypeCalibration, OrderTypeCalibrationStrict,
		OrderTypeVerification, OrderTypeVerificationStrict,
	}
	for _, v := range valid {
		if !v.Valid() {
			t.Errorf("expected %q to be a valid order type", v)
		}
	}
	for _, v := range []OrderType{"", "stockin", "Unknown", "IMPORT"} {
		if v.Valid() {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestOrderCurrencyValid(t *testing.T) {
	valid := []OrderCurrency{
		CurrencyCNY, CurrencyHKD, CurrencyUSD, CurrencyGBP,
		CurrencyMYR, CurrencyIDR, CurrencyINR, CurrencyPHP, CurrencyUnknown,
	}
	for _, v := range valid {
		if !v.Valid() {
			t.Errorf("expected %q to be a valid currency", v)
		}
	}
	for _, v := range []OrderCurrency{"", "usd", "EUR"} {
		if v.Valid() {
			t.Errorf("expected %q to be invalid", v)
		}
	}
	if DefaultCurrency != CurrencyUnknown {
		t.Errorf("default currency should be Unknown, got %q", DefaultCurrency)
	}
}

func TestOrderPaymentStatusValid(t *testing.T) {
	valid := []OrderPaymentStatus{
		PaymentSettled, PaymentUnsettled, PaymentPartialSettled, PaymentNone,
	}
	for _, v := range valid {
		if !v.Valid() {
			t.Errorf("expected %q to be a valid payment status", v)
		}
	}
	for _, v := range []OrderPaymentStatus{"", "settled", "Paid"} {
		if v.Valid() {
			t.Errorf("expected %q to be invalid", v)
		}
	}
	if DefaultPaymentStatus != PaymentUnsettled {
		t.Errorf("default payment status should be Unsettled, got %q", DefaultPaymentStatus)
	}
}
