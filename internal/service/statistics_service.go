package service

import (
	"context"

	"github.com/lxh0508/elerp/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatisticsService interface {
	GetOrderStatistics(ctx context.Context, dateStart, dateEnd int64) (model.OrderStatisticsResponse, error)
}

type statisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db}
}

// GetOrderStatistics aggregates settlement totals per currency over an epoch
// date range. Sums are accumulated as decimals: settlement reports must not
// drift by float rounding when a currency bucket spans many orders.
func (s *statisticsService) GetOrderStatistics(ctx context.Context, dateStart, dateEnd int64) (model.OrderStatisticsResponse, error) {
	response := model.OrderStatisticsResponse{
		TimeRangeDateStart: dateStart,
		TimeRangeDateEnd:   dateEnd,
	}

	var rows []struct {
		Currency     model.OrderCurrency
		OrderCount   int64
		TotalAmount  decimal.Decimal
		TotalSettled decimal.Decimal
	}
	q := s.db.WithContext(ctx).Table("orders").
		Select("currency, COUNT(*) AS order_count, COALESCE(SUM(total_amount), 0) AS total_amount, COALESCE(SUM(total_amount_settled), 0) AS total_settled")
	if dateStart > 0 {
		q = q.Where("date >= ?", dateStart)
	}
	if dateEnd > 0 {
		q = q.Where("date <= ?", dateEnd)
	}
	err := q.Group("currency").
		Order("currency").
		Scan(&rows).Error
	if err != nil {
		return response, err
	}

	for _, row := range rows {
		response.Currencies = append(response.Currencies, model.CurrencySummary{
			Currency:     row.Currency,
			OrderCount:   row.OrderCount,
			TotalAmount:  row.TotalAmount,
			TotalSettled: row.TotalSettled,
			Outstanding:  row.TotalAmount.Sub(row.TotalSettled),
		})
		response.TotalOrders += row.OrderCount
	}

	return response, nil
}
