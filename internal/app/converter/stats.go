package converter

import (
	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/model"
)

func ConvertStatsToResponse(stats entity.OrderStats) model.OrderStatsResponse {
	statusCounts := make([]model.StatusCountResponse, 0, len(stats.StatusCounts))
	for _, count := range stats.StatusCounts {
		statusCounts = append(statusCounts, model.StatusCountResponse{
			Status: string(count.Status),
			Count:  count.Count,
		})
	}

	salesByDate := make([]model.DailySalesResponse, 0, len(stats.SalesByDate))
	for _, daily := range stats.SalesByDate {
		salesByDate = append(salesByDate, model.DailySalesResponse{
			Date:  daily.Date,
			Sales: daily.Sales.StringFixed(2),
			Count: daily.Count,
		})
	}

	return model.OrderStatsResponse{
		StatusCounts: statusCounts,
		TotalSales:   stats.TotalSales.StringFixed(2),
		SalesByDate:  salesByDate,
	}
}
