package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qrresto/qr-resto/middlewares"
	"github.com/qrresto/qr-resto/models"
	"github.com/qrresto/qr-resto/services"
	"github.com/qrresto/qr-resto/utils"
	"gorm.io/gorm"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// GetStats aggregates paid orders for the authenticated restaurant over a
// date range (default: last 30 days).
func (sc *StatsController) GetStats(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	end := time.Now()
	if v := c.Query("end"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		// include the whole end day
		end = parsed.AddDate(0, 0, 1)
	}

	start := end.AddDate(0, 0, -30)
	if v := c.Query("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		start = parsed
	}

	var result struct {
		TotalSales        float64 `json:"total_sales"`
		OrderCount        int64   `json:"order_count"`
		AverageOrderValue float64 `json:"average_order_value"`
	}

	rangeFilter := "restaurant_id = ? AND status = ? AND created_at >= ? AND created_at < ?"

	if err := sc.DB.Model(&models.Order{}).
		Where(rangeFilter, actorID, services.OrderPaid, start, end).
		Count(&result.OrderCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := sc.DB.Model(&models.Order{}).
		Where(rangeFilter, actorID, services.OrderPaid, start, end).
		Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&result.TotalSales); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if result.OrderCount > 0 {
		result.AverageOrderValue = result.TotalSales / float64(result.OrderCount)
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant stats", result)
}

// PopularProduct is one row of the top-sellers report.
type PopularProduct struct {
	ProductID     uint           `json:"product_id"`
	TotalQuantity int64          `json:"total_quantity"`
	TotalRevenue  float64        `json:"total_revenue"`
	Product       models.Product `json:"product"`
}

// GetPopularProducts ranks products by quantity sold across paid orders.
func (sc *StatsController) GetPopularProducts(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("limit must be a positive number"))
			return
		}
		limit = parsed
	}

	var rows []PopularProduct
	err := sc.DB.Table("order_items").
		Select("order_items.product_id, SUM(order_items.quantity) AS total_quantity, SUM(order_items.quantity * order_items.price) AS total_revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.restaurant_id = ? AND orders.status = ?", actorID, services.OrderPaid).
		Group("order_items.product_id").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// join product detail
	for i := range rows {
		sc.DB.First(&rows[i].Product, rows[i].ProductID)
	}

	utils.RespondJSON(c, http.StatusOK, "Popular products", rows)
}
