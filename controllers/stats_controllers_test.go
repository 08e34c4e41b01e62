package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qrresto/qr-resto/controllers"
	"github.com/qrresto/qr-resto/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStatsRouter(db *gorm.DB, actorID uint) *gin.Engine {
	r := newTestEngine()
	r.Use(asActor(actorID))
	statsCtrl := controllers.NewStatsController(db)
	r.GET("/admin/stats", statsCtrl.GetStats)
	r.GET("/admin/stats/popular-products", statsCtrl.GetPopularProducts)
	return r
}

var seededOrders int

func seedPaidOrder(t *testing.T, db *gorm.DB, restaurantID uint, total float64, items []models.OrderItem) {
	seededOrders++
	order := models.Order{
		RestaurantID: restaurantID,
		TableID:      1,
		SessionID:    "s",
		Status:       "paid",
		TotalAmount:  total,
		OrderNumber:  fmt.Sprintf("%s-1-%03d", time.Now().Format("060102"), seededOrders),
		Items:        items,
	}
	require.NoError(t, db.Create(&order).Error)
}

func TestGetStatsSummary(t *testing.T) {
	db := setupTestDB(t)

	seedPaidOrder(t, db, 1, 30, nil)
	seedPaidOrder(t, db, 1, 50, nil)
	// not paid: ignored
	require.NoError(t, db.Create(&models.Order{
		RestaurantID: 1, TableID: 1, SessionID: "s", Status: "pending",
		TotalAmount: 99, OrderNumber: "n-pending",
	}).Error)
	// other restaurant: ignored
	seedPaidOrder(t, db, 2, 500, nil)

	r := setupStatsRouter(db, 1)
	w := doJSON(t, r, "GET", "/admin/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(80), data["total_sales"])
	assert.Equal(t, float64(2), data["order_count"])
	assert.Equal(t, float64(40), data["average_order_value"])
}

func TestGetStatsEmptyRange(t *testing.T) {
	db := setupTestDB(t)
	r := setupStatsRouter(db, 1)

	w := doJSON(t, r, "GET", "/admin/stats?start=2020-01-01&end=2020-01-31", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_sales"])
	assert.Equal(t, float64(0), data["order_count"])
	assert.Equal(t, float64(0), data["average_order_value"])
}

func TestGetStatsBadDate(t *testing.T) {
	db := setupTestDB(t)
	r := setupStatsRouter(db, 1)

	w := doJSON(t, r, "GET", "/admin/stats?start=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPopularProducts(t *testing.T) {
	db := setupTestDB(t)

	soup := models.Product{RestaurantID: 1, Name: "Ciorba", Description: "d", Price: 10, Category: "Soups", IsAvailable: true}
	grill := models.Product{RestaurantID: 1, Name: "Mici", Description: "d", Price: 15, Category: "Grill", IsAvailable: true}
	require.NoError(t, db.Create(&soup).Error)
	require.NoError(t, db.Create(&grill).Error)

	seedPaidOrder(t, db, 1, 45, []models.OrderItem{
		{ProductID: soup.ID, Quantity: 3, Price: 10},
		{ProductID: grill.ID, Quantity: 1, Price: 15},
	})
	seedPaidOrder(t, db, 1, 35, []models.OrderItem{
		{ProductID: grill.ID, Quantity: 1, Price: 15},
		{ProductID: soup.ID, Quantity: 2, Price: 10},
	})

	r := setupStatsRouter(db, 1)
	w := doJSON(t, r, "GET", "/admin/stats/popular-products", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	require.Len(t, data, 2)

	top := data[0].(map[string]interface{})
	assert.Equal(t, float64(soup.ID), top["product_id"])
	assert.Equal(t, float64(5), top["total_quantity"])
	assert.Equal(t, float64(50), top["total_revenue"])
	assert.Equal(t, "Ciorba", top["product"].(map[string]interface{})["name"])

	second := data[1].(map[string]interface{})
	assert.Equal(t, float64(2), second["total_quantity"])
	assert.Equal(t, float64(30), second["total_revenue"])
}

func TestGetPopularProductsLimit(t *testing.T) {
	db := setupTestDB(t)

	soup := models.Product{RestaurantID: 1, Name: "Ciorba", Description: "d", Price: 10, Category: "Soups", IsAvailable: true}
	grill := models.Product{RestaurantID: 1, Name: "Mici", Description: "d", Price: 15, Category: "Grill", IsAvailable: true}
	require.NoError(t, db.Create(&soup).Error)
	require.NoError(t, db.Create(&grill).Error)

	seedPaidOrder(t, db, 1, 25, []models.OrderItem{
		{ProductID: soup.ID, Quantity: 1, Price: 10},
		{ProductID: grill.ID, Quantity: 1, Price: 15},
	})

	r := setupStatsRouter(db, 1)
	w := doJSON(t, r, "GET", "/admin/stats/popular-products?limit=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Len(t, response["data"].([]interface{}), 1)

	w = doJSON(t, r, "GET", "/admin/stats/popular-products?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
