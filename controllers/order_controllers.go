package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qrresto/qr-resto/middlewares"
	"github.com/qrresto/qr-resto/models"
	"github.com/qrresto/qr-resto/services"
	"github.com/qrresto/qr-resto/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB       *gorm.DB
	Sessions *services.SessionService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Sessions: services.NewSessionService(db)}
}

// CreateOrder materializes a diner's cart into an order. No login needed;
// the table id comes from the scanned QR code. Prices are taken from the
// catalog at write time, never from the client: a client-supplied price
// that disagrees with the current product price is rejected.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type itemReq struct {
		ProductID uint     `json:"product_id" binding:"required"`
		Quantity  int      `json:"quantity" binding:"required"`
		Price     *float64 `json:"price"`
		Notes     string   `json:"notes"`
	}

	var body struct {
		TableID         uint      `json:"table_id" binding:"required"`
		Items           []itemReq `json:"items" binding:"required,min=1"`
		SpecialRequests string    `json:"special_requests"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := oc.DB.First(&table, body.TableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	sessionID, err := oc.Sessions.EnsureSession(table.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var (
		total float64
		items []models.OrderItem
	)
	for _, item := range body.Items {
		if item.Quantity < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("quantity must be at least 1"))
			return
		}

		var product models.Product
		if err := oc.DB.First(&product, item.ProductID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown product %d", item.ProductID))
			return
		}
		if product.RestaurantID != table.RestaurantID {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("product %d does not belong to this restaurant", product.ID))
			return
		}
		if !product.IsAvailable {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("product %s is not available", product.Name))
			return
		}
		if item.Price != nil && *item.Price != product.Price {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("price for %s has changed, please refresh the menu", product.Name))
			return
		}

		total += float64(item.Quantity) * product.Price
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Notes:     item.Notes,
		})
	}

	// The 3-digit random suffix can collide within one table and day; pick
	// again if the number is already taken. The unique index is the backstop.
	orderNumber := services.GenerateOrderNumber(table.ID, time.Now())
	for attempt := 0; attempt < 3; attempt++ {
		var taken int64
		oc.DB.Model(&models.Order{}).Where("order_number = ?", orderNumber).Count(&taken)
		if taken == 0 {
			break
		}
		orderNumber = services.GenerateOrderNumber(table.ID, time.Now())
	}

	order := models.Order{
		RestaurantID:    table.RestaurantID,
		TableID:         table.ID,
		SessionID:       sessionID,
		Status:          services.OrderPending,
		TotalAmount:     total,
		OrderNumber:     orderNumber,
		SpecialRequests: body.SpecialRequests,
		Items:           items,
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var created models.Order
	if err := oc.DB.Preload("Items.Product").Preload("Table").First(&created, order.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created: table=%d total=%.2f", created.OrderNumber, table.ID, total)
	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", gin.H{
		"order":      created,
		"session_id": sessionID,
	})
}

// GetOrderByID is the diner's receipt view; no auth, the order id acts as
// the capability.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("Items.Product").Preload("Table").First(&order, "id = ?", c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders lists the restaurant's orders, newest first, optionally
// filtered by status.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	query := oc.DB.Where("restaurant_id = ?", actorID)
	if status := c.Query("status"); status != "" {
		if !services.IsValidOrderStatus(status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order status"))
			return
		}
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Preload("Items.Product").Preload("Table").Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus advances an order along the fulfillment chain. Moves
// not in the transition table are rejected.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !services.IsValidOrderStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order status"))
		return
	}

	var order models.Order
	if err := oc.DB.Where("id = ? AND restaurant_id = ?", c.Param("order_id"), actorID).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrNotFound)
		return
	}

	if !services.CanTransition(order.Status, body.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("cannot move order from %s to %s", order.Status, body.Status))
		return
	}

	order.Status = body.Status
	if services.IsTerminalStatus(order.Status) {
		now := time.Now()
		order.CompletedAt = &now
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d moved to %s", order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
