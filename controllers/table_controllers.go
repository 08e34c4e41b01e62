package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qrresto/qr-resto/config"
	"github.com/qrresto/qr-resto/middlewares"
	"github.com/qrresto/qr-resto/models"
	"github.com/qrresto/qr-resto/services"
	"github.com/qrresto/qr-resto/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB       *gorm.DB
	Sessions *services.SessionService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db, Sessions: services.NewSessionService(db)}
}

// CreateTable adds a table for the authenticated restaurant and bakes the
// menu-page URL into a QR code stored on the record.
func (tc *TableController) CreateTable(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var req struct {
		Number   int    `json:"number" binding:"required,min=1"`
		Capacity int    `json:"capacity" binding:"required,min=1"`
		Location string `json:"location" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidTableLocation(req.Location) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("location must be interior or terrace"))
		return
	}

	var existing models.Table
	if err := tc.DB.Where("restaurant_id = ? AND number = ?", actorID, req.Number).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("a table with this number already exists"))
		return
	}

	menuURL := fmt.Sprintf("%s/menu/%d/%d", config.BaseURL(), actorID, req.Number)
	qr, err := utils.GenerateQRDataURL(menuURL)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	table := models.Table{
		RestaurantID: actorID,
		Number:       req.Number,
		Capacity:     req.Capacity,
		Location:     req.Location,
		Status:       models.TableAvailable,
		QRCode:       qr,
		MenuURL:      menuURL,
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: number=%d restaurant=%d", table.Number, actorID)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables lists the restaurant's tables sorted by number.
func (tc *TableController) GetAllTables(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var tables []models.Table
	if err := tc.DB.Where("restaurant_id = ?", actorID).Order("number asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID shows one of the restaurant's tables.
func (tc *TableController) GetTableByID(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var table models.Table
	if err := tc.DB.Where("id = ? AND restaurant_id = ?", c.Param("table_id"), actorID).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable changes status, capacity or location.
func (tc *TableController) UpdateTable(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var body struct {
		Status   *string `json:"status"`
		Capacity *int    `json:"capacity"`
		Location *string `json:"location"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.Where("id = ? AND restaurant_id = ?", c.Param("table_id"), actorID).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrNotFound)
		return
	}

	if body.Status != nil {
		if !models.ValidTableStatus(*body.Status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table status"))
			return
		}
		table.Status = *body.Status
	}
	if body.Capacity != nil {
		if *body.Capacity < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("capacity must be at least 1"))
			return
		}
		table.Capacity = *body.Capacity
	}
	if body.Location != nil {
		if !models.ValidTableLocation(*body.Location) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("location must be interior or terrace"))
			return
		}
		table.Location = *body.Location
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d updated (status=%s)", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// CloseTable ends the dining session: the session token is cleared and the
// table becomes available again.
func (tc *TableController) CloseTable(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var table models.Table
	if err := tc.DB.Where("id = ? AND restaurant_id = ?", c.Param("table_id"), actorID).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrNotFound)
		return
	}

	closed, err := tc.Sessions.CloseSession(table.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d session closed", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table session closed", closed)
}

// DeleteTable removes one of the restaurant's tables.
func (tc *TableController) DeleteTable(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var table models.Table
	if err := tc.DB.Where("id = ? AND restaurant_id = ?", c.Param("table_id"), actorID).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrNotFound)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}
