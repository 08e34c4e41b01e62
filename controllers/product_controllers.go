package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qrresto/qr-resto/middlewares"
	"github.com/qrresto/qr-resto/models"
	"github.com/qrresto/qr-resto/utils"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// CreateProduct adds a catalog entry owned by the authenticated restaurant.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var req struct {
		Name            string   `json:"name" binding:"required"`
		Description     string   `json:"description" binding:"required"`
		Price           *float64 `json:"price" binding:"required"`
		Category        string   `json:"category" binding:"required"`
		Image           string   `json:"image"`
		PreparationTime int      `json:"preparation_time"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if *req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}

	product := models.Product{
		RestaurantID:    actorID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           *req.Price,
		Category:        req.Category,
		Image:           req.Image,
		IsAvailable:     true,
		PreparationTime: req.PreparationTime,
	}
	if product.PreparationTime == 0 {
		product.PreparationTime = 15
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Product created: %s (restaurant=%d)", product.Name, actorID)
	utils.RespondJSON(c, http.StatusCreated, "Product created successfully", product)
}

// GetProducts is the public menu listing, keyed by restaurant id and sorted
// by category then name. Availability is returned but not filtered, so the
// menu page can grey out sold-out items.
func (pc *ProductController) GetProducts(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurant_id"))
	if err != nil || restaurantID < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("restaurant_id is required"))
		return
	}

	var products []models.Product
	if err := pc.DB.Where("restaurant_id = ?", restaurantID).
		Order("category asc, name asc").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// UpdateProduct edits a product. The query is scoped by owner, so a product
// belonging to another restaurant looks absent.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var req struct {
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price"`
		Category        *string  `json:"category"`
		Image           *string  `json:"image"`
		IsAvailable     *bool    `json:"is_available"`
		PreparationTime *int     `json:"preparation_time"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	if err := pc.DB.Where("id = ? AND restaurant_id = ?", c.Param("product_id"), actorID).First(&product).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrNotFound)
		return
	}

	if req.Price != nil {
		if *req.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
			return
		}
		product.Price = *req.Price
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		product.PreparationTime = *req.PreparationTime
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated successfully", product)
}

// DeleteProduct removes a product, again scoped by owner.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	actorID, ok := middlewares.ActorID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized)
		return
	}

	var product models.Product
	if err := pc.DB.Where("id = ? AND restaurant_id = ?", c.Param("product_id"), actorID).First(&product).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrNotFound)
		return
	}

	if err := pc.DB.Delete(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Product %d deleted (restaurant=%d)", product.ID, actorID)
	utils.RespondJSON(c, http.StatusOK, "Product deleted successfully", gin.H{"id": product.ID})
}
