package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/qrresto/qr-resto/controllers"
	"github.com/qrresto/qr-resto/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRouter(db *gorm.DB, actorID uint) *gin.Engine {
	r := newTestEngine()
	productCtrl := controllers.NewProductController(db)
	r.GET("/products", productCtrl.GetProducts)

	admin := r.Group("/admin")
	admin.Use(asActor(actorID))
	admin.POST("/products", productCtrl.CreateProduct)
	admin.PATCH("/products/:product_id", productCtrl.UpdateProduct)
	admin.DELETE("/products/:product_id", productCtrl.DeleteProduct)
	return r
}

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupProductRouter(db, 1)

	w := doJSON(t, r, "POST", "/admin/products", gin.H{
		"name": "Sarmale", "description": "cabbage rolls", "price": 32.5, "category": "Mains",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, db.Where("name = ?", "Sarmale").First(&product).Error)
	assert.Equal(t, uint(1), product.RestaurantID)
	assert.Equal(t, 32.5, product.Price)
	assert.True(t, product.IsAvailable)
	assert.Equal(t, 15, product.PreparationTime)
}

func TestCreateProductNegativePrice(t *testing.T) {
	db := setupTestDB(t)
	r := setupProductRouter(db, 1)

	w := doJSON(t, r, "POST", "/admin/products", gin.H{
		"name": "Broken", "description": "x", "price": -1, "category": "Mains",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductsPublicSorted(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Product{RestaurantID: 1, Name: "Cola", Description: "d", Price: 8, Category: "Drinks", IsAvailable: true})
	db.Create(&models.Product{RestaurantID: 1, Name: "Zacusca", Description: "d", Price: 18, Category: "Appetizers", IsAvailable: false})
	db.Create(&models.Product{RestaurantID: 1, Name: "Bruschetta", Description: "d", Price: 22, Category: "Appetizers", IsAvailable: true})
	db.Create(&models.Product{RestaurantID: 2, Name: "Other", Description: "d", Price: 10, Category: "Drinks", IsAvailable: true})

	r := setupProductRouter(db, 1)
	w := doJSON(t, r, "GET", "/products?restaurant_id=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	require.Len(t, data, 3)

	// category asc, then name asc; unavailable items still listed
	names := []string{}
	for _, entry := range data {
		names = append(names, entry.(map[string]interface{})["name"].(string))
	}
	assert.Equal(t, []string{"Bruschetta", "Zacusca", "Cola"}, names)
}

func TestGetProductsRequiresRestaurantID(t *testing.T) {
	db := setupTestDB(t)
	r := setupProductRouter(db, 1)

	w := doJSON(t, r, "GET", "/products", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductCrossOwnerNotFound(t *testing.T) {
	db := setupTestDB(t)
	product := models.Product{RestaurantID: 2, Name: "Ciorba", Description: "d", Price: 20, Category: "Soups", IsAvailable: true}
	db.Create(&product)

	r := setupProductRouter(db, 1)
	w := doJSON(t, r, "PATCH", "/admin/products/"+strconv.Itoa(int(product.ID)), gin.H{"price": 25})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// record untouched
	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 20.0, reloaded.Price)
}

func TestDeleteProductCrossOwnerNotFound(t *testing.T) {
	db := setupTestDB(t)
	product := models.Product{RestaurantID: 2, Name: "Mici", Description: "d", Price: 15, Category: "Grill", IsAvailable: true}
	db.Create(&product)

	r := setupProductRouter(db, 1)
	w := doJSON(t, r, "DELETE", "/admin/products/"+strconv.Itoa(int(product.ID)), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProductOwner(t *testing.T) {
	db := setupTestDB(t)
	product := models.Product{RestaurantID: 1, Name: "Papanasi", Description: "d", Price: 24, Category: "Desserts", IsAvailable: true}
	db.Create(&product)

	r := setupProductRouter(db, 1)
	w := doJSON(t, r, "PATCH", "/admin/products/"+strconv.Itoa(int(product.ID)), gin.H{
		"price": 26.0, "is_available": false,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 26.0, reloaded.Price)
	assert.False(t, reloaded.IsAvailable)
}
