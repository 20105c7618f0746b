package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/workflow"
)

// ── Menu management ──────────────────────────────────────────────────────────

type FoodItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category" binding:"required"`
}

// AddFoodItem creates a menu entry owned by the logged-in restaurant
func AddFoodItem(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
		return
	}

	item := models.FoodItem{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Category:     req.Category,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item added", "food_item": item})
}

// GetMyFoodItems lists the logged-in restaurant's menu
func GetMyFoodItems(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)
	var items []models.FoodItem
	config.DB.Where("restaurant_id = ?", restaurantID).Order("created_at desc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "food_items": items})
}

// UpdateFoodItem edits one of the restaurant's own menu entries
func UpdateFoodItem(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	if item.RestaurantID != restaurantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own food items"})
		return
	}

	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated", "food_item": item})
}

// DeleteFoodItem removes one of the restaurant's own menu entries, cascading
// to dependent orders and payments.
func DeleteFoodItem(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	if item.RestaurantID != restaurantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own food items"})
		return
	}

	if err := workflow.DeleteFoodItem(config.DB, item.ID); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted", "food_item_id": item.ID})
}

// ── Order fulfillment ────────────────────────────────────────────────────────

// GetRestaurantOrders returns all orders for the logged-in restaurant
func GetRestaurantOrders(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var orders []models.Order
	query := config.DB.Preload("FoodItem").Preload("Customer").Preload("Payment").
		Where("restaurant_id = ?", restaurantID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus advances one of the restaurant's orders through
// fulfillment, or cancels it.
func UpdateOrderStatus(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := workflow.Actor{ID: restaurantID, Role: models.RoleRestaurant}
	if err := workflow.AdvanceOrder(config.DB, orderID, req.Status, actor); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated",
		"order_id":       orderID,
		"current_status": req.Status,
	})
}

// ── Payment verification ─────────────────────────────────────────────────────

// GetRestaurantPayments lists payment claims against the restaurant's orders
func GetRestaurantPayments(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var payments []models.Payment
	query := config.DB.Where("restaurant_id = ?", restaurantID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&payments)
	c.JSON(http.StatusOK, gin.H{"count": len(payments), "payments": payments})
}

// RestaurantVerifyPayment verifies a pending payment for one of the
// restaurant's orders, which also accepts the order.
func RestaurantVerifyPayment(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)
	paymentID, ok := parseID(c, "paymentId")
	if !ok {
		return
	}

	actor := workflow.Actor{ID: restaurantID, Role: models.RoleRestaurant}
	if err := workflow.VerifyPayment(config.DB, paymentID, actor); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment verified", "payment_id": paymentID})
}

// RestaurantRejectPayment marks a pending payment failed and cancels the
// order.
func RestaurantRejectPayment(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)
	paymentID, ok := parseID(c, "paymentId")
	if !ok {
		return
	}

	actor := workflow.Actor{ID: restaurantID, Role: models.RoleRestaurant}
	if err := workflow.RejectPayment(config.DB, paymentID, actor); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment marked failed", "payment_id": paymentID})
}
