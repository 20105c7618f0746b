package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"
)

// ListFoodItems returns the browsable catalog (public)
func ListFoodItems(c *gin.Context) {
	var items []models.FoodItem
	query := config.DB.Preload("Restaurant")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Order("created_at desc").Find(&items)
	c.JSON(http.StatusOK, gin.H{
		"count":      len(items),
		"food_items": items,
	})
}

// GetFoodItem returns a single catalog entry (public)
func GetFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := config.DB.Preload("Restaurant").First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food_item": item})
}

// ListRestaurants returns all active restaurant accounts (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.User
	query := config.DB.Where("role = ? AND status = ?", models.RoleRestaurant, models.AccountActive)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Order lifecycle: payment outcome moves pending orders, restaurants handle fulfillment",
	})
}
