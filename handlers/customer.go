package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/utils"
	"food-ordering-api/workflow"
)

type CheckoutRequest struct {
	Items          []workflow.CartItemRequest `json:"items" binding:"required,min=1"`
	TransactionRef string                     `json:"bkash_transaction_id" binding:"required"`
	PayerPhone     string                     `json:"payment_phone_number" binding:"required,min=10,max=20"`
}

// Checkout places one order and one payment claim per cart line (customer
// only). The customer supplies a single bKash transaction reference and the
// phone the transfer was made from. No gateway is contacted; the reference
// is unverified evidence awaiting admin or restaurant review.
func Checkout(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := workflow.BuildCart(config.DB, req.Items)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	orderIDs, err := workflow.PlaceOrder(config.DB, customerID, cart, req.TransactionRef, req.PayerPhone)
	if err != nil {
		utils.ErrorLogger.Printf("checkout failed for customer %d: %v", customerID, err)
		respondWorkflowError(c, err)
		return
	}

	var orders []models.Order
	config.DB.Preload("FoodItem").Preload("Payment").Where("id IN ?", orderIDs).Find(&orders)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Order placed successfully. Please wait for verification of your payment.",
		"order_ids": orderIDs,
		"orders":    orders,
	})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var orders []models.Order
	query := config.DB.Preload("FoodItem").Preload("Payment").
		Where("customer_id = ?", customerID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order with its payment
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("FoodItem").Preload("Payment").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
