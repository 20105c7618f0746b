package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/utils"
	"food-ordering-api/workflow"
)

// stagedDeletions holds the per-admin two-step delete markers. Staging is
// ephemeral process state, never persisted.
var stagedDeletions = workflow.NewStagingArea()

// ── Account moderation ───────────────────────────────────────────────────────

// AdminGetAllUsers returns all accounts, optionally filtered by role/status
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// ApproveRestaurant activates a pending restaurant account
func ApproveRestaurant(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.Role != models.RoleRestaurant || user.Status != models.AccountPending {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only pending restaurant accounts can be approved"})
		return
	}

	config.DB.Model(&user).Update("status", models.AccountActive)
	utils.InfoLogger.Printf("restaurant %d approved by admin %d", user.ID, middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant approved", "user_id": user.ID})
}

// SuspendUser suspends any non-admin account
func SuspendUser(c *gin.Context) {
	setAccountStatus(c, models.AccountSuspended, "User suspended")
}

// ActivateUser re-activates any non-admin account
func ActivateUser(c *gin.Context) {
	setAccountStatus(c, models.AccountActive, "User activated")
}

func setAccountStatus(c *gin.Context, status models.AccountStatus, message string) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin accounts cannot be moderated"})
		return
	}

	config.DB.Model(&user).Update("status", status)
	c.JSON(http.StatusOK, gin.H{"message": message, "user_id": user.ID, "status": status})
}

// AdminDeleteAccount permanently removes a non-admin account with all its
// dependent rows.
func AdminDeleteAccount(c *gin.Context) {
	accountID, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor := workflow.Actor{ID: middleware.GetUserID(c), Role: models.RoleAdmin}
	if err := workflow.DeleteAccount(config.DB, accountID, actor); err != nil {
		respondWorkflowError(c, err)
		return
	}
	utils.InfoLogger.Printf("account %d deleted by admin %d", accountID, actor.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted", "account_id": accountID})
}

// ── Orders & payments oversight ──────────────────────────────────────────────

// AdminGetAllOrders returns all orders with aggregates
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("FoodItem").Preload("Customer").Preload("Payment")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}

	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	totalRevenue := decimal.Zero
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue = totalRevenue.Add(o.TotalPrice)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminGetAllPayments returns all payment claims, optionally by status
func AdminGetAllPayments(c *gin.Context) {
	var payments []models.Payment
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&payments)
	c.JSON(http.StatusOK, gin.H{"count": len(payments), "payments": payments})
}

// AdminVerifyPayment verifies a pending payment, accepting its order
func AdminVerifyPayment(c *gin.Context) {
	paymentID, ok := parseID(c, "paymentId")
	if !ok {
		return
	}

	actor := workflow.Actor{ID: middleware.GetUserID(c), Role: models.RoleAdmin}
	if err := workflow.VerifyPayment(config.DB, paymentID, actor); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment verified", "payment_id": paymentID})
}

// AdminRejectPayment rejects a pending payment, cancelling its order
func AdminRejectPayment(c *gin.Context) {
	paymentID, ok := parseID(c, "paymentId")
	if !ok {
		return
	}

	actor := workflow.Actor{ID: middleware.GetUserID(c), Role: models.RoleAdmin}
	if err := workflow.RejectPayment(config.DB, paymentID, actor); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment rejected", "payment_id": paymentID})
}

// ── Staged deletion ──────────────────────────────────────────────────────────

type StageDeletionRequest struct {
	Kind     workflow.StagedKind `json:"kind" binding:"required"`
	TargetID uint                `json:"target_id" binding:"required"`
}

// StageDeletion records what the admin wants to delete without touching any
// data. The actual delete happens on confirm; undo clears the marker.
func StageDeletion(c *gin.Context) {
	adminID := middleware.GetUserID(c)

	var req StageDeletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Kind {
	case workflow.StageFoodItem:
		var item models.FoodItem
		if err := config.DB.First(&item, req.TargetID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
			return
		}
	case workflow.StageOrder:
		var order models.Order
		if err := config.DB.First(&order, req.TargetID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kind. Must be: food_item or order"})
		return
	}

	stagedDeletions.Stage(adminID, req.Kind, req.TargetID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Deletion staged. Confirm to delete permanently, or undo to cancel.",
		"staged":  workflow.StagedDeletion{Kind: req.Kind, TargetID: req.TargetID},
	})
}

// ConfirmDeletion performs the cascading delete the admin previously staged
func ConfirmDeletion(c *gin.Context) {
	adminID := middleware.GetUserID(c)

	staged, ok := stagedDeletions.Staged(adminID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No deletion staged"})
		return
	}

	var err error
	switch staged.Kind {
	case workflow.StageFoodItem:
		err = workflow.DeleteFoodItem(config.DB, staged.TargetID)
	case workflow.StageOrder:
		err = workflow.DeleteOrder(config.DB, staged.TargetID)
	}
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	stagedDeletions.Clear(adminID)
	utils.InfoLogger.Printf("%s %d deleted by admin %d", staged.Kind, staged.TargetID, adminID)
	c.JSON(http.StatusOK, gin.H{"message": "Deleted permanently", "deleted": staged})
}

// UndoDeletion clears the staged marker without deleting anything
func UndoDeletion(c *gin.Context) {
	adminID := middleware.GetUserID(c)

	staged, ok := stagedDeletions.Staged(adminID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No deletion staged"})
		return
	}

	stagedDeletions.Clear(adminID)
	c.JSON(http.StatusOK, gin.H{"message": "Deletion cancelled", "was_staged": staged})
}
