package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering-api/models"
)

func TestRegisterAndLoginCustomer(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "John Doe",
		"email":    "john@example.com",
		"phone":    "01712000001",
		"location": "Sylhet",
		"password": "secret123",
		"role":     "customer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.NotEmpty(t, resp["token"])

	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "john@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	assert.NotEmpty(t, resp["token"])
}

func TestRegisterRestaurantAwaitsApproval(t *testing.T) {
	r, db := setupServer(t)

	w := doJSON(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Taste of Italy",
		"email":    "italy@example.com",
		"phone":    "01712000002",
		"location": "Dhaka",
		"password": "secret123",
		"role":     "restaurant",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Nil(t, resp["token"])

	var user models.User
	require.NoError(t, db.Where("email = ?", "italy@example.com").First(&user).Error)
	assert.Equal(t, models.AccountPending, user.Status)

	// Pending restaurants cannot log in yet.
	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "italy@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Sneaky",
		"email":    "sneaky@example.com",
		"phone":    "01712000003",
		"location": "Dhaka",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmailAndPhone(t *testing.T) {
	r, db := setupServer(t)
	existing := createAccount(t, db, "jane", models.RoleCustomer, models.AccountActive)

	w := doJSON(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Other Jane",
		"email":    existing.Email,
		"phone":    "01712000004",
		"location": "Khulna",
		"password": "secret123",
		"role":     "customer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Other Jane",
		"email":    "other.jane@example.com",
		"phone":    existing.Phone,
		"location": "Khulna",
		"password": "secret123",
		"role":     "customer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	r, db := setupServer(t)
	suspended := createAccount(t, db, "suspended", models.RoleCustomer, models.AccountSuspended)

	w := doJSON(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    suspended.Email,
		"password": testPassword,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An already-issued token stops working too.
	w = doJSON(t, r, "GET", "/api/profile", tokenFor(t, suspended), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r, db := setupServer(t)
	user := createAccount(t, db, "victor", models.RoleCustomer, models.AccountActive)

	w := doJSON(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	r, db := setupServer(t)
	user := createAccount(t, db, "mover", models.RoleCustomer, models.AccountActive)

	w := doJSON(t, r, "PUT", "/api/profile", tokenFor(t, user), map[string]interface{}{
		"name":     "Mover Moved",
		"email":    user.Email,
		"phone":    user.Phone,
		"location": "Chittagong",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "Mover Moved", updated.Name)
	assert.Equal(t, "Chittagong", updated.Location)
}
