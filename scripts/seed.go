package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food-ordering-api/config"
	"food-ordering-api/models"
)

// Seeds the database with a demo dataset: one admin, three restaurants,
// four customers and a starter menu. Run with: go run scripts/seed.go
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Connect database: %v", err)
	}

	if err := reset(db); err != nil {
		log.Fatalf("Reset schema: %v", err)
	}
	if err := seed(db); err != nil {
		log.Fatalf("Seed data: %v", err)
	}
	log.Println("Seed completed")
}

func reset(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Payment{}, &models.Order{}, &models.FoodItem{}, &models.User{},
	} {
		if err := db.Migrator().DropTable(model); err != nil {
			return err
		}
	}
	return config.Migrate(db)
}

func seed(db *gorm.DB) error {
	users := []models.User{
		{Name: "Admin User", Email: "admin@foodapp.com", Phone: "01000000000", Location: "Admin City", Role: models.RoleAdmin, Status: models.AccountActive},
		{Name: "Taste of Italy", Email: "italy@foodapp.com", Phone: "01111111111", Location: "Dhaka", Role: models.RoleRestaurant, Status: models.AccountActive},
		{Name: "Spice Route", Email: "spice@foodapp.com", Phone: "01222222222", Location: "Chittagong", Role: models.RoleRestaurant, Status: models.AccountActive},
		{Name: "Seafood Haven", Email: "seafood@foodapp.com", Phone: "01555555555", Location: "Cox's Bazar", Role: models.RoleRestaurant, Status: models.AccountPending},
		{Name: "John Doe", Email: "john@foodapp.com", Phone: "01333333333", Location: "Sylhet", Role: models.RoleCustomer, Status: models.AccountActive},
		{Name: "Jane Smith", Email: "jane@foodapp.com", Phone: "01444444444", Location: "Khulna", Role: models.RoleCustomer, Status: models.AccountActive},
		{Name: "Ali Khan", Email: "ali@foodapp.com", Phone: "01666666666", Location: "Rajshahi", Role: models.RoleCustomer, Status: models.AccountActive},
		{Name: "Sara Ahmed", Email: "sara@foodapp.com", Phone: "01777777777", Location: "Barisal", Role: models.RoleCustomer, Status: models.AccountActive},
	}
	passwords := []string{"admin123", "restaurant123", "restaurant123", "restaurant123", "customer123", "customer123", "customer123", "customer123"}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(passwords[i]), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users[i].PasswordHash = string(hash)
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	italy := users[1].ID
	spice := users[2].ID
	items := []models.FoodItem{
		{Name: "Margherita Pizza", Description: "Classic pizza with tomato and mozzarella", Price: decimal.RequireFromString("12.50"), RestaurantID: italy, ImageURL: "pizza.jpg", Category: "Pizza"},
		{Name: "Carbonara Pasta", Description: "Creamy pasta with egg, cheese, and bacon", Price: decimal.RequireFromString("14.00"), RestaurantID: italy, ImageURL: "pasta.jpg", Category: "Pasta"},
		{Name: "Chicken Biryani", Description: "Fragrant rice with spiced chicken", Price: decimal.RequireFromString("9.75"), RestaurantID: spice, ImageURL: "biryani.jpg", Category: "Rice"},
		{Name: "Beef Curry", Description: "Slow-cooked beef in a rich curry", Price: decimal.RequireFromString("11.25"), RestaurantID: spice, ImageURL: "curry.jpg", Category: "Curry"},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
