package main

import (
	"fmt"
	"os"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"
)

func main() {
	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("Set ADMIN_EMAIL and ADMIN_PASSWORD to seed the admin user")
		return
	}

	user := &models.User{
		FirstName: "System",
		LastName:  "Admin",
		Email:     email,
		Password:  password,
	}

	if err := database.CreateUser(db, user, "admin"); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
