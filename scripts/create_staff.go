// scripts/create_staff.go — bootstrap a facility staff login.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/config"
	"github.com/addness-teambase/kyonodekita-sub002/database"
	"github.com/addness-teambase/kyonodekita-sub002/models"
)

func main() {
	username := flag.String("username", "admin", "staff username")
	password := flag.String("password", "", "initial password (required)")
	name := flag.String("name", "Facility Admin", "display name")
	role := flag.String("role", "admin", "role: admin or staff")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	_ = godotenv.Load()
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	var existing models.Staff
	if err := db.Where("username = ?", *username).First(&existing).Error; err == nil {
		fmt.Println("staff user already exists:", *username)
		os.Exit(0)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("query staff: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	u := models.Staff{
		Username: *username,
		Password: string(hashed),
		Role:     *role,
		Name:     *name,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("insert staff: %v", err)
	}

	fmt.Println("staff user created:", *username, "role:", *role)
}
