package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Unsorted-Wings/sweet-shop/models"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connection() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error Loading .env file")
	}
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic(err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Sweet{}); err != nil {
		panic(err)
	}
	DB = db
}
