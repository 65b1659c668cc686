package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mprower/coleccionables-api/auth"
	"github.com/mprower/coleccionables-api/middleware"
	"github.com/mprower/coleccionables-api/models"
	"github.com/mprower/coleccionables-api/routes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables. The stock-decrement trigger on detalle_venta
	// lives in the database itself.
	if err := db.AutoMigrate(
		&models.Cliente{},
		&models.Descripcion{},
		&models.Producto{},
		&models.Oferta{},
		&models.CarritoItem{},
		&models.Venta{},
		&models.DetalleVenta{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Token manager: secret and issuer come from the environment, never from
	// constants baked into the binary.
	tm := auth.NewTokenManager(
		getEnv("JWT_SECRET", "clave-de-desarrollo-no-usar-en-produccion"),
		getEnv("JWT_ISSUER", "ecommerce-api"),
		tokenTTL,
	)

	// Gin setup
	r := gin.Default()
	r.Use(middleware.RequestID)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve product photos
	r.Static("/uploads", getEnv("UPLOADS_DIR", "./uploads"))

	// Setup routes
	routes.SetupRoutes(r, db, tm)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection against MySQL
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "3306")
	user := getEnv("DB_USER", "root")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_NAME", "ecommerce")

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
