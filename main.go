package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/routes"
	"clinicpro-backend/services"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_LEVEL") == "debug" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", utils.GenerateJWTSecret())
		logrus.Warn("JWT_SECRET not set; generated an ephemeral secret, sessions will not survive a restart")
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Customer{},
		&models.Service{},
		&models.CourseDefinition{},
		&models.CustomerCourse{},
		&models.TreatmentRecord{},
		&models.InventoryItem{},
		&models.Appointment{},
		&models.Transaction{},
	)
}

func main() {
	snapshots := store.New()
	authority := services.NewRoleAuthority(config.DB)
	clinic := services.NewClinicService(config.DB, authority, snapshots)

	if err := clinic.Refresh(); err != nil {
		if errors.Is(err, services.ErrMissingTables) {
			logrus.Warn("clinic tables missing; run migrations or register the first user to initialize")
		} else {
			logrus.WithError(err).Warn("initial snapshot load failed; serving empty snapshot until refresh succeeds")
		}
	}

	maintenance := services.NewMaintenanceService(config.DB, clinic)
	maintenance.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(clinic, authority)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
