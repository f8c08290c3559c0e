package database

import (
	"fmt"
	"log"

	config "github.com/pachatour/pacha_tour/configs"
	"github.com/pachatour/pacha_tour/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Attraction{},
		&models.Tour{},
		&models.TourAttraction{},
		&models.TourSchedule{},
		&models.Booking{},
		&models.PlannedVisit{},
		&models.Payment{},
		&models.Commission{},
		&models.Invoice{},
		&models.Review{},
		&models.Media{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedDepartments loads the base catalog of departments on an empty database.
func SeedDepartments() {
	var count int64
	if err := DB.Model(&models.Department{}).Count(&count).Error; err != nil {
		log.Printf("🔥 Failed to check departments: %v", err)
		return
	}
	if count > 0 {
		return
	}

	departments := []models.Department{
		{Name: "Cusco", Slug: "cusco", Capital: "Cusco", Latitude: -13.5319, Longitude: -71.9675},
		{Name: "Lima", Slug: "lima", Capital: "Lima", Latitude: -12.0464, Longitude: -77.0428},
		{Name: "Arequipa", Slug: "arequipa", Capital: "Arequipa", Latitude: -16.4090, Longitude: -71.5375},
		{Name: "Puno", Slug: "puno", Capital: "Puno", Latitude: -15.8402, Longitude: -70.0219},
		{Name: "Loreto", Slug: "loreto", Capital: "Iquitos", Latitude: -3.7491, Longitude: -73.2538},
		{Name: "La Libertad", Slug: "la-libertad", Capital: "Trujillo", Latitude: -8.1160, Longitude: -79.0300},
		{Name: "Ica", Slug: "ica", Capital: "Ica", Latitude: -14.0678, Longitude: -75.7286},
		{Name: "Madre de Dios", Slug: "madre-de-dios", Capital: "Puerto Maldonado", Latitude: -12.5933, Longitude: -69.1891},
	}
	if err := DB.Create(&departments).Error; err != nil {
		log.Printf("🔥 Failed to seed departments: %v", err)
		return
	}
	log.Printf("✅ Seeded %d departments", len(departments))
}
