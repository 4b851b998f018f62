package main

import (
	"log"
	"os"

	"ecoshop/internal/config"
	"ecoshop/internal/models"
	"ecoshop/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	seedAdmin(adminEmail, adminPassword)
	seedCatalog()
	seedSponsors()

	log.Println("Seed completed")
}

func seedAdmin(email, password string) {
	var existing models.User
	if err := repositories.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Email:        email,
		Password:     string(hashed),
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		TokenVersion: 1,
	}
	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}
	log.Println("Admin account created")
}

func seedCatalog() {
	var count int64
	repositories.DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Catalog already seeded")
		return
	}

	categories := []models.Category{
		{Name: "Đồ gia dụng"},
		{Name: "Thời trang"},
		{Name: "Thực phẩm"},
	}
	if err := repositories.DB.Create(&categories).Error; err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	products := []models.Product{
		{Name: "Bình nước tre", Price: 150000, CO2Emission: 12, CategoryID: &categories[0].ID},
		{Name: "Túi vải canvas", Price: 90000, CO2Emission: 8, CategoryID: &categories[1].ID},
		{Name: "Ống hút inox", Price: 45000, CO2Emission: 5, CategoryID: &categories[0].ID},
		{Name: "Xà phòng thiên nhiên", Price: 60000, CO2Emission: 80, CategoryID: &categories[2].ID},
	}
	if err := repositories.DB.Create(&products).Error; err != nil {
		log.Fatal("Failed to seed products:", err)
	}
	log.Printf("Seeded %d categories and %d products", len(categories), len(products))
}

func seedSponsors() {
	var count int64
	repositories.DB.Model(&models.Sponsor{}).Count(&count)
	if count > 0 {
		log.Println("Sponsors already seeded")
		return
	}

	sponsors := []models.Sponsor{
		{Name: "GreenViet Foundation", TotalFunded: 500000, RemainingBalance: 500000, FocusArea: "reforestation"},
		{Name: "EcoBank Vietnam", TotalFunded: 1000000, RemainingBalance: 1000000, FocusArea: "recycling"},
	}
	if err := repositories.DB.Create(&sponsors).Error; err != nil {
		log.Fatal("Failed to seed sponsors:", err)
	}
	log.Printf("Seeded %d sponsors", len(sponsors))
}
