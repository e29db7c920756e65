package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/marcgerasmio/alaika2/internal/models"
)

type Config struct {
	DB_HOST        string
	DB_PORT        string
	DB_USER        string
	DB_PASSWORD    string
	DB_NAME        string
	ES_URL         string
	ES_USER        string
	ES_PASSWORD    string
	JWT_SECRET     string
	REFRESH_SECRET string
	KAFKA_ADDRESS  string
	LOG_LEVEL      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        os.Getenv("DB_PORT"),
		DB_USER:        os.Getenv("DB_USER"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		ES_URL:         os.Getenv("ES_URL"),
		ES_USER:        os.Getenv("ES_USER"),
		ES_PASSWORD:    os.Getenv("ES_PASSWORD"),
		JWT_SECRET:     os.Getenv("JWT_SECRET"),
		REFRESH_SECRET: os.Getenv("REFRESH_SECRET"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:      os.Getenv("LOG_LEVEL"),
	}

	return config, nil
}

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

func InitDB(ctx context.Context) (*gorm.DB, error) {
	configuration, _ := LoadConfig()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		configuration.DB_USER,
		configuration.DB_PASSWORD,
		configuration.DB_HOST,
		configuration.DB_PORT,
		configuration.DB_NAME,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Branch{},
		&models.Product{},
		&models.CartItem{},
		&models.Transaction{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return SeedBranches(db)
}

// SeedBranches writes the fixed set of storefronts. Existing rows are
// left alone so the seed is safe to run on every start.
func SeedBranches(db *gorm.DB) error {
	branches := []models.Branch{
		{Name: "Manila", Description: "Plaza Sta. Cruz, Santa Cruz, Manila"},
		{Name: "Makati", Description: "Paseo De Roxas St ,Cor Makati Ave, Makati"},
		{Name: "Cebu", Description: "Gothong, Mandaue City, 6014 Cebu"},
		{Name: "Leyte", Description: "Sambulawan Junction, Calaguise, Calubian Rd, Leyte"},
		{Name: "Surigao", Description: "San Nicolas corner Diez Streets, Surigao City, Surigao City"},
		{Name: "Butuan", Description: "Jose Rosales Ave, Butuan City, Agusan Del Norte"},
		{Name: "Zamboanga", Description: "Maria Clara Lorenzo Lobregat Hwy, Zamboanga del Sur"},
		{Name: "Batangas", Description: "Yellowbell Country Inn, P.Prieto, Poblacion, Batangas"},
		{Name: "Baguio", Description: "Mabini St, 42 Session Rd, Baguio, Benguet"},
		{Name: "Davao", Description: "Reyes Drive, 2b Maryknoll Dr, Lanang, Davao City"},
	}

	for _, b := range branches {
		if err := db.Where(models.Branch{Name: b.Name}).FirstOrCreate(&b).Error; err != nil {
			return fmt.Errorf("failed to seed branch %s: %w", b.Name, err)
		}
	}
	return nil
}
