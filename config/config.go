package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/infantleo38/brainx/models"
)

var DB *gorm.DB

func InitDatabase() {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	var err error
	// TranslateError surfaces unique-key violations as gorm.ErrDuplicatedKey,
	// which the receipt tracker and add-member rely on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Successfully connected to database!")

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Batch{},
		&models.Chat{},
		&models.ChatMember{},
		&models.Message{},
		&models.MessageRead{},
		&models.ChatResource{},
	); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
}

// JWTSecret returns the key used to validate resolved-identity tokens.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("JWT_SECRET not set, using development default")
		secret = "dev_secret"
	}
	return secret
}

// BunnyConfig holds the object-storage settings.
type BunnyConfig struct {
	APIKey      string
	StorageZone string
	Region      string
	CDNURL      string
}

func LoadBunnyConfig() BunnyConfig {
	return BunnyConfig{
		APIKey:      os.Getenv("BUNNY_API_KEY"),
		StorageZone: os.Getenv("BUNNY_STORAGE_ZONE"),
		Region:      os.Getenv("BUNNY_REGION"),
		CDNURL:      os.Getenv("BUNNY_CDN_URL"),
	}
}
