// config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI       string
	Database       string
	RiskCollection string
)

// LoadConfig reads the environment, after a best-effort .env load. Defaults
// suit local development.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017"
	}

	Database = os.Getenv("MONGO_DB")
	if Database == "" {
		Database = "sgi"
	}

	RiskCollection = os.Getenv("RISK_COLLECTION")
	if RiskCollection == "" {
		RiskCollection = "risk_records"
	}
}
