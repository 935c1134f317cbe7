package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Data source kinds accepted in DATA_SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	Addr       string
	DataSource string
	CSVDir     string
	DB         *sql.DB
}

var AppConfig *Config

// Init reads .env (when present) and the environment, and opens the
// database connection when DATA_SOURCE=postgres. CSV is the default source
// so the dashboard runs against a plain data directory with no database.
func Init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	cfg := &Config{
		Addr:       getenv("ADDR", ":8080"),
		DataSource: getenv("DATA_SOURCE", SourceCSV),
		CSVDir:     getenv("CSV_DIR", "./data"),
	}

	switch cfg.DataSource {
	case SourceCSV:
		log.Printf("Using CSV data source at %s", cfg.CSVDir)
	case SourcePostgres:
		dsn := getenv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=student_risk sslmode=disable")
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal("Failed to open database connection:", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		if err := db.Ping(); err != nil {
			log.Fatal("Cannot establish database connection:", err)
		}
		cfg.DB = db
		log.Println("Database connected successfully")
	default:
		log.Fatalf("Unknown DATA_SOURCE %q (want %s or %s)", cfg.DataSource, SourceCSV, SourcePostgres)
	}

	AppConfig = cfg
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
