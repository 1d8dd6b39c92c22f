package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DbConfig DbConfig
	HttpPort int
}

// DbConfig holds database-related configuration.
type DbConfig struct {
	Driver   string
	Server   string
	Port     int
	User     string
	Password string
	Database string
}

var defaultPorts = map[string]int{
	"mssql":    1433,
	"hana":     30015,
	"postgres": 5432,
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using default config")
	}

	driver := os.Getenv("DRIVER")
	if driver == "" {
		driver = "mssql"
	}

	portStr := os.Getenv("PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = defaultPorts[driver]
		log.Printf("Invalid PORT value: %v. Using default port %d.", portStr, port)
	}

	httpPortStr := os.Getenv("HTTP_PORT")
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		log.Printf("Invalid HTTP_PORT value: %v. Using default port 2222.", httpPortStr)
		httpPort = 2222
	}

	return &Config{
		DbConfig: DbConfig{
			Driver:   driver,
			Server:   os.Getenv("SERVER"),
			Port:     port,
			User:     os.Getenv("USER"),
			Password: os.Getenv("PASSWORD"),
			Database: os.Getenv("DATABASE"),
		},
		HttpPort: httpPort,
	}
}
