package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"query-gateway/configs"

	_ "github.com/SAP/go-hdb/driver"
	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

type Db struct {
	*sql.DB
	Dialect string
}

// driverNames maps a config dialect to the registered database/sql driver.
var driverNames = map[string]string{
	"mssql":    "sqlserver",
	"hana":     "hdb",
	"postgres": "postgres",
	"sqlite":   "sqlite3",
}

func NewConnection(cfg *configs.Config) (*Db, error) {
	driver, ok := driverNames[cfg.DbConfig.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported db dialect: %s", cfg.DbConfig.Driver)
	}

	connString, err := BuildConnString(cfg.DbConfig)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify the connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Db{DB: db, Dialect: cfg.DbConfig.Driver}, nil
}

func BuildConnString(cfg configs.DbConfig) (string, error) {
	switch cfg.Driver {
	case "mssql":
		return fmt.Sprintf("server=%s;user id=%s;password=%s;port=%d;database=%s",
			cfg.Server, cfg.User, cfg.Password, cfg.Port, cfg.Database), nil
	case "hana":
		u := &url.URL{
			Scheme: "hdb",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   fmt.Sprintf("%s:%d", cfg.Server, cfg.Port),
		}
		return u.String(), nil
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Server, cfg.Port, cfg.User, cfg.Password, cfg.Database), nil
	case "sqlite":
		if cfg.Database == "" {
			return "", fmt.Errorf("DATABASE is required for sqlite (database file path)")
		}
		return cfg.Database, nil
	default:
		return "", fmt.Errorf("unsupported db dialect: %s", cfg.Driver)
	}
}
