package main

import (
	"fmt"
	"log"
	"net/http"

	"query-gateway/configs"
	"query-gateway/internal/query"
	"query-gateway/pkg/db"
)

func App(conf *configs.Config) http.Handler {
	conn, err := db.NewConnection(conf)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	router := http.NewServeMux()

	// repositories
	queryRepository := query.NewRepository(conn)

	// services
	queryService := query.NewService(queryRepository)

	// controllers
	query.NewController(router, query.ControllerDeps{
		Service: queryService,
	})

	return router
}

func main() {
	conf := configs.LoadConfig()
	app := App(conf)
	server := http.Server{
		Addr:    fmt.Sprintf(":%d", conf.HttpPort),
		Handler: app,
	}
	fmt.Printf("Server is listening on port %d\n", conf.HttpPort)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
