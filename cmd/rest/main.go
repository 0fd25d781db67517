package main

import (
	"context"
	"log"

	"notedesk/internal/bootstrap"
	"notedesk/internal/config"
	"notedesk/internal/server"
	"notedesk/internal/tracer"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	container := bootstrap.NewContainer(cfg)

	go func() {
		log.Println("Background: Starting Render Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
