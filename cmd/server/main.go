package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sarathoff/polaroid-booth/internal/api"
	"github.com/sarathoff/polaroid-booth/internal/booth"
	"github.com/sarathoff/polaroid-booth/internal/fonts"
	"github.com/sarathoff/polaroid-booth/internal/prompts"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	catalog := booth.NewCatalog(os.Getenv("ASSET_BASE_URL"))
	registry := fonts.NewRegistry()
	compositor := booth.NewCompositor(booth.NewLoader(catalog), catalog, registry)

	var promptClient *prompts.Client
	if url := os.Getenv("PROMPTS_URL"); url != "" {
		promptClient = prompts.New(url, os.Getenv("PROMPTS_API_KEY"))
	} else {
		log.Println("Warning: PROMPTS_URL not set, /api/prompts disabled")
	}

	srv := &api.Server{
		Compositor: compositor,
		Catalog:    catalog,
		Fonts:      registry,
		Prompts:    promptClient,
	}

	r := gin.Default()
	srv.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
