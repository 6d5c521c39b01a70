package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EverGlassServices/rdv-tracker/internal/cache"
	"github.com/EverGlassServices/rdv-tracker/internal/config"
	dbpkg "github.com/EverGlassServices/rdv-tracker/internal/db"
	"github.com/EverGlassServices/rdv-tracker/internal/middleware"
	"github.com/EverGlassServices/rdv-tracker/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	statusCache := cache.New(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, statusCache, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
