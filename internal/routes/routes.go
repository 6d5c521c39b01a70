package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EverGlassServices/rdv-tracker/internal/cache"
	"github.com/EverGlassServices/rdv-tracker/internal/config"
	"github.com/EverGlassServices/rdv-tracker/internal/handlers"
	infraRepo "github.com/EverGlassServices/rdv-tracker/internal/infra/repository"
	"github.com/EverGlassServices/rdv-tracker/internal/middleware"
	ucRepair "github.com/EverGlassServices/rdv-tracker/internal/usecase/repair"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, statusCache *cache.StatusCache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repairRepo := infraRepo.NewRepairGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createRepairUC := ucRepair.NewCreateRepair(repairRepo)
	updateStageUC := ucRepair.NewUpdateStage(repairRepo, statusCache)
	closeRepairUC := ucRepair.NewCloseRepair(repairRepo, statusCache)
	getStatusUC := ucRepair.NewGetStatus(repairRepo, statusCache)
	listOpenUC := ucRepair.NewListOpen(repairRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	repairHandler := handlers.NewRepairHandler(
		createRepairUC,
		updateStageUC,
		closeRepairUC,
		listOpenUC,
	)

	publicHandler := handlers.NewPublicHandler(getStatusUC)
	publicWebHandler := handlers.NewPublicWebHandler(getStatusUC)

	// ======================================================
	// PUBLIC (token only, never the API-key gate)
	// ======================================================
	r.GET("/status/:token", publicHandler.Status)
	r.GET("/t/:token", publicWebHandler.ShowStatusPage)

	// ======================================================
	// TECHNICIAN (X-API-Key)
	// ======================================================
	tech := r.Group("/")
	tech.Use(middleware.APIKeyMiddleware(cfg))
	{
		tech.POST("/create", repairHandler.Create)
		tech.POST("/update", repairHandler.Update)
		tech.POST("/close", repairHandler.Close)
		tech.GET("/list", repairHandler.List)
	}
}
