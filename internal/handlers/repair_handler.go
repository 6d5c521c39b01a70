package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/EverGlassServices/rdv-tracker/internal/dto"
	"github.com/EverGlassServices/rdv-tracker/internal/httperr"
	"github.com/EverGlassServices/rdv-tracker/internal/httpresp"
	ucRepair "github.com/EverGlassServices/rdv-tracker/internal/usecase/repair"
)

// ======================================================
// HANDLER (technician surface, behind the API-key gate)
// ======================================================

type RepairHandler struct {
	createUC *ucRepair.CreateRepair
	updateUC *ucRepair.UpdateStage
	closeUC  *ucRepair.CloseRepair
	listUC   *ucRepair.ListOpen
}

func NewRepairHandler(
	createUC *ucRepair.CreateRepair,
	updateUC *ucRepair.UpdateStage,
	closeUC *ucRepair.CloseRepair,
	listUC *ucRepair.ListOpen,
) *RepairHandler {
	return &RepairHandler{
		createUC: createUC,
		updateUC: updateUC,
		closeUC:  closeUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRepairRequest struct {
	Plate string `json:"plate" binding:"required"`
}

type UpdateRepairRequest struct {
	Token string `json:"token" binding:"required"`
	// Pointer so that stage 0 survives the required check.
	Status *int `json:"status" binding:"required"`
}

type CloseRepairRequest struct {
	Token string `json:"token" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *RepairHandler) Create(c *gin.Context) {
	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	rec, err := h.createUC.Execute(c.Request.Context(), req.Plate)
	if err != nil {
		if httperr.IsBusiness(err, "token_collision") {
			httperr.Internal(c, "token_collision", "Collision de token, réessayez.")
			return
		}
		httperr.Internal(c, "failed_to_create_repair", "Erreur à la création du RDV.")
		return
	}

	c.JSON(201, dto.RepairStatusDTO{
		Token:     rec.Token,
		Plate:     rec.Plate,
		Status:    rec.Status,
		UpdatedAt: rec.UpdatedAt,
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *RepairHandler) Update(c *gin.Context) {
	var req UpdateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	rec, err := h.updateUC.Execute(c.Request.Context(), req.Token, *req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Le statut doit être entre 0 et 3.")
		case httperr.IsBusiness(err, "repair_not_found"):
			httperr.NotFound(c, "repair_not_found", "RDV introuvable.")
		case httperr.IsBusiness(err, "repair_closed"):
			httperr.Conflict(c, "repair_closed", "RDV clôturé, modification impossible.")
		default:
			httperr.Internal(c, "failed_to_update_repair", "Erreur à la mise à jour du RDV.")
		}
		return
	}

	c.JSON(200, gin.H{
		"token":      rec.Token,
		"status":     rec.Status,
		"updated_at": rec.UpdatedAt,
	})
}

// ======================================================
// CLOSE
// ======================================================

func (h *RepairHandler) Close(c *gin.Context) {
	var req CloseRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	rec, err := h.closeUC.Execute(c.Request.Context(), req.Token)
	if err != nil {
		if httperr.IsBusiness(err, "repair_not_found") {
			httperr.NotFound(c, "repair_not_found", "RDV introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_close_repair", "Erreur à la clôture du RDV.")
		return
	}

	c.JSON(200, gin.H{
		"token":      rec.Token,
		"updated_at": rec.UpdatedAt,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *RepairHandler) List(c *gin.Context) {
	items, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_repairs", "Erreur au chargement des RDV.")
		return
	}

	httpresp.List(c, items)
}
