package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/EverGlassServices/rdv-tracker/internal/httperr"
	"github.com/EverGlassServices/rdv-tracker/internal/httpresp"
	ucRepair "github.com/EverGlassServices/rdv-tracker/internal/usecase/repair"
)

// PublicHandler serves the token-scoped read. No credential: holding
// the link is the authorization.
type PublicHandler struct {
	getStatusUC *ucRepair.GetStatus
}

func NewPublicHandler(getStatusUC *ucRepair.GetStatus) *PublicHandler {
	return &PublicHandler{getStatusUC: getStatusUC}
}

func (h *PublicHandler) Status(c *gin.Context) {
	tok := c.Param("token")

	d, err := h.getStatusUC.Execute(c.Request.Context(), tok)
	if err != nil {
		if httperr.IsBusiness(err, "repair_not_found") {
			httperr.NotFound(c, "repair_not_found", "RDV introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_load_repair", "Erreur au chargement du RDV.")
		return
	}

	httpresp.OK(c, d)
}
