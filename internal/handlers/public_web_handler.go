package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/EverGlassServices/rdv-tracker/internal/domain/repair"
	ucRepair "github.com/EverGlassServices/rdv-tracker/internal/usecase/repair"
)

// PublicWebHandler renders the follow-up page behind the link sent to
// the customer. It is a thin skin over the same status projection; the
// page then polls /status/:token on its own.
type PublicWebHandler struct {
	getStatusUC *ucRepair.GetStatus
}

func NewPublicWebHandler(getStatusUC *ucRepair.GetStatus) *PublicWebHandler {
	return &PublicWebHandler{getStatusUC: getStatusUC}
}

func stageImage(status int) string {
	return fmt.Sprintf("/static/rdv/step%d.png", status)
}

func (h *PublicWebHandler) ShowStatusPage(c *gin.Context) {
	tok := c.Param("token")

	d, err := h.getStatusUC.Execute(c.Request.Context(), tok)
	if err != nil {
		// One answer for every failure: a dead link says nothing.
		c.String(http.StatusNotFound, "RDV introuvable ou clôturé.")
		return
	}

	c.HTML(http.StatusOK, "status.html", gin.H{
		"Token":      d.Token,
		"Plate":      d.Plate,
		"Status":     d.Status,
		"StageLabel": domain.Stage(d.Status).Label(),
		"StageImage": stageImage(d.Status),
		"UpdatedAt":  d.UpdatedAt.Format("2006-01-02 15:04:05"),
	})
}
