package api

import (
	"net/http"

	reqdto "order-offer-service/internal/handler/dto/request"
	resdto "order-offer-service/internal/handler/dto/response"
	"order-offer-service/internal/handler/httperr"
	"order-offer-service/internal/handler/middleware"
	"order-offer-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	cmds commands.OfferCommands
}

func NewOfferHandler(cmds commands.OfferCommands) *OfferHandler {
	return &OfferHandler{cmds: cmds}
}

// @Summary Create offer
// @Description Quote a vehicle for a user. The offer is valid until expires_at.
// @Tags offers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOfferRequest true "Create offer request"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/v1/offers/create [put]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	middleware.SetUserID(c, req.UserID)

	o, err := h.cmds.CreateOffer(c.Request.Context(), req.UserID, req.VehicleID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o))
}
