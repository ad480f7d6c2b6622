package api

import (
	"net/http"

	reqdto "order-offer-service/internal/handler/dto/request"
	resdto "order-offer-service/internal/handler/dto/response"
	"order-offer-service/internal/handler/httperr"
	"order-offer-service/internal/handler/middleware"
	"order-offer-service/internal/usecase/commands"
	"order-offer-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Start order
// @Description Promote a valid offer into an active order. Returns the active order if the user already has one.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.StartOrderRequest true "Start order request"
// @Success 200 {object} resdto.StartOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/v1/orders/start [put]
func (h *OrderHandler) Start(c *gin.Context) {
	var req reqdto.StartOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	middleware.SetUserID(c, req.UserID)

	o, err := h.cmds.StartOrder(c.Request.Context(), req.UserID, req.OfferID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStartedOrder(o))
}

// @Summary Get order
// @Description Describe an order with its total so far
// @Tags orders
// @Produce json
// @Param user_id query int true "User ID"
// @Param order_id query string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/orders/get [get]
func (h *OrderHandler) Get(c *gin.Context) {
	var req reqdto.GetOrderRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	orderID, err := req.ParseOrderID()
	if err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	middleware.SetUserID(c, req.UserID)

	view, err := h.q.DescribeOrder(c.Request.Context(), orderID, req.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Stop order
// @Description Finish an order, settle payment and archive it. Repeating the call returns the first result.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.StopOrderRequest true "Stop order request"
// @Success 200 {object} resdto.StopOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/v1/orders/stop [put]
func (h *OrderHandler) Stop(c *gin.Context) {
	var req reqdto.StopOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	middleware.SetUserID(c, req.UserID)

	result, err := h.cmds.StopOrder(c.Request.Context(), req.UserID, req.OrderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStopResult(result))
}
