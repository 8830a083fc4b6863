package api

import (
	"net/http"

	reqdto "tripdesk/internal/handler/dto/request"
	resdto "tripdesk/internal/handler/dto/response"
	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/handler/middleware"
	"tripdesk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type FlightBookingHandler struct {
	cmds commands.FlightBookingCommands
}

func NewFlightBookingHandler(cmds commands.FlightBookingCommands) *FlightBookingHandler {
	return &FlightBookingHandler{cmds: cmds}
}

// @Summary Book a flight
// @Description Admit a flight booking, decrementing the seat counter
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlightBookingRequest true "Flight booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/flights [post]
func (h *FlightBookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil,
			httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateFlightBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeInvalidRequest, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.CreateFlightBooking(c.Request.Context(), req, userID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}
