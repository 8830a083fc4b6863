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

type TourBookingHandler struct {
	cmds commands.TourBookingCommands
}

func NewTourBookingHandler(cmds commands.TourBookingCommands) *TourBookingHandler {
	return &TourBookingHandler{cmds: cmds}
}

// @Summary Book a tour package
// @Description Admit a tour booking for a package, date and party size
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTourBookingRequest true "Tour booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /bookings/tours [post]
func (h *TourBookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil,
			httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateTourBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeInvalidRequest, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.CreateTourBooking(c.Request.Context(), req, userID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}
