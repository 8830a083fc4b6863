//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tripdesk/internal/domain/user"
	"tripdesk/internal/handler/api"
	resdto "tripdesk/internal/handler/dto/response"
	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/usecase/commands"
	"tripdesk/tests/common/builder"
	"tripdesk/tests/common/httptest"
	"tripdesk/tests/common/testutil"
	commandsmock "tripdesk/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TourBookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTourBookingCommands
	userID       uuid.UUID
}

func (s *TourBookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTourBookingCommands(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewTourBookingHandler(s.mockCommands)

	s.router.POST("/bookings/tours", func(c *gin.Context) {
		// Mock auth middleware
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		handler.Create(c)
	})
}

func (s *TourBookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTourBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(TourBookingHandlerTestSuite))
}

func (s *TourBookingHandlerTestSuite) TestCreate() {
	url := "/bookings/tours"
	b := builder.NewBookingBuilder().WithUserID(s.userID)
	reqBody := b.BuildTourRequestDTO()

	s.Run("success: returns 201 with the admitted booking", func() {
		expected := b.BuildTourView()
		s.mockCommands.EXPECT().CreateTourBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expected.Code, response.Code)
		s.Equal(expected.TotalPriceCents, response.TotalPriceCents)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 with InvalidPartySize code", func() {
		s.mockCommands.EXPECT().CreateTourBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrInvalidPartySize).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidPartySize)
	})

	s.Run("error: 400 with DateInPast code", func() {
		s.mockCommands.EXPECT().CreateTourBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrDateInPast).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeDateInPast)
	})

	s.Run("error: 404 for an unknown package", func() {
		s.mockCommands.EXPECT().CreateTourBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeResourceNotFound)
	})

	s.Run("error: 410 for an expired package", func() {
		s.mockCommands.EXPECT().CreateTourBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrPackageExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, httperr.CodeResourceExpired)
	})

	s.Run("error: 409 with the remaining spot count", func() {
		s.mockCommands.EXPECT().CreateTourBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, &commands.CapacityExceededError{AvailableSpots: 2}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeCapacityExceeded)

		var body struct {
			Detail struct {
				AvailableSpots int `json:"availableSpots"`
			} `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal(2, body.Detail.AvailableSpots)
	})

	s.Run("error: 400 on malformed request body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("participants", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})
}
