//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"tripdesk/internal/domain/user"
	reqdto "tripdesk/internal/handler/dto/request"
	"tripdesk/internal/handler/dto/response"
	"tripdesk/tests/common/authtest"
	"tripdesk/tests/common/builder"
	"tripdesk/tests/common/dbtest"
	"tripdesk/tests/common/httptest"
	"tripdesk/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	tourBookingsURL   = "/api/bookings/tours"
	flightBookingsURL = "/api/bookings/flights"
	bookingsURL       = "/api/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

// =============================================================================
// TestCreateTourBooking - Tour admission API tests
// =============================================================================

func (s *BookingSuite) TestCreateTourBooking() {
	s.Run("Normal case: Tour booking admitted with server-side pricing", func() {
		t := s.T()

		validUntil := time.Now().AddDate(1, 0, 0)
		packageID := dbtest.CreateTestPackage(t, s.DB, "Douro Valley Escape", "20", 49900, &validUntil)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "traveler@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(3).
			WithSelectedDate(time.Now().AddDate(0, 1, 0)).
			BuildTourRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actualRes response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.NotEmpty(t, actualRes.Code, "Booking code should be generated")

		expected := &response.BookingResponse{
			Kind:            "tour",
			PackageID:       &packageID,
			Quantity:        int32(3),
			UnitPriceCents:  int64(49900),
			TotalPriceCents: int64(149700),
			Status:          "confirmed",
			ContactName:     reqBody.ContactName,
			ContactEmail:    reqBody.ContactEmail,
			ContactPhone:    reqBody.ContactPhone,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{},
				"ID", "Code", "UserID", "SelectedDate", "CreatedAt", "UpdatedAt"),
		}

		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Capacity conflict reports remaining spots", func() {
		t := s.T()

		validUntil := time.Now().AddDate(1, 0, 0)
		packageID := dbtest.CreateTestPackage(t, s.DB, "Small Group Tour", "20", 49900, &validUntil)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "group@example.com", string(user.RoleCustomer))

		selectedDate := time.Now().AddDate(0, 1, 0)

		// Fill 18 of 20 spots for the date
		firstReq := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(18).
			WithSelectedDate(selectedDate).
			BuildTourRequestDTO()
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, firstReq, token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// 3 more would exceed; the response names the 2 spots left
		secondReq := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(3).
			WithSelectedDate(selectedDate).
			BuildTourRequestDTO()
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, secondReq, token)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())

		var errRes errorResponse
		err := httptest.DecodeResponseBody(t, w2.Body, &errRes)
		require.NoError(t, err)
		require.Equal(t, "CapacityExceeded", errRes.Error.Code)
		require.Equal(t, float64(2), errRes.Detail["availableSpots"])

		// The same date still admits a party that fits
		thirdReq := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(2).
			WithSelectedDate(selectedDate).
			BuildTourRequestDTO()
		w3 := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, thirdReq, token)
		require.Equal(t, http.StatusCreated, w3.Code, w3.Body.String())
	})

	s.Run("Error case: Expired package returns 410 Gone", func() {
		t := s.T()

		expired := time.Now().AddDate(0, 0, -1)
		packageID := dbtest.CreateTestPackage(t, s.DB, "Last Season Tour", "20", 49900, &expired)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "late@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(2).
			BuildTourRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, reqBody, token)
		require.Equal(t, http.StatusGone, w.Code, w.Body.String())

		var errRes errorResponse
		err := httptest.DecodeResponseBody(t, w.Body, &errRes)
		require.NoError(t, err)
		require.Equal(t, "ResourceExpired", errRes.Error.Code)
	})

	s.Run("Error case: Unknown package returns 404", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lost@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBookingBuilder().
			WithPackageID(uuid.New()).
			WithParticipants(2).
			BuildTourRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: Party size outside 1..20 rejected", func() {
		t := s.T()

		validUntil := time.Now().AddDate(1, 0, 0)
		packageID := dbtest.CreateTestPackage(t, s.DB, "Limit Test Tour", "20", 49900, &validUntil)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "big@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(21).
			BuildTourRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		var errRes errorResponse
		err := httptest.DecodeResponseBody(t, w.Body, &errRes)
		require.NoError(t, err)
		require.Equal(t, "InvalidPartySize", errRes.Error.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().BuildTourRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestCreateFlightBooking - Flight admission API tests
// =============================================================================

func (s *BookingSuite) TestCreateFlightBooking() {
	s.Run("Normal case: Flight booking decrements seats and prices server-side", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD204", 74900, 5, 180)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "flyer@example.com", string(user.RoleCustomer))

		// Client-sent total is ignored; price is unit * passengers
		reqBody := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(2),
			TotalPrice: float64(1),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actualRes response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.Equal(t, "flight", actualRes.Kind)
		require.Equal(t, "confirmed", actualRes.Status)
		require.Equal(t, int64(149800), actualRes.TotalPriceCents)

		var remaining int32
		err = s.DB.QueryRow(context.Background(),
			"SELECT available_seats FROM flights WHERE id = $1", flightID).Scan(&remaining)
		require.NoError(t, err)
		require.Equal(t, int32(3), remaining, "Admission should decrement the live seat counter")
	})

	s.Run("Error case: Seat exhaustion reports remaining seats and leaves the counter intact", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD205", 74900, 5, 180)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "standby@example.com", string(user.RoleCustomer))

		reqBody := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(6),
			TotalPrice: float64(0),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var errRes errorResponse
		err := httptest.DecodeResponseBody(t, w.Body, &errRes)
		require.NoError(t, err)
		require.Equal(t, "InsufficientCapacity", errRes.Error.Code)
		require.Equal(t, float64(5), errRes.Detail["availableSeats"])

		var remaining int32
		err = s.DB.QueryRow(context.Background(),
			"SELECT available_seats FROM flights WHERE id = $1", flightID).Scan(&remaining)
		require.NoError(t, err)
		require.Equal(t, int32(5), remaining, "Failed admission should not consume seats")
	})

	s.Run("Concurrency case: Racing admissions never oversell the flight", func() {
		t := s.T()

		// Two seats left; a party of two races a party of one. Only one
		// request can win the conditional decrement.
		flightID := dbtest.CreateTestFlight(t, s.DB, "TD206", 74900, 2, 180)
		tokenA := authtest.CreateAndLogin(t, s.DB, s.Router, "racer-a@example.com", string(user.RoleCustomer))
		tokenB := authtest.CreateAndLogin(t, s.DB, s.Router, "racer-b@example.com", string(user.RoleCustomer))

		type attempt struct {
			passengers int
			token      string
			w          *nethttptest.ResponseRecorder
		}
		attempts := []*attempt{
			{passengers: 2, token: tokenA},
			{passengers: 1, token: tokenB},
		}

		var wg sync.WaitGroup
		for _, a := range attempts {
			wg.Add(1)
			go func(a *attempt) {
				defer wg.Done()
				reqBody := reqdto.CreateFlightBookingRequest{
					FlightID:   flightID.String(),
					Passengers: float64(a.passengers),
					TotalPrice: float64(0),
				}
				a.w = httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, reqBody, a.token)
			}(a)
		}
		wg.Wait()

		var admitted, rejected []*attempt
		for _, a := range attempts {
			switch a.w.Code {
			case http.StatusCreated:
				admitted = append(admitted, a)
			case http.StatusConflict:
				rejected = append(rejected, a)
			default:
				t.Fatalf("unexpected status %d: %s", a.w.Code, a.w.Body.String())
			}
		}
		require.Len(t, admitted, 1, "Exactly one racing admission should win")
		require.Len(t, rejected, 1, "The other should lose on capacity")

		var errRes errorResponse
		err := httptest.DecodeResponseBody(t, rejected[0].w.Body, &errRes)
		require.NoError(t, err)
		require.Equal(t, "InsufficientCapacity", errRes.Error.Code)
		require.Contains(t, errRes.Detail, "availableSeats")

		var remaining int32
		err = s.DB.QueryRow(context.Background(),
			"SELECT available_seats FROM flights WHERE id = $1", flightID).Scan(&remaining)
		require.NoError(t, err)
		require.Equal(t, int32(2-admitted[0].passengers), remaining,
			"Final counter must reflect only the winning admission")
		require.GreaterOrEqual(t, remaining, int32(0))
	})

	s.Run("Error case: Malformed payload itemizes every failing field", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "typo@example.com", string(user.RoleCustomer))

		reqBody := map[string]any{
			"flight_id":   "not-a-uuid",
			"passengers":  "two",
			"total_price": true,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		var errRes errorResponse
		err := httptest.DecodeResponseBody(t, w.Body, &errRes)
		require.NoError(t, err)
		require.Equal(t, "MissingOrInvalidFields", errRes.Error.Code)
		fields, ok := errRes.Detail["fields"].([]any)
		require.True(t, ok, "Detail should carry the failing fields")
		require.Len(t, fields, 3)
	})
}

// =============================================================================
// TestCancelBooking - Cancellation and compensation API tests
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: Cancelling a flight booking restores seats", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD301", 74900, 10, 180)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "changeofplans@example.com", string(user.RoleCustomer))

		createReq := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(4),
			TotalPrice: float64(0),
		}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL,
			reqdto.CancelBookingRequest{Reason: "schedule change"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cancelled response.BookingResponse
		err = httptest.DecodeResponseBody(t, w.Body, &cancelled)
		require.NoError(t, err)
		require.Equal(t, "cancelled", cancelled.Status)

		var remaining int32
		err = s.DB.QueryRow(context.Background(),
			"SELECT available_seats FROM flights WHERE id = $1", flightID).Scan(&remaining)
		require.NoError(t, err)
		require.Equal(t, int32(10), remaining, "Cancellation should give the seats back")
	})

	s.Run("Normal case: Cancelled tour seats free up for the same date", func() {
		t := s.T()

		validUntil := time.Now().AddDate(1, 0, 0)
		packageID := dbtest.CreateTestPackage(t, s.DB, "Full Tour", "20", 49900, &validUntil)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "swap@example.com", string(user.RoleCustomer))

		selectedDate := time.Now().AddDate(0, 1, 0)

		fillReq := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(20).
			WithSelectedDate(selectedDate).
			BuildTourRequestDTO()
		fw := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, fillReq, token)
		require.Equal(t, http.StatusCreated, fw.Code, fw.Body.String())

		var filled response.BookingResponse
		err := httptest.DecodeResponseBody(t, fw.Body, &filled)
		require.NoError(t, err)

		// Date is fully booked
		blockedReq := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(1).
			WithSelectedDate(selectedDate).
			BuildTourRequestDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, blockedReq, token)
		require.Equal(t, http.StatusConflict, bw.Code, bw.Body.String())

		// Cancel the full booking; capacity derives from live bookings
		cancelURL := bookingsURL + "/" + filled.ID.String() + "/cancel"
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		retryReq := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(20).
			WithSelectedDate(selectedDate).
			BuildTourRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, retryReq, token)
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())
	})

	s.Run("Error case: Double cancellation returns 409", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD302", 74900, 10, 180)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "twice@example.com", string(user.RoleCustomer))

		createReq := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(2),
			TotalPrice: float64(0),
		}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())

		var errRes errorResponse
		err = httptest.DecodeResponseBody(t, w2.Body, &errRes)
		require.NoError(t, err)
		require.Equal(t, "AlreadyCancelled", errRes.Error.Code)

		// Seats restored exactly once
		var remaining int32
		err = s.DB.QueryRow(context.Background(),
			"SELECT available_seats FROM flights WHERE id = $1", flightID).Scan(&remaining)
		require.NoError(t, err)
		require.Equal(t, int32(10), remaining)
	})

	s.Run("Error case: Another customer's booking is hidden as 404", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD303", 74900, 10, 180)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleCustomer))

		createReq := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(2),
			TotalPrice: float64(0),
		}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, createReq, ownerToken)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleCustomer))
		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, strangerToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Normal case: Agent can cancel any customer's booking", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD304", 74900, 10, 180)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "traveler2@example.com", string(user.RoleCustomer))

		createReq := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(3),
			TotalPrice: float64(0),
		}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, createReq, ownerToken)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		agentToken := authtest.CreateAndLogin(t, s.DB, s.Router, "agent@example.com", string(user.RoleAgent))
		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestBookingLookup - Booking retrieval API tests
// =============================================================================

func (s *BookingSuite) TestBookingLookup() {
	s.Run("Normal case: Booking retrieved by ID and by code", func() {
		t := s.T()

		validUntil := time.Now().AddDate(1, 0, 0)
		packageID := dbtest.CreateTestPackage(t, s.DB, "Lookup Tour", "20", 49900, &validUntil)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lookup@example.com", string(user.RoleCustomer))

		createReq := builder.NewBookingBuilder().
			WithPackageID(packageID).
			WithParticipants(2).
			WithSelectedDate(time.Now().AddDate(0, 1, 0)).
			BuildTourRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, tourBookingsURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		byID := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, byID.Code, byID.Body.String())

		byCode := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/code/"+created.Code, nil, token)
		require.Equal(t, http.StatusOK, byCode.Code, byCode.Body.String())

		var fromID, fromCode response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, byID.Body, &fromID))
		require.NoError(t, httptest.DecodeResponseBody(t, byCode.Body, &fromCode))
		if diff := cmp.Diff(&fromID, &fromCode); diff != "" {
			t.Errorf("ID and code lookups should agree (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: Listing returns only the caller's bookings", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD401", 74900, 50, 180)
		mineToken := authtest.CreateAndLogin(t, s.DB, s.Router, "mine@example.com", string(user.RoleCustomer))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))

		for _, token := range []string{mineToken, mineToken, otherToken} {
			createReq := reqdto.CreateFlightBookingRequest{
				FlightID:   flightID.String(),
				Passengers: float64(1),
				TotalPrice: float64(0),
			}
			cw := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, createReq, token)
			require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, mineToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes struct {
			Bookings []*response.BookingListResponse `json:"bookings"`
		}
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.Len(t, actualRes.Bookings, 2, "Listing should be scoped to the caller")
	})
}

// =============================================================================
// TestUpdateBookingStatus - Admin status transition API tests
// =============================================================================

func (s *BookingSuite) TestUpdateBookingStatus() {
	s.Run("Normal case: Admin completes a confirmed booking", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD501", 74900, 10, 180)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "done@example.com", string(user.RoleCustomer))

		createReq := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(1),
			TotalPrice: float64(0),
		}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, createReq, customerToken)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		statusURL := bookingsURL + "/" + created.ID.String() + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			reqdto.UpdateBookingStatusRequest{Status: "completed"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.BookingResponse
		err = httptest.DecodeResponseBody(t, w.Body, &updated)
		require.NoError(t, err)
		require.Equal(t, "completed", updated.Status)
	})

	s.Run("Error case: Invalid transition returns 400", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD502", 74900, 10, 180)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stuck@example.com", string(user.RoleCustomer))

		createReq := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(1),
			TotalPrice: float64(0),
		}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, createReq, customerToken)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))
		statusURL := bookingsURL + "/" + created.ID.String() + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			reqdto.UpdateBookingStatusRequest{Status: "shipped"}, adminToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		var errRes errorResponse
		err = httptest.DecodeResponseBody(t, w.Body, &errRes)
		require.NoError(t, err)
		require.Equal(t, "InvalidStatusTransition", errRes.Error.Code)
	})

	s.Run("Auth test - Customer role is rejected with 403", func() {
		t := s.T()

		flightID := dbtest.CreateTestFlight(t, s.DB, "TD503", 74900, 10, 180)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "eager@example.com", string(user.RoleCustomer))

		createReq := reqdto.CreateFlightBookingRequest{
			FlightID:   flightID.String(),
			Passengers: float64(1),
			TotalPrice: float64(0),
		}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, flightBookingsURL, createReq, customerToken)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		statusURL := bookingsURL + "/" + created.ID.String() + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			reqdto.UpdateBookingStatusRequest{Status: "completed"}, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
