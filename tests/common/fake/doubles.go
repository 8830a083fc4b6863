//go:build unit

package fake

import (
	"context"

	"tripdesk/internal/domain/booking"
	"tripdesk/internal/infra"
	"tripdesk/internal/infra/events"
	"tripdesk/internal/pkg/bookingcode"
	"tripdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingViews serves read models straight from the fake write state.
type BookingViews struct {
	State *State
	Err   error
}

func (v *BookingViews) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	b, ok := v.State.BookingsByID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return viewOf(b), nil
}

func (v *BookingViews) FindByCode(_ context.Context, code string) (*queries.BookingView, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	for _, b := range v.State.BookingsByID {
		if b.Code() == code {
			return viewOf(b), nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (v *BookingViews) FindByUserID(_ context.Context, userID uuid.UUID, _ int32) ([]*queries.BookingListItem, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	var items []*queries.BookingListItem
	for _, b := range v.State.BookingsByID {
		if b.UserID() != userID {
			continue
		}
		items = append(items, &queries.BookingListItem{
			ID:              b.ID(),
			Code:            b.Code(),
			Kind:            string(b.Kind()),
			SelectedDate:    b.SelectedDate(),
			Quantity:        int32(b.Quantity().Value()),
			TotalPriceCents: b.TotalPrice().Cents(),
			Status:          b.Status().String(),
			CreatedAt:       b.CreatedAt(),
		})
	}
	return items, nil
}

func viewOf(b *booking.Booking) *queries.BookingView {
	view := &queries.BookingView{
		ID:              b.ID(),
		Code:            b.Code(),
		Kind:            string(b.Kind()),
		UserID:          b.UserID(),
		SelectedDate:    b.SelectedDate(),
		Quantity:        int32(b.Quantity().Value()),
		UnitPriceCents:  b.UnitPrice().Cents(),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status().String(),
		ContactName:     b.Contact().Name(),
		ContactEmail:    b.Contact().Email(),
		ContactPhone:    b.Contact().Phone(),
		SpecialRequests: b.SpecialRequests(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	resourceID := b.ResourceID()
	switch b.Kind() {
	case booking.KindTour:
		view.PackageID = &resourceID
	case booking.KindFlight:
		view.FlightID = &resourceID
	}
	return view
}

// Publisher records emitted events instead of writing to a broker.
type Publisher struct {
	Events []events.BookingEvent
}

func (p *Publisher) PublishBookingEvent(_ context.Context, event events.BookingEvent) {
	p.Events = append(p.Events, event)
}

// Cache counts invalidations and serves a canned flight list.
type Cache struct {
	Flights       []*queries.FlightView
	Hit           bool
	SetCalls      int
	Invalidations int
}

func (c *Cache) Get(_ context.Context) ([]*queries.FlightView, bool) {
	return c.Flights, c.Hit
}

func (c *Cache) Set(_ context.Context, flights []*queries.FlightView) {
	c.Flights = flights
	c.SetCalls++
}

func (c *Cache) Invalidate(_ context.Context) {
	c.Invalidations++
}

// CodeGen hands out a fixed sequence of codes, repeating the last one when
// the sequence runs out.
type CodeGen struct {
	Codes []string
	Calls int
}

func (g *CodeGen) Generate(_ bookingcode.Kind) string {
	idx := g.Calls
	if idx >= len(g.Codes) {
		idx = len(g.Codes) - 1
	}
	g.Calls++
	return g.Codes[idx]
}
