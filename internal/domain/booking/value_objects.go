package booking

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPartySize  = errors.New("party size out of range")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrDateInPast        = errors.New("selected date is in the past")
)

const (
	MinPartySize = 1
	MaxPartySize = 20
)

// PartySize is the requested quantity: passengers for flights, participants
// for tours.
type PartySize struct {
	value int
}

func NewPartySize(n int) (PartySize, error) {
	if n < MinPartySize || n > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: n}, nil
}

func (p PartySize) Value() int {
	return p.value
}

// Money is an amount in integer cents. No fractional-currency handling.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// TotalPrice is the pricing calculator: unit price times quantity, exactly.
func TotalPrice(unitPrice Money, quantity PartySize) Money {
	return Money{cents: unitPrice.cents * int64(quantity.value)}
}

type ContactInfo struct {
	name  string
	email string
	phone string
}

func NewContactInfo(name, email, phone string) ContactInfo {
	return ContactInfo{
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
	}
}

func (c ContactInfo) Name() string  { return c.name }
func (c ContactInfo) Email() string { return c.email }
func (c ContactInfo) Phone() string { return c.phone }
func (c ContactInfo) IsEmpty() bool {
	return c.name == "" && c.email == "" && c.phone == ""
}
