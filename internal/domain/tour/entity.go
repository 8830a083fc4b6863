package tour

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DefaultGroupSize applies when the configured group-size text does not parse
// to a positive integer.
const DefaultGroupSize = 20

// Package is a bookable tour. Capacity is not a standalone counter: it is the
// parsed group-size limit checked against the live sum of active bookings for
// one (package, selected date) pair.
type Package struct {
	id             uuid.UUID
	name           string
	destination    string
	unitPriceCents int64
	groupSizeText  string
	validUntil     *time.Time
}

func ReconstructPackage(
	id uuid.UUID,
	name, destination string,
	unitPriceCents int64,
	groupSizeText string,
	validUntil *time.Time,
) *Package {
	return &Package{
		id:             id,
		name:           name,
		destination:    destination,
		unitPriceCents: unitPriceCents,
		groupSizeText:  groupSizeText,
		validUntil:     validUntil,
	}
}

// GroupSize parses the configured group-size text ("12", "12 people",
// "max 12"). Unparseable or non-positive values fall back to
// DefaultGroupSize.
func (p *Package) GroupSize() int {
	return ParseGroupSize(p.groupSizeText)
}

func ParseGroupSize(s string) int {
	digits := strings.Builder{}
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
			continue
		}
		if digits.Len() > 0 {
			break
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil || n <= 0 {
		return DefaultGroupSize
	}
	return n
}

// IsExpired reports whether the package's validity window closed before
// today. Comparison is date-only. Packages without a validUntil never expire.
func (p *Package) IsExpired(now time.Time) bool {
	if p.validUntil == nil {
		return false
	}
	vy, vm, vd := p.validUntil.Date()
	ny, nm, nd := now.Date()
	if vy != ny {
		return vy < ny
	}
	if vm != nm {
		return vm < nm
	}
	return vd < nd
}

func (p *Package) ID() uuid.UUID          { return p.id }
func (p *Package) Name() string           { return p.name }
func (p *Package) Destination() string    { return p.destination }
func (p *Package) UnitPriceCents() int64  { return p.unitPriceCents }
func (p *Package) GroupSizeText() string  { return p.groupSizeText }
func (p *Package) ValidUntil() *time.Time { return p.validUntil }
