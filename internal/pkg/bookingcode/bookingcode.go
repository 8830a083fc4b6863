// Package bookingcode produces short human-typeable booking references.
//
// A code is a type prefix, a base36 UTC timestamp and a short random suffix,
// e.g. "TUR-LXK93M0-7QFA". Codes are practically unique, not provably unique;
// the bookings table carries a UNIQUE constraint and callers retry on the
// rare collision.
package bookingcode

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Excludes easily-confused characters (0/O, 1/I/L).
const suffixAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const suffixLen = 4

type Kind string

const (
	KindTour   Kind = "TUR"
	KindFlight Kind = "FLT"
)

type Generator interface {
	Generate(kind Kind) string
}

type generator struct {
	now func() time.Time
}

func NewGenerator() Generator {
	return &generator{now: time.Now}
}

// NewGeneratorAt pins the time source, for tests.
func NewGeneratorAt(now func() time.Time) Generator {
	return &generator{now: now}
}

func (g *generator) Generate(kind Kind) string {
	ts := strings.ToUpper(strconv.FormatInt(g.now().UTC().Unix(), 36))
	return fmt.Sprintf("%s-%s-%s", kind, ts, randomSuffix())
}

func randomSuffix() string {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure is effectively unreachable; fall back to a
		// nanosecond-derived suffix rather than failing the booking.
		ns := time.Now().UnixNano()
		for i := range buf {
			buf[i] = suffixAlphabet[int(ns>>uint(i*5))%len(suffixAlphabet)]
		}
		return string(buf)
	}
	for i := range buf {
		buf[i] = suffixAlphabet[int(buf[i])%len(suffixAlphabet)]
	}
	return string(buf)
}
