package services

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	trackingIDPrefix      = "TRK"
	trackingIDTokenLength = 6
	trackingIDAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// TrackingIDGenerator produces identifiers of the form TRK-YYYYMMDD-XXXXXX
// where the date is the current UTC date. Identifiers are unique with high
// probability only; persistence enforces uniqueness.
type TrackingIDGenerator struct {
	now  func() time.Time
	intN func(n int) int
}

func NewTrackingIDGenerator() TrackingIDGenerator {
	return TrackingIDGenerator{now: time.Now, intN: rand.IntN}
}

// NewTrackingIDGeneratorWith pins the clock and the random source.
func NewTrackingIDGeneratorWith(now func() time.Time, intN func(n int) int) TrackingIDGenerator {
	return TrackingIDGenerator{now: now, intN: intN}
}

func (g TrackingIDGenerator) Generate() string {
	var token strings.Builder
	token.Grow(trackingIDTokenLength)
	for range trackingIDTokenLength {
		token.WriteByte(trackingIDAlphabet[g.intN(len(trackingIDAlphabet))])
	}

	return trackingIDPrefix + "-" + g.now().UTC().Format("20060102") + "-" + token.String()
}
