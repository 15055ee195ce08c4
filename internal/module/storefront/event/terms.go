package event

import (
	"regexp"
	"strconv"
)

const (
	defaultRate     = 190
	defaultMaxSpots = 10
)

// Coaching terms live as free text in the calendar event description, e.g.
// "rate=$250 spots: 8". The patterns are kept exactly as the website has
// always published them; loosening them would silently change which events
// pick up defaults.
var (
	ratePattern         = regexp.MustCompile(`rate\s*[=:]\s*\$?(\d+)`)
	rateFallbackPattern = regexp.MustCompile(`\$(\d+)`)
	spotsPattern        = regexp.MustCompile(`spots\s*[=:]\s*(\d+)`)
)

type Terms struct {
	Rate     float64
	MaxSpots int
}

func parseTerms(description string) Terms {
	terms := Terms{
		Rate:     defaultRate,
		MaxSpots: defaultMaxSpots,
	}

	if m := ratePattern.FindStringSubmatch(description); m != nil {
		if rate, err := strconv.ParseFloat(m[1], 64); err == nil {
			terms.Rate = rate
		}
	} else if m := rateFallbackPattern.FindStringSubmatch(description); m != nil {
		if rate, err := strconv.ParseFloat(m[1], 64); err == nil {
			terms.Rate = rate
		}
	}

	if m := spotsPattern.FindStringSubmatch(description); m != nil {
		if spots, err := strconv.Atoi(m[1]); err == nil {
			terms.MaxSpots = spots
		}
	}

	return terms
}
