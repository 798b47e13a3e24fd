package service

import (
	"fmt"
	"strconv"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
)

// ComparisonService computes relative statistics between two quotes. Pure:
// no persistence, no side effects.
type ComparisonService struct{}

func NewComparisonService() *ComparisonService {
	return &ComparisonService{}
}

// Compare frames the result from a's perspective: Compare(a, b) tells the
// viewer how a fares against b. Callers rendering a symmetric side-by-side
// view must request both directions.
func (s *ComparisonService) Compare(a, b *entity.Quote) (entity.ComparisonResult, error) {
	priceA, err := strconv.ParseFloat(a.Price, 64)
	if err != nil {
		return nil, ErrMalformedQuote
	}

	priceB, err := strconv.ParseFloat(b.Price, 64)
	if err != nil {
		return nil, ErrMalformedQuote
	}

	if a.WorkTime < 0 || b.WorkTime < 0 || priceA < 0 || priceB < 0 {
		return nil, ErrMalformedQuote
	}

	result := entity.ComparisonResult{
		entity.MetricPrice:    relativeJudgment(priceA, priceB, "cheaper", "more expensive", "same price"),
		entity.MetricDuration: relativeJudgment(float64(a.WorkTime), float64(b.WorkTime), "faster", "slower", "same duration"),
	}

	return result, nil
}

// relativeJudgment applies the percentage-of-other-base formula
// (other - this) / other: a positive sign means this side wins the metric.
func relativeJudgment(this, other float64, winWord, loseWord, equalWord string) string {
	if this == other {
		return equalWord
	}

	word := winWord
	if this > other {
		word = loseWord
	}

	if other == 0 {
		// no base to take a percentage of
		return word
	}

	diff := (other - this) / other * 100
	if diff < 0 {
		diff = -diff
	}

	return fmt.Sprintf("%.1f%% %s", diff, word)
}
