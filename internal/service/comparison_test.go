package service

import (
	"errors"
	"testing"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
)

func quoteWith(price string, workTime int) *entity.Quote {
	return &entity.Quote{Price: price, WorkTime: workTime}
}

func TestCompare(t *testing.T) {
	s := NewComparisonService()

	t.Run("mirror percentages use the other quote as base", func(t *testing.T) {
		a := quoteWith("80", 10)
		b := quoteWith("100", 10)

		aStats, err := s.Compare(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// (100 - 80) / 100 = 20%
		if aStats[entity.MetricPrice] != "20.0% cheaper" {
			t.Fatalf("expected '20.0%% cheaper', got %q", aStats[entity.MetricPrice])
		}

		bStats, err := s.Compare(b, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// (80 - 100) / 80 = -25%
		if bStats[entity.MetricPrice] != "25.0% more expensive" {
			t.Fatalf("expected '25.0%% more expensive', got %q", bStats[entity.MetricPrice])
		}
	})

	t.Run("equal prices report same price", func(t *testing.T) {
		stats, err := s.Compare(quoteWith("150.00", 5), quoteWith("150.00", 5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats[entity.MetricPrice] != "same price" {
			t.Fatalf("expected 'same price', got %q", stats[entity.MetricPrice])
		}
		if stats[entity.MetricDuration] != "same duration" {
			t.Fatalf("expected 'same duration', got %q", stats[entity.MetricDuration])
		}
	})

	t.Run("duration percentage", func(t *testing.T) {
		a := quoteWith("100", 2)
		b := quoteWith("100", 4)

		aStats, err := s.Compare(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// (4 - 2) / 4 = 50%
		if aStats[entity.MetricDuration] != "50.0% faster" {
			t.Fatalf("expected '50.0%% faster', got %q", aStats[entity.MetricDuration])
		}

		bStats, err := s.Compare(b, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// (2 - 4) / 2 = -100%
		if bStats[entity.MetricDuration] != "100.0% slower" {
			t.Fatalf("expected '100.0%% slower', got %q", bStats[entity.MetricDuration])
		}
	})

	t.Run("non-numeric price fails with malformed quote", func(t *testing.T) {
		_, err := s.Compare(quoteWith("free", 1), quoteWith("100", 1))
		if !errors.Is(err, ErrMalformedQuote) {
			t.Fatalf("expected ErrMalformedQuote, got %v", err)
		}

		_, err = s.Compare(quoteWith("100", 1), quoteWith("??", 1))
		if !errors.Is(err, ErrMalformedQuote) {
			t.Fatalf("expected ErrMalformedQuote, got %v", err)
		}
	})

	t.Run("zero base reports the judgment without a percentage", func(t *testing.T) {
		stats, err := s.Compare(quoteWith("50", 3), quoteWith("0", 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats[entity.MetricPrice] != "more expensive" {
			t.Fatalf("expected 'more expensive', got %q", stats[entity.MetricPrice])
		}
	})
}
