package seed

import (
	"context"
	"testing"

	"storefront/internal/domain"
)

type stubWriter struct {
	count    int64
	inserted []domain.Product
}

func (s *stubWriter) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

func (s *stubWriter) Insert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.inserted = append(s.inserted, p)
	return &p, nil
}

func TestApplySeedsEmptyCatalog(t *testing.T) {
	w := &stubWriter{count: 0}
	n, err := Apply(context.Background(), w)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != len(SampleProducts) {
		t.Fatalf("expected %d products seeded, got %d", len(SampleProducts), n)
	}
	if w.inserted[0].Name != "Cozy Hoodie" || w.inserted[0].PriceCents != 4999 {
		t.Fatalf("unexpected first sample %+v", w.inserted[0])
	}
}

func TestApplySkipsNonEmptyCatalog(t *testing.T) {
	w := &stubWriter{count: 3}
	n, err := Apply(context.Background(), w)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 0 || len(w.inserted) != 0 {
		t.Fatalf("expected no-op on non-empty catalog, inserted %d", len(w.inserted))
	}
}
