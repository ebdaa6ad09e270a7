package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
)

// AddSubject stores an active subject. An empty bundlePrice leaves the bundle unpriced.
func (m *MockCatalog) AddSubject(t *testing.T, title, bundlePrice string, bundleEnabled bool) *catalog.Subject {
	t.Helper()
	s, err := catalog.NewSubject(title, title, "About "+title)
	require.NoError(t, err)
	if bundlePrice != "" {
		price := decimal.RequireFromString(bundlePrice)
		require.NoError(t, s.SetBundlePricing(&price, bundleEnabled))
	}
	require.NoError(t, m.Subjects().Create(context.Background(), s))
	return s
}

func (m *MockCatalog) AddContentType(t *testing.T, name string) *catalog.ContentType {
	t.Helper()
	ct, err := catalog.NewContentType(name, name, len(m.types))
	require.NoError(t, err)
	require.NoError(t, m.ContentTypes().Create(context.Background(), ct))
	return ct
}

// Offer makes ct available in s with price and an active content entry.
func (m *MockCatalog) Offer(t *testing.T, s *catalog.Subject, ct *catalog.ContentType, price string) {
	t.Helper()
	content, err := catalog.NewSubjectContent(s.ID(), ct.ID(), s.Title()+" "+ct.Name(), "", 0)
	require.NoError(t, err)
	require.NoError(t, m.Contents().Create(context.Background(), content))

	p, err := catalog.NewContentTypePricing(s.ID(), ct.ID(), decimal.RequireFromString(price))
	require.NoError(t, err)
	require.NoError(t, m.Pricing().Upsert(context.Background(), p))
}
