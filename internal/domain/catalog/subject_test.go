package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidSubject(t *testing.T) *Subject {
	t.Helper()
	s, err := NewSubject("Biology", "biology", "Cells and *genes*")
	require.NoError(t, err)
	return s
}

func TestNewSubject_ValidInput(t *testing.T) {
	s, err := NewSubject("  Chemistry ", "Chemistry", "desc")

	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "Chemistry", s.Title())
	assert.Equal(t, "chemistry", s.Slug())
	assert.True(t, s.IsActive())
	assert.False(t, s.BundleEnabled())
	assert.False(t, s.OffersBundle())
	_, ok := s.BundlePrice()
	assert.False(t, ok)
}

func TestNewSubject_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		title string
		slug  string
		want  string
	}{
		{"empty title", " ", "slug", "subject title is required"},
		{"empty slug", "Title", "", "subject slug is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSubject(tc.title, tc.slug, "")
			require.Error(t, err)
			assert.Nil(t, s)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSubject_SetBundlePricing(t *testing.T) {
	s := newValidSubject(t)
	price := decimal.RequireFromString("250")

	require.NoError(t, s.SetBundlePricing(&price, true))
	got, ok := s.BundlePrice()
	assert.True(t, ok)
	assert.True(t, got.Equal(price))
	assert.True(t, s.OffersBundle())

	require.NoError(t, s.SetBundlePricing(&price, false))
	assert.False(t, s.OffersBundle())

	require.NoError(t, s.SetBundlePricing(nil, false))
	_, ok = s.BundlePrice()
	assert.False(t, ok)
}

func TestSubject_SetBundlePricing_Invalid(t *testing.T) {
	s := newValidSubject(t)

	assert.Error(t, s.SetBundlePricing(nil, true))

	zero := decimal.Zero
	assert.ErrorIs(t, s.SetBundlePricing(&zero, false), ErrInvalidPrice)
}

func TestSubject_ActivateDeactivate(t *testing.T) {
	s := newValidSubject(t)
	s.Deactivate()
	assert.False(t, s.IsActive())
	s.Activate()
	assert.True(t, s.IsActive())
}

func TestNewContentTypePricing(t *testing.T) {
	p, err := NewContentTypePricing("s1", "ct1", decimal.RequireFromString("149.999"))
	require.NoError(t, err)
	assert.Equal(t, "150", p.Price().String())

	_, err = NewContentTypePricing("s1", "ct1", decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
