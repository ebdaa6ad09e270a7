package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
)

func TestApplyOfferCodeUseCase_UnscopedPercentage(t *testing.T) {
	env := newCartEnv()
	f := env.seedMath(t)
	env.add(t, f.subject.ID(), cart.IndividualLine{ContentTypeID: f.notes.ID()})
	env.add(t, f.subject.ID(), cart.IndividualLine{ContentTypeID: f.video.ID()})
	env.createOffer(t, "NEWYEAR25", offer.DiscountTypePercentage, "25", nil)
	uc := NewApplyOfferCodeUseCase(env.cart, env.offers, env.log)

	// 70 + 150 = 220; 25% = 55
	got, err := uc.Execute(context.Background(), ApplyOfferCodeCommand{User: learner, Code: "newyear25"})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "220.00", got.Subtotal)
	assert.Equal(t, "55.00", got.Discount)
	assert.Equal(t, "165.00", got.Total)
	assert.Equal(t, 2, got.ApplicableItems)
	assert.Equal(t, "NEWYEAR25", got.Offer.Code)
}

func TestApplyOfferCodeUseCase_TwoHundredCart(t *testing.T) {
	env := newCartEnv()
	s := env.catalog.AddSubject(t, "History", "", false)
	video := env.catalog.AddContentType(t, "video")
	env.catalog.Offer(t, s, video, "200")
	env.add(t, s.ID(), cart.IndividualLine{ContentTypeID: video.ID()})
	env.createOffer(t, "NEWYEAR25", offer.DiscountTypePercentage, "25", nil)
	uc := NewApplyOfferCodeUseCase(env.cart, env.offers, env.log)

	got, err := uc.Execute(context.Background(), ApplyOfferCodeCommand{User: learner, Code: "NEWYEAR25"})

	require.NoError(t, err)
	assert.Equal(t, "50.00", got.Discount)
	assert.Equal(t, "150.00", got.Total)
}

func TestApplyOfferCodeUseCase_SubjectScoped(t *testing.T) {
	env := newCartEnv()
	video := env.catalog.AddContentType(t, "video")
	x := env.catalog.AddSubject(t, "X", "", false)
	y := env.catalog.AddSubject(t, "Y", "", false)
	env.catalog.Offer(t, x, video, "100")
	env.catalog.Offer(t, y, video, "50")
	env.add(t, x.ID(), cart.IndividualLine{ContentTypeID: video.ID()})
	env.add(t, y.ID(), cart.IndividualLine{ContentTypeID: video.ID()})
	subjectID := x.ID()
	env.createOffer(t, "XONLY", offer.DiscountTypePercentage, "10", func(tm *offer.Terms) { tm.SubjectID = &subjectID })
	uc := NewApplyOfferCodeUseCase(env.cart, env.offers, env.log)

	got, err := uc.Execute(context.Background(), ApplyOfferCodeCommand{User: learner, Code: "XONLY"})

	require.NoError(t, err)
	assert.Equal(t, "10.00", got.Discount)
	assert.Equal(t, 1, got.ApplicableItems)
}

func TestApplyOfferCodeUseCase_Rejections(t *testing.T) {
	now := time.Now().UTC()
	one := 1

	tests := []struct {
		name      string
		code      string
		setup     func(t *testing.T, env *cartEnv, f mathFixture)
		emptyCart bool
		errType   apperrors.ErrorType
		message   string
	}{
		{
			name:    "unknown code",
			code:    "NOPE",
			setup:   func(*testing.T, *cartEnv, mathFixture) {},
			errType: apperrors.ErrorTypeNotFound,
			message: msgInvalidOfferCode,
		},
		{
			name: "inactive",
			code: "OFF",
			setup: func(t *testing.T, env *cartEnv, f mathFixture) {
				env.createOffer(t, "OFF", offer.DiscountTypeFixed, "5", nil).SetActive(false)
			},
			errType: apperrors.ErrorTypeValidation,
			message: msgOfferInactive,
		},
		{
			name: "not yet valid",
			code: "SOON",
			setup: func(t *testing.T, env *cartEnv, f mathFixture) {
				env.createOffer(t, "SOON", offer.DiscountTypeFixed, "5", func(tm *offer.Terms) {
					tm.ValidFrom = now.Add(time.Hour)
					tm.ValidUntil = now.Add(2 * time.Hour)
				})
			},
			errType: apperrors.ErrorTypeValidation,
			message: msgOfferNotStarted,
		},
		{
			name: "expired",
			code: "OLD",
			setup: func(t *testing.T, env *cartEnv, f mathFixture) {
				env.createOffer(t, "OLD", offer.DiscountTypeFixed, "5", func(tm *offer.Terms) {
					tm.ValidFrom = now.Add(-2 * time.Hour)
					tm.ValidUntil = now.Add(-time.Hour)
				})
			},
			errType: apperrors.ErrorTypeValidation,
			message: msgOfferExpired,
		},
		{
			name: "usage exhausted",
			code: "ONCE",
			setup: func(t *testing.T, env *cartEnv, f mathFixture) {
				o := env.createOffer(t, "ONCE", offer.DiscountTypeFixed, "5", func(tm *offer.Terms) { tm.MaxUsage = &one })
				require.NoError(t, env.offers.IncrementUsage(context.Background(), o.ID()))
			},
			errType: apperrors.ErrorTypeValidation,
			message: msgOfferExhausted,
		},
		{
			name: "empty cart",
			code: "ANY",
			setup: func(t *testing.T, env *cartEnv, f mathFixture) {
				env.createOffer(t, "ANY", offer.DiscountTypeFixed, "5", nil)
			},
			emptyCart: true,
			errType:   apperrors.ErrorTypeValidation,
			message:   msgCartEmpty,
		},
		{
			name: "content type scope never matches a bundle",
			code: "VIDEOONLY",
			setup: func(t *testing.T, env *cartEnv, f mathFixture) {
				videoID := f.video.ID()
				env.createOffer(t, "VIDEOONLY", offer.DiscountTypePercentage, "50", func(tm *offer.Terms) { tm.ContentTypeID = &videoID })
			},
			errType: apperrors.ErrorTypeValidation,
			message: msgOfferNotApplicable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newCartEnv()
			f := env.seedMath(t)
			if !tc.emptyCart {
				env.add(t, f.subject.ID(), cart.BundleLine{})
			}
			tc.setup(t, env, f)
			uc := NewApplyOfferCodeUseCase(env.cart, env.offers, env.log)

			got, err := uc.Execute(context.Background(), ApplyOfferCodeCommand{User: learner, Code: tc.code})

			assert.Nil(t, got)
			assertAppError(t, err, tc.errType, tc.message)
		})
	}
}
