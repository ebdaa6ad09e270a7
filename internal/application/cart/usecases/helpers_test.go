package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/application/testutil"
	"github.com/lumen-edu/lumen/internal/domain/access"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/shared/authorization"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

var learner = common.UserContext{UserID: "user-1", Email: "learner@example.com", Role: authorization.RoleLearner}

type cartEnv struct {
	catalog   *testutil.MockCatalog
	cart      *testutil.MockCartRepository
	offers    *testutil.MockOfferRepository
	access    *testutil.MockAccessRepository
	purchases *testutil.MockPurchaseRepository
	tx        *testutil.TxRunner
	payments  *paymentDesk
	log       logger.Interface
}

func newCartEnv() *cartEnv {
	return &cartEnv{
		catalog:   testutil.NewMockCatalog(),
		cart:      testutil.NewMockCartRepository(),
		offers:    testutil.NewMockOfferRepository(),
		access:    testutil.NewMockAccessRepository(),
		purchases: testutil.NewMockPurchaseRepository(),
		tx:        &testutil.TxRunner{},
		payments:  &paymentDesk{},
		log:       logger.NewNop(),
	}
}

// mathFixture is a subject offering video 150, notes 70 and qa 80 with a 250 bundle.
type mathFixture struct {
	subject *catalog.Subject
	video   *catalog.ContentType
	notes   *catalog.ContentType
	qa      *catalog.ContentType
}

func (e *cartEnv) seedMath(t *testing.T) mathFixture {
	t.Helper()
	f := mathFixture{
		subject: e.catalog.AddSubject(t, "Mathematics", "250", true),
		video:   e.catalog.AddContentType(t, "video"),
		notes:   e.catalog.AddContentType(t, "notes"),
		qa:      e.catalog.AddContentType(t, "qa"),
	}
	e.catalog.Offer(t, f.subject, f.video, "150")
	e.catalog.Offer(t, f.subject, f.notes, "70")
	e.catalog.Offer(t, f.subject, f.qa, "80")
	return f
}

func (e *cartEnv) addToCartUC() *AddToCartUseCase {
	return NewAddToCartUseCase(e.cart, e.catalog.Subjects(), e.catalog.ContentTypes(), e.catalog.Pricing(),
		e.catalog.Contents(), e.access, e.log)
}

func (e *cartEnv) add(t *testing.T, subjectID string, line cart.Line) {
	t.Helper()
	_, err := e.addToCartUC().Execute(context.Background(), AddToCartCommand{User: learner, SubjectID: subjectID, Line: line})
	require.NoError(t, err)
}

func (e *cartEnv) own(t *testing.T, subjectID string, contentTypeIDs ...string) {
	t.Helper()
	var grants []*access.UserAccess
	for _, id := range contentTypeIDs {
		g, err := access.NewUserAccess(learner.UserID, subjectID, id, access.SourceAdmin, nil)
		require.NoError(t, err)
		grants = append(grants, g)
	}
	require.NoError(t, e.access.Grant(context.Background(), grants))
}

func (e *cartEnv) createOffer(t *testing.T, code string, dt offer.DiscountType, value string, mutate func(*offer.Terms)) *offer.Offer {
	t.Helper()
	now := time.Now().UTC()
	terms := offer.Terms{
		DiscountType: dt,
		Value:        decimal.RequireFromString(value),
		ValidFrom:    now.Add(-time.Hour),
		ValidUntil:   now.Add(time.Hour),
	}
	if mutate != nil {
		mutate(&terms)
	}
	o, err := offer.NewOffer(code, terms)
	require.NoError(t, err)
	require.NoError(t, e.offers.Create(context.Background(), o))
	return o
}

func (e *cartEnv) items(t *testing.T) []*cart.Item {
	t.Helper()
	items, err := e.cart.ListByUser(context.Background(), learner.UserID)
	require.NoError(t, err)
	return items
}

func assertAppError(t *testing.T, err error, errType apperrors.ErrorType, message string) {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	assert.Equal(t, errType, appErr.Type)
	assert.Equal(t, message, appErr.Message)
}

type recordingReceipts struct {
	sent []string
	err  error
}

func (r *recordingReceipts) SendPurchaseReceipt(ctx context.Context, to string, p *purchase.Purchase) error {
	r.sent = append(r.sent, to)
	return r.err
}

// paymentDesk stands in for the payment provider: it only accepts confirmations shaped like
// the ones confirmPayment hands out.
type paymentDesk struct {
	verified []PaymentConfirmation
}

func confirmPayment(reference, userID, total string) string {
	return fmt.Sprintf("paid:%s:%s:%s", reference, userID, total)
}

func (d *paymentDesk) VerifyPayment(ctx context.Context, c PaymentConfirmation) error {
	if c.Token != confirmPayment(c.Reference, c.UserID, c.Total.StringFixed(2)) {
		return errors.New("confirmation not issued for this payment")
	}
	d.verified = append(d.verified, c)
	return nil
}
