package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdto "github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/application/cart/usecases"
	appcommon "github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers/testutil"
	"github.com/lumen-edu/lumen/internal/shared/authorization"
	"github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

const (
	testUserID    = "user-42"
	testSubjectID = "6f1c2d7e-4b1a-4c55-9d0e-2a9b8c7d6e5f"
	testTypeID    = "0b7e3f2a-9c4d-4e1f-8a6b-5c3d2e1f0a9b"
	testItemID    = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockAddToCartUC struct {
	cmd    usecases.AddToCartCommand
	result *cartdto.CartItemDTO
	err    error
}

func (m *mockAddToCartUC) Execute(ctx context.Context, cmd usecases.AddToCartCommand) (*cartdto.CartItemDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockRemoveFromCartUC struct {
	cmd usecases.RemoveFromCartCommand
	err error
}

func (m *mockRemoveFromCartUC) Execute(ctx context.Context, cmd usecases.RemoveFromCartCommand) error {
	m.cmd = cmd
	return m.err
}

type mockRemoveByItemUC struct {
	cmd usecases.RemoveFromCartByItemCommand
	err error
}

func (m *mockRemoveByItemUC) Execute(ctx context.Context, cmd usecases.RemoveFromCartByItemCommand) error {
	m.cmd = cmd
	return m.err
}

type mockClearCartUC struct {
	called bool
	err    error
}

func (m *mockClearCartUC) Execute(ctx context.Context, user appcommon.UserContext) error {
	m.called = true
	return m.err
}

type mockGetCartUC struct {
	user   appcommon.UserContext
	result *cartdto.CartDTO
	err    error
}

func (m *mockGetCartUC) Execute(ctx context.Context, user appcommon.UserContext) (*cartdto.CartDTO, error) {
	m.user = user
	return m.result, m.err
}

type mockBundleOppsUC struct {
	result []*cartdto.BundleOpportunityDTO
	err    error
}

func (m *mockBundleOppsUC) Execute(ctx context.Context, user appcommon.UserContext) ([]*cartdto.BundleOpportunityDTO, error) {
	return m.result, m.err
}

type mockSwapWithBundleUC struct {
	result *usecases.SwapWithBundleResult
	err    error
}

func (m *mockSwapWithBundleUC) Execute(ctx context.Context, cmd usecases.SwapWithBundleCommand) (*usecases.SwapWithBundleResult, error) {
	return m.result, m.err
}

type mockApplyOfferCodeUC struct {
	result *cartdto.OfferApplicationDTO
	err    error
}

func (m *mockApplyOfferCodeUC) Execute(ctx context.Context, cmd usecases.ApplyOfferCodeCommand) (*cartdto.OfferApplicationDTO, error) {
	return m.result, m.err
}

type mockCheckoutUC struct {
	cmd    usecases.CheckoutCommand
	result *cartdto.PurchaseDTO
	err    error
}

func (m *mockCheckoutUC) Execute(ctx context.Context, cmd usecases.CheckoutCommand) (*cartdto.PurchaseDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

type cartMocks struct {
	add      *mockAddToCartUC
	remove   *mockRemoveFromCartUC
	byItem   *mockRemoveByItemUC
	clear    *mockClearCartUC
	get      *mockGetCartUC
	opps     *mockBundleOppsUC
	swap     *mockSwapWithBundleUC
	offer    *mockApplyOfferCodeUC
	checkout *mockCheckoutUC
}

func newTestCartHandler() (*CartHandler, *cartMocks) {
	m := &cartMocks{
		add:      &mockAddToCartUC{},
		remove:   &mockRemoveFromCartUC{},
		byItem:   &mockRemoveByItemUC{},
		clear:    &mockClearCartUC{},
		get:      &mockGetCartUC{},
		opps:     &mockBundleOppsUC{},
		swap:     &mockSwapWithBundleUC{},
		offer:    &mockApplyOfferCodeUC{},
		checkout: &mockCheckoutUC{},
	}
	h := NewCartHandler(m.add, m.remove, m.byItem, m.clear, m.get, m.opps, m.swap, m.offer, m.checkout, logger.NewNop())
	return h, m
}

// =====================================================================
// Tests
// =====================================================================

func TestCartHandler_GetCart(t *testing.T) {
	t.Run("returns the cart of the signed in user", func(t *testing.T) {
		h, m := newTestCartHandler()
		m.get.result = &cartdto.CartDTO{ItemCount: 1, Subtotal: "70.00", Currency: "USD"}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/cart", nil)
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.GetCart(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testUserID, m.get.user.UserID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)

		var data cartdto.CartDTO
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "70.00", data.Subtotal)
	})

	t.Run("anonymous request is unauthorized", func(t *testing.T) {
		h, _ := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/cart", nil)

		h.GetCart(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("bundle line", func(t *testing.T) {
		h, m := newTestCartHandler()
		m.add.result = &cartdto.CartItemDTO{ID: testItemID, IsBundle: true, Price: "250.00"}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/items", map[string]any{
			"subject_id": testSubjectID,
			"is_bundle":  true,
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.AddItem(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, cart.BundleLine{}, m.add.cmd.Line)
		assert.Equal(t, testSubjectID, m.add.cmd.SubjectID)
		assert.Nil(t, m.add.cmd.ExpectedPrice)
	})

	t.Run("individual line with expected price", func(t *testing.T) {
		h, m := newTestCartHandler()
		m.add.result = &cartdto.CartItemDTO{ID: testItemID, Price: "70.00"}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/items", map[string]any{
			"subject_id":      testSubjectID,
			"content_type_id": testTypeID,
			"expected_price":  "70.00",
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.AddItem(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, cart.IndividualLine{ContentTypeID: testTypeID}, m.add.cmd.Line)
		require.NotNil(t, m.add.cmd.ExpectedPrice)
		assert.Equal(t, "70.00", m.add.cmd.ExpectedPrice.StringFixed(2))
	})

	t.Run("individual line needs a content type", func(t *testing.T) {
		h, _ := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/items", map[string]any{
			"subject_id": testSubjectID,
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.AddItem(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bundle line with a content type is rejected", func(t *testing.T) {
		h, _ := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/items", map[string]any{
			"subject_id":      testSubjectID,
			"is_bundle":       true,
			"content_type_id": testTypeID,
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.AddItem(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed subject id", func(t *testing.T) {
		h, _ := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/items", map[string]any{
			"subject_id": "not-a-uuid",
			"is_bundle":  true,
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.AddItem(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
	})

	t.Run("price with three decimals fails binding", func(t *testing.T) {
		h, _ := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/items", map[string]any{
			"subject_id":      testSubjectID,
			"content_type_id": testTypeID,
			"expected_price":  "70.001",
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.AddItem(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate line surfaces the use case error", func(t *testing.T) {
		h, m := newTestCartHandler()
		m.add.err = errors.NewConflictError("Item already in cart")

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/items", map[string]any{
			"subject_id": testSubjectID,
			"is_bundle":  true,
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.AddItem(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Item already in cart", resp.Error.Message)
	})
}

func TestCartHandler_RemoveLine(t *testing.T) {
	h, m := newTestCartHandler()
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/items/remove", map[string]any{
		"subject_id":      testSubjectID,
		"content_type_id": testTypeID,
	})
	testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

	h.RemoveLine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testUserID, m.remove.cmd.User.UserID)
	assert.Equal(t, cart.IndividualLine{ContentTypeID: testTypeID}, m.remove.cmd.Line)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/cart/items/"+testItemID, nil)
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)
		testutil.SetURLParam(c, "id", testItemID)

		h.RemoveItem(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testItemID, m.byItem.cmd.ItemID)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/cart/items/abc", nil)
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)
		testutil.SetURLParam(c, "id", "abc")

		h.RemoveItem(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newTestCartHandler()
		m.byItem.err = errors.NewNotFoundError("Cart item not found")
		c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/cart/items/"+testItemID, nil)
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)
		testutil.SetURLParam(c, "id", testItemID)

		h.RemoveItem(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	h, m := newTestCartHandler()
	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/cart", nil)
	testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

	h.ClearCart(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, m.clear.called)
}

func TestCartHandler_SwapWithBundle(t *testing.T) {
	h, m := newTestCartHandler()
	m.swap.result = &usecases.SwapWithBundleResult{
		Bundle:       &cartdto.CartItemDTO{ID: testItemID, IsBundle: true, Price: "250.00"},
		RemovedItems: 3,
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/bundle-swap", map[string]any{
		"subject_id": testSubjectID,
	})
	testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

	h.SwapWithBundle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data struct {
		Bundle       cartdto.CartItemDTO `json:"bundle"`
		RemovedItems int64               `json:"removed_items"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(3), data.RemovedItems)
	assert.True(t, data.Bundle.IsBundle)
}

func TestCartHandler_ApplyOfferCode(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		h, m := newTestCartHandler()
		m.offer.result = &cartdto.OfferApplicationDTO{
			Success:  true,
			Message:  "Offer applied",
			Subtotal: "150.00",
			Discount: "37.50",
			Total:    "112.50",
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/offer", map[string]any{"code": "newyear25"})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.ApplyOfferCode(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Offer applied", resp.Message)
	})

	t.Run("expired offer", func(t *testing.T) {
		h, m := newTestCartHandler()
		m.offer.err = errors.NewValidationError("This offer has expired")

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/offer", map[string]any{"code": "OLD"})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.ApplyOfferCode(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "This offer has expired", resp.Error.Message)
	})
}

func TestCartHandler_Checkout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestCartHandler()
		m.checkout.result = &cartdto.PurchaseDTO{ID: "p-1", Total: "112.50", PaymentReference: "pay_123"}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/checkout", map[string]any{
			"offer_code":           "NEWYEAR25",
			"payment_reference":    "pay_123",
			"payment_confirmation": "eyJhbGciOiJIUzI1NiJ9.signed",
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.Checkout(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "NEWYEAR25", m.checkout.cmd.OfferCode)
		assert.Equal(t, "pay_123", m.checkout.cmd.PaymentReference)
		assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.signed", m.checkout.cmd.PaymentConfirmation)
	})

	t.Run("missing payment reference", func(t *testing.T) {
		h, _ := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/checkout", map[string]any{})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.Checkout(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing payment confirmation", func(t *testing.T) {
		h, m := newTestCartHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/cart/checkout", map[string]any{
			"payment_reference": "pay_123",
		})
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.Checkout(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, m.checkout.cmd.PaymentReference)
	})
}
