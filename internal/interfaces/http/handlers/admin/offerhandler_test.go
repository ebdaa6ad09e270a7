package admin

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	offerdto "github.com/lumen-edu/lumen/internal/application/offer/dto"
	"github.com/lumen-edu/lumen/internal/application/offer/usecases"
	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers/testutil"
	"github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

const testOfferID = "3c2b1a09-8f7e-4d6c-9b5a-4f3e2d1c0b9a"

type mockCreateOfferUC struct {
	cmd    usecases.CreateOfferCommand
	result *offerdto.OfferDTO
	err    error
}

func (m *mockCreateOfferUC) Execute(ctx context.Context, cmd usecases.CreateOfferCommand) (*offerdto.OfferDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateOfferUC struct {
	cmd    usecases.UpdateOfferCommand
	result *offerdto.OfferDTO
	err    error
}

func (m *mockUpdateOfferUC) Execute(ctx context.Context, cmd usecases.UpdateOfferCommand) (*offerdto.OfferDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockSetOfferActiveUC struct {
	cmd    usecases.SetOfferActiveCommand
	result *offerdto.OfferDTO
	err    error
}

func (m *mockSetOfferActiveUC) Execute(ctx context.Context, cmd usecases.SetOfferActiveCommand) (*offerdto.OfferDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetOfferUC struct {
	result *offerdto.OfferDTO
	err    error
}

func (m *mockGetOfferUC) Execute(ctx context.Context, id string) (*offerdto.OfferDTO, error) {
	return m.result, m.err
}

type mockListOffersUC struct {
	query  usecases.ListOffersQuery
	result *usecases.ListOffersResult
	err    error
}

func (m *mockListOffersUC) Execute(ctx context.Context, query usecases.ListOffersQuery) (*usecases.ListOffersResult, error) {
	m.query = query
	return m.result, m.err
}

type mockDeleteOfferUC struct {
	id  string
	err error
}

func (m *mockDeleteOfferUC) Execute(ctx context.Context, id string) error {
	m.id = id
	return m.err
}

type offerMocks struct {
	create *mockCreateOfferUC
	update *mockUpdateOfferUC
	active *mockSetOfferActiveUC
	get    *mockGetOfferUC
	list   *mockListOffersUC
	delete *mockDeleteOfferUC
}

func newTestOfferHandler() (*OfferHandler, *offerMocks) {
	m := &offerMocks{
		create: &mockCreateOfferUC{},
		update: &mockUpdateOfferUC{},
		active: &mockSetOfferActiveUC{},
		get:    &mockGetOfferUC{},
		list:   &mockListOffersUC{},
		delete: &mockDeleteOfferUC{},
	}
	return NewOfferHandler(m.create, m.update, m.active, m.get, m.list, m.delete, logger.NewNop()), m
}

func validOfferBody() map[string]any {
	return map[string]any{
		"code":          "spring10",
		"description":   "Spring sale",
		"discount_type": "percentage",
		"value":         "10",
		"valid_from":    "2026-03-01T00:00:00Z",
		"valid_until":   "2026-04-01T00:00:00Z",
		"max_usage":     100,
	}
}

func TestOfferHandler_CreateOffer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestOfferHandler()
		m.create.result = &offerdto.OfferDTO{ID: testOfferID, Code: "SPRING10"}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/offers", validOfferBody())

		h.CreateOffer(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "spring10", m.create.cmd.Code)
		assert.Equal(t, "percentage", m.create.cmd.DiscountType)
		assert.Equal(t, "10", m.create.cmd.Value.String())
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), m.create.cmd.ValidUntil)
		require.NotNil(t, m.create.cmd.MaxUsage)
		assert.Equal(t, 100, *m.create.cmd.MaxUsage)
	})

	t.Run("unknown discount type", func(t *testing.T) {
		h, _ := newTestOfferHandler()
		body := validOfferBody()
		body["discount_type"] = "bogo"

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/offers", body)

		h.CreateOffer(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero max usage", func(t *testing.T) {
		h, _ := newTestOfferHandler()
		body := validOfferBody()
		body["max_usage"] = 0

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/offers", body)

		h.CreateOffer(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate code", func(t *testing.T) {
		h, m := newTestOfferHandler()
		m.create.err = errors.NewConflictError("Offer code already exists")

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/offers", validOfferBody())

		h.CreateOffer(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestOfferHandler_UpdateOffer(t *testing.T) {
	h, m := newTestOfferHandler()
	m.update.result = &offerdto.OfferDTO{ID: testOfferID}

	body := validOfferBody()
	delete(body, "code")
	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/admin/offers/"+testOfferID, body)
	testutil.SetURLParam(c, "id", testOfferID)

	h.UpdateOffer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testOfferID, m.update.cmd.ID)
}

func TestOfferHandler_UpdateOfferStatus(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		h, m := newTestOfferHandler()
		m.active.result = &offerdto.OfferDTO{ID: testOfferID}

		c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/admin/offers/"+testOfferID+"/status",
			map[string]any{"is_active": false})
		testutil.SetURLParam(c, "id", testOfferID)

		h.UpdateOfferStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, m.active.cmd.Active)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Offer deactivated successfully", resp.Message)
	})

	t.Run("missing flag", func(t *testing.T) {
		h, _ := newTestOfferHandler()
		c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/admin/offers/"+testOfferID+"/status", map[string]any{})
		testutil.SetURLParam(c, "id", testOfferID)

		h.UpdateOfferStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOfferHandler_ListOffers(t *testing.T) {
	t.Run("active filter", func(t *testing.T) {
		h, m := newTestOfferHandler()
		m.list.result = &usecases.ListOffersResult{Page: 1, PageSize: 20}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/admin/offers", nil)
		testutil.SetQueryParams(c, map[string]string{"active": "true"})

		h.ListOffers(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, m.list.query.Active)
		assert.True(t, *m.list.query.Active)
	})

	t.Run("bad filter", func(t *testing.T) {
		h, _ := newTestOfferHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/admin/offers", nil)
		testutil.SetQueryParams(c, map[string]string{"active": "maybe"})

		h.ListOffers(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOfferHandler_GetAndDelete(t *testing.T) {
	h, m := newTestOfferHandler()
	m.get.err = errors.NewNotFoundError("Offer not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/admin/offers/"+testOfferID, nil)
	testutil.SetURLParam(c, "id", testOfferID)
	h.GetOffer(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = testutil.NewTestContext(http.MethodDelete, "/api/v1/admin/offers/"+testOfferID, nil)
	testutil.SetURLParam(c, "id", testOfferID)
	h.DeleteOffer(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testOfferID, m.delete.id)
}
