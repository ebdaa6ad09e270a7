package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accessdto "github.com/lumen-edu/lumen/internal/application/access/dto"
	accessusecases "github.com/lumen-edu/lumen/internal/application/access/usecases"
	catalogdto "github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/application/catalog/usecases"
	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers/testutil"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

const (
	testSubjectID = "6f1c2d7e-4b1a-4c55-9d0e-2a9b8c7d6e5f"
	testTypeID    = "0b7e3f2a-9c4d-4e1f-8a6b-5c3d2e1f0a9b"
)

type mockListSubjectsUC struct {
	query  usecases.ListSubjectsQuery
	result *usecases.ListSubjectsResult
}

func (m *mockListSubjectsUC) Execute(ctx context.Context, query usecases.ListSubjectsQuery) (*usecases.ListSubjectsResult, error) {
	m.query = query
	return m.result, nil
}

type mockCreateSubjectUC struct {
	cmd usecases.CreateSubjectCommand
}

func (m *mockCreateSubjectUC) Execute(ctx context.Context, cmd usecases.CreateSubjectCommand) (*catalogdto.SubjectDTO, error) {
	m.cmd = cmd
	return &catalogdto.SubjectDTO{ID: testSubjectID, Title: cmd.Title, Slug: cmd.Slug}, nil
}

type mockUpdateSubjectUC struct {
	cmd usecases.UpdateSubjectCommand
}

func (m *mockUpdateSubjectUC) Execute(ctx context.Context, cmd usecases.UpdateSubjectCommand) (*catalogdto.SubjectDTO, error) {
	m.cmd = cmd
	return &catalogdto.SubjectDTO{ID: cmd.ID}, nil
}

type mockSetPricingUC struct {
	cmd usecases.SetContentTypePricingCommand
}

func (m *mockSetPricingUC) Execute(ctx context.Context, cmd usecases.SetContentTypePricingCommand) (*catalogdto.ContentTypePriceDTO, error) {
	m.cmd = cmd
	return &catalogdto.ContentTypePriceDTO{ContentTypeID: cmd.ContentTypeID, Price: cmd.Price.StringFixed(2)}, nil
}

type mockAddContentUC struct {
	cmd usecases.AddSubjectContentCommand
}

func (m *mockAddContentUC) Execute(ctx context.Context, cmd usecases.AddSubjectContentCommand) (*catalogdto.SubjectContentDTO, error) {
	m.cmd = cmd
	return &catalogdto.SubjectContentDTO{ID: "c-1", ContentTypeID: cmd.ContentTypeID, Title: cmd.Title}, nil
}

type mockListContentTypesUC struct {
	includeInactive bool
}

func (m *mockListContentTypesUC) Execute(ctx context.Context, includeInactive bool) ([]*catalogdto.ContentTypeDTO, error) {
	m.includeInactive = includeInactive
	return nil, nil
}

type mockCreateContentTypeUC struct {
	cmd usecases.CreateContentTypeCommand
}

func (m *mockCreateContentTypeUC) Execute(ctx context.Context, cmd usecases.CreateContentTypeCommand) (*catalogdto.ContentTypeDTO, error) {
	m.cmd = cmd
	return &catalogdto.ContentTypeDTO{ID: testTypeID, Name: cmd.Name, Slug: cmd.Slug}, nil
}

type catalogMocks struct {
	list       *mockListSubjectsUC
	create     *mockCreateSubjectUC
	update     *mockUpdateSubjectUC
	pricing    *mockSetPricingUC
	content    *mockAddContentUC
	types      *mockListContentTypesUC
	createType *mockCreateContentTypeUC
}

func newTestCatalogAdminHandler() (*CatalogAdminHandler, *catalogMocks) {
	m := &catalogMocks{
		list:       &mockListSubjectsUC{result: &usecases.ListSubjectsResult{Page: 1, PageSize: 20}},
		create:     &mockCreateSubjectUC{},
		update:     &mockUpdateSubjectUC{},
		pricing:    &mockSetPricingUC{},
		content:    &mockAddContentUC{},
		types:      &mockListContentTypesUC{},
		createType: &mockCreateContentTypeUC{},
	}
	h := NewCatalogAdminHandler(m.list, m.create, m.update, m.pricing, m.content, m.types, m.createType, logger.NewNop())
	return h, m
}

func TestCatalogAdminHandler_ListIncludesInactive(t *testing.T) {
	h, m := newTestCatalogAdminHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/admin/subjects", nil)
	h.ListSubjects(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, m.list.query.IncludeInactive)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/v1/admin/content-types", nil)
	h.ListContentTypes(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, m.types.includeInactive)
}

func TestCatalogAdminHandler_CreateSubject(t *testing.T) {
	t.Run("with bundle price", func(t *testing.T) {
		h, m := newTestCatalogAdminHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/subjects", map[string]any{
			"title":             "Chemistry",
			"slug":              "chemistry",
			"description":       "# Atoms",
			"bundle_price":      "99.90",
			"is_bundle_enabled": true,
		})

		h.CreateSubject(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, m.create.cmd.BundlePrice)
		assert.Equal(t, "99.90", m.create.cmd.BundlePrice.StringFixed(2))
		assert.True(t, m.create.cmd.BundleEnabled)
	})

	t.Run("missing title", func(t *testing.T) {
		h, _ := newTestCatalogAdminHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/subjects", map[string]any{"slug": "chemistry"})

		h.CreateSubject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, resp.Error.Details, "title is required")
	})

	t.Run("negative bundle price", func(t *testing.T) {
		h, _ := newTestCatalogAdminHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/subjects", map[string]any{
			"title":        "Chemistry",
			"slug":         "chemistry",
			"bundle_price": "-1",
		})

		h.CreateSubject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogAdminHandler_UpdateSubject(t *testing.T) {
	h, m := newTestCatalogAdminHandler()
	c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/admin/subjects/"+testSubjectID, map[string]any{
		"is_active":          false,
		"clear_bundle_price": true,
	})
	testutil.SetURLParam(c, "id", testSubjectID)

	h.UpdateSubject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testSubjectID, m.update.cmd.ID)
	require.NotNil(t, m.update.cmd.Active)
	assert.False(t, *m.update.cmd.Active)
	assert.True(t, m.update.cmd.ClearBundlePrice)
	assert.Nil(t, m.update.cmd.Title)
}

func TestCatalogAdminHandler_SetPricing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestCatalogAdminHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/admin/subjects/x/pricing/y", map[string]any{"price": "70.5"})
		testutil.SetURLParam(c, "id", testSubjectID)
		testutil.SetURLParam(c, "content_type_id", testTypeID)

		h.SetPricing(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "70.50", m.pricing.cmd.Price.StringFixed(2))
		assert.Equal(t, testTypeID, m.pricing.cmd.ContentTypeID)
	})

	t.Run("bad content type id", func(t *testing.T) {
		h, _ := newTestCatalogAdminHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/admin/subjects/x/pricing/y", map[string]any{"price": "70"})
		testutil.SetURLParam(c, "id", testSubjectID)
		testutil.SetURLParam(c, "content_type_id", "video")

		h.SetPricing(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogAdminHandler_AddContentAndType(t *testing.T) {
	h, m := newTestCatalogAdminHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/subjects/x/contents", map[string]any{
		"content_type_id": testTypeID,
		"title":           "Lecture 1",
		"resource_url":    "https://cdn.example.com/l1.mp4",
		"sort_order":      1,
	})
	testutil.SetURLParam(c, "id", testSubjectID)
	h.AddContent(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testSubjectID, m.content.cmd.SubjectID)
	assert.Equal(t, 1, m.content.cmd.SortOrder)

	c, w = testutil.NewTestContext(http.MethodPost, "/api/v1/admin/content-types", map[string]any{
		"name": "Worksheets",
		"slug": "worksheets",
	})
	h.CreateContentType(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "worksheets", m.createType.cmd.Slug)
}

type mockGrantAccessUC struct {
	cmd accessusecases.GrantAccessCommand
}

func (m *mockGrantAccessUC) Execute(ctx context.Context, cmd accessusecases.GrantAccessCommand) (*accessdto.AccessGrantDTO, error) {
	m.cmd = cmd
	return &accessdto.AccessGrantDTO{UserID: cmd.UserID, SubjectID: cmd.SubjectID, ContentTypeID: cmd.ContentTypeID, Source: "admin"}, nil
}

func TestAccessHandler_GrantAccess(t *testing.T) {
	grant := &mockGrantAccessUC{}
	h := NewAccessHandler(grant, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/access", map[string]any{
		"user_id":         "user-7",
		"subject_id":      testSubjectID,
		"content_type_id": testTypeID,
	})
	h.GrantAccess(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-7", grant.cmd.UserID)

	c, w = testutil.NewTestContext(http.MethodPost, "/api/v1/admin/access", map[string]any{"user_id": "user-7"})
	h.GrantAccess(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
