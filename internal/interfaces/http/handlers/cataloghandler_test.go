package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accessdto "github.com/lumen-edu/lumen/internal/application/access/dto"
	cartdto "github.com/lumen-edu/lumen/internal/application/cart/dto"
	cartusecases "github.com/lumen-edu/lumen/internal/application/cart/usecases"
	catalogdto "github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/application/catalog/usecases"
	appcommon "github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers/testutil"
	"github.com/lumen-edu/lumen/internal/shared/authorization"
	"github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type mockListSubjectsUC struct {
	query  usecases.ListSubjectsQuery
	result *usecases.ListSubjectsResult
	err    error
}

func (m *mockListSubjectsUC) Execute(ctx context.Context, query usecases.ListSubjectsQuery) (*usecases.ListSubjectsResult, error) {
	m.query = query
	return m.result, m.err
}

type mockGetSubjectUC struct {
	slug   string
	result *catalogdto.SubjectDetailDTO
	err    error
}

func (m *mockGetSubjectUC) Execute(ctx context.Context, slug string) (*catalogdto.SubjectDetailDTO, error) {
	m.slug = slug
	return m.result, m.err
}

type mockListContentTypesUC struct {
	includeInactive bool
	result          []*catalogdto.ContentTypeDTO
	err             error
}

func (m *mockListContentTypesUC) Execute(ctx context.Context, includeInactive bool) ([]*catalogdto.ContentTypeDTO, error) {
	m.includeInactive = includeInactive
	return m.result, m.err
}

type mockListLibraryUC struct {
	result []*accessdto.LibraryEntryDTO
	err    error
}

func (m *mockListLibraryUC) Execute(ctx context.Context, user appcommon.UserContext) ([]*accessdto.LibraryEntryDTO, error) {
	return m.result, m.err
}

type mockListPurchasesUC struct {
	query  cartusecases.ListPurchasesQuery
	result *cartusecases.ListPurchasesResult
	err    error
}

func (m *mockListPurchasesUC) Execute(ctx context.Context, query cartusecases.ListPurchasesQuery) (*cartusecases.ListPurchasesResult, error) {
	m.query = query
	return m.result, m.err
}

func TestCatalogHandler_ListSubjects(t *testing.T) {
	list := &mockListSubjectsUC{result: &usecases.ListSubjectsResult{
		Subjects: []*catalogdto.SubjectDTO{{ID: "s-1", Title: "Mathematics", Slug: "mathematics"}},
		Total:    1,
		Page:     2,
		PageSize: 5,
	}}
	h := NewCatalogHandler(list, &mockGetSubjectUC{}, &mockListContentTypesUC{}, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/subjects", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "5"})

	h.ListSubjects(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, list.query.IncludeInactive)
	assert.Equal(t, 2, list.query.Page)
	assert.Equal(t, 5, list.query.PageSize)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data struct {
		Items      []catalogdto.SubjectDTO `json:"items"`
		Total      int64                   `json:"total"`
		TotalPages int                     `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "mathematics", data.Items[0].Slug)
	assert.Equal(t, 1, data.TotalPages)
}

func TestCatalogHandler_GetSubject(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		get := &mockGetSubjectUC{result: &catalogdto.SubjectDetailDTO{
			SubjectDTO:      catalogdto.SubjectDTO{ID: "s-1", Title: "Physics", Slug: "physics"},
			DescriptionHTML: "<p>Motion</p>\n",
		}}
		h := NewCatalogHandler(&mockListSubjectsUC{}, get, &mockListContentTypesUC{}, logger.NewNop())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/subjects/physics", nil)
		testutil.SetURLParam(c, "slug", "physics")

		h.GetSubject(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "physics", get.slug)
	})

	t.Run("unknown slug", func(t *testing.T) {
		get := &mockGetSubjectUC{err: errors.NewNotFoundError("Subject not found")}
		h := NewCatalogHandler(&mockListSubjectsUC{}, get, &mockListContentTypesUC{}, logger.NewNop())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/subjects/nope", nil)
		testutil.SetURLParam(c, "slug", "nope")

		h.GetSubject(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogHandler_ListContentTypes(t *testing.T) {
	types := &mockListContentTypesUC{result: []*catalogdto.ContentTypeDTO{{ID: "ct-1", Name: "Video"}}}
	h := NewCatalogHandler(&mockListSubjectsUC{}, &mockGetSubjectUC{}, types, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/content-types", nil)

	h.ListContentTypes(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, types.includeInactive)
}

func TestLibraryHandler(t *testing.T) {
	t.Run("library", func(t *testing.T) {
		lib := &mockListLibraryUC{result: []*accessdto.LibraryEntryDTO{{SubjectID: "s-1", SubjectTitle: "Physics"}}}
		h := NewLibraryHandler(lib, &mockListPurchasesUC{}, logger.NewNop())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/library", nil)
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.GetLibrary(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("library requires a session", func(t *testing.T) {
		h := NewLibraryHandler(&mockListLibraryUC{}, &mockListPurchasesUC{}, logger.NewNop())
		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/library", nil)

		h.GetLibrary(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("purchases default pagination", func(t *testing.T) {
		purchases := &mockListPurchasesUC{result: &cartusecases.ListPurchasesResult{
			Purchases: []*cartdto.PurchaseDTO{{ID: "p-1", Total: "10.00"}},
			Total:     1,
			Page:      1,
			PageSize:  20,
		}}
		h := NewLibraryHandler(&mockListLibraryUC{}, purchases, logger.NewNop())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/purchases", nil)
		testutil.SetAuthContext(c, testUserID, authorization.RoleLearner)

		h.ListPurchases(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testUserID, purchases.query.User.UserID)
		assert.Equal(t, 1, purchases.query.Page)
		assert.Equal(t, 20, purchases.query.PageSize)
	})
}
