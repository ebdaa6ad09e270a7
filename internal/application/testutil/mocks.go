// Package testutil provides in-memory repository implementations for testing the application layer.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/lumen-edu/lumen/internal/domain/access"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/domain/purchase"
)

// MockCatalog implements every catalog repository over shared maps.
type MockCatalog struct {
	mu       sync.RWMutex
	subjects map[string]*catalog.Subject
	types    map[string]*catalog.ContentType
	contents []*catalog.SubjectContent
	pricing  map[string]*catalog.ContentTypePricing

	// Error injection for testing
	GetError error
}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		subjects: make(map[string]*catalog.Subject),
		types:    make(map[string]*catalog.ContentType),
		pricing:  make(map[string]*catalog.ContentTypePricing),
	}
}

// Subjects returns the catalog as a catalog.SubjectRepository.
func (m *MockCatalog) Subjects() catalog.SubjectRepository { return (*mockSubjects)(m) }

// ContentTypes returns the catalog as a catalog.ContentTypeRepository.
func (m *MockCatalog) ContentTypes() catalog.ContentTypeRepository { return (*mockContentTypes)(m) }

// Contents returns the catalog as a catalog.SubjectContentRepository.
func (m *MockCatalog) Contents() catalog.SubjectContentRepository { return (*mockContents)(m) }

// Pricing returns the catalog as a catalog.PricingRepository.
func (m *MockCatalog) Pricing() catalog.PricingRepository { return (*mockPricing)(m) }

type mockSubjects MockCatalog

func (m *mockSubjects) Create(ctx context.Context, s *catalog.Subject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects[s.ID()] = s
	return nil
}

func (m *mockSubjects) Update(ctx context.Context, s *catalog.Subject) error {
	return m.Create(ctx, s)
}

func (m *mockSubjects) GetByID(ctx context.Context, id string) (*catalog.Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	s, ok := m.subjects[id]
	if !ok {
		return nil, catalog.ErrSubjectNotFound
	}
	return s, nil
}

func (m *mockSubjects) GetBySlug(ctx context.Context, slug string) (*catalog.Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, s := range m.subjects {
		if s.Slug() == slug {
			return s, nil
		}
	}
	return nil, catalog.ErrSubjectNotFound
}

func (m *mockSubjects) GetByIDs(ctx context.Context, ids []string) (map[string]*catalog.Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*catalog.Subject)
	for _, id := range ids {
		if s, ok := m.subjects[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (m *mockSubjects) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	_, err := m.GetBySlug(ctx, slug)
	return err == nil, nil
}

func (m *mockSubjects) List(ctx context.Context, filter catalog.SubjectFilter) ([]*catalog.Subject, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*catalog.Subject
	for _, s := range m.subjects {
		if filter.ActiveOnly && !s.IsActive() {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title() < out[j].Title() })
	return out, int64(len(out)), nil
}

type mockContentTypes MockCatalog

func (m *mockContentTypes) Create(ctx context.Context, ct *catalog.ContentType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types[ct.ID()] = ct
	return nil
}

func (m *mockContentTypes) GetByID(ctx context.Context, id string) (*catalog.ContentType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ct, ok := m.types[id]
	if !ok {
		return nil, catalog.ErrContentTypeNotFound
	}
	return ct, nil
}

func (m *mockContentTypes) GetByIDs(ctx context.Context, ids []string) (map[string]*catalog.ContentType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*catalog.ContentType)
	for _, id := range ids {
		if ct, ok := m.types[id]; ok {
			out[id] = ct
		}
	}
	return out, nil
}

func (m *mockContentTypes) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ct := range m.types {
		if ct.Slug() == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockContentTypes) List(ctx context.Context, activeOnly bool) ([]*catalog.ContentType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*catalog.ContentType
	for _, ct := range m.types {
		if activeOnly && !ct.IsActive() {
			continue
		}
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder() < out[j].SortOrder() })
	return out, nil
}

type mockContents MockCatalog

func (m *mockContents) Create(ctx context.Context, c *catalog.SubjectContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = append(m.contents, c)
	return nil
}

func (m *mockContents) ListBySubject(ctx context.Context, subjectID string, activeOnly bool) ([]*catalog.SubjectContent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*catalog.SubjectContent
	for _, c := range m.contents {
		if c.SubjectID() != subjectID || (activeOnly && !c.IsActive()) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockContents) AvailableContentTypes(ctx context.Context, subjectIDs []string) (map[string][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	wanted := make(map[string]struct{}, len(subjectIDs))
	for _, id := range subjectIDs {
		wanted[id] = struct{}{}
	}
	out := make(map[string][]string)
	seen := make(map[string]struct{})
	for _, c := range m.contents {
		if _, ok := wanted[c.SubjectID()]; !ok || !c.IsActive() {
			continue
		}
		ct, ok := m.types[c.ContentTypeID()]
		if !ok || !ct.IsActive() {
			continue
		}
		key := c.SubjectID() + "/" + c.ContentTypeID()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out[c.SubjectID()] = append(out[c.SubjectID()], c.ContentTypeID())
	}
	return out, nil
}

type mockPricing MockCatalog

func pricingKey(subjectID, contentTypeID string) string {
	return subjectID + "/" + contentTypeID
}

func (m *mockPricing) Upsert(ctx context.Context, p *catalog.ContentTypePricing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pricing[pricingKey(p.SubjectID(), p.ContentTypeID())] = p
	return nil
}

func (m *mockPricing) Get(ctx context.Context, subjectID, contentTypeID string) (*catalog.ContentTypePricing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pricing[pricingKey(subjectID, contentTypeID)]
	if !ok {
		return nil, catalog.ErrPricingNotFound
	}
	return p, nil
}

func (m *mockPricing) ListBySubject(ctx context.Context, subjectID string) ([]*catalog.ContentTypePricing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*catalog.ContentTypePricing
	for _, p := range m.pricing {
		if p.SubjectID() == subjectID {
			out = append(out, p)
		}
	}
	return out, nil
}

// MockCartRepository is an in-memory cart.Repository preserving insertion order.
type MockCartRepository struct {
	mu    sync.RWMutex
	items []*cart.Item

	CreateError error
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{}
}

func (m *MockCartRepository) Create(ctx context.Context, item *cart.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	m.items = append(m.items, item)
	return nil
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userID string) ([]*cart.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*cart.Item
	for _, it := range m.items {
		if it.UserID() == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *MockCartRepository) FindLine(ctx context.Context, userID, subjectID string, line cart.Line) (*cart.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, it := range m.items {
		if it.UserID() == userID && it.Matches(subjectID, line) {
			return it, nil
		}
	}
	return nil, nil
}

func (m *MockCartRepository) deleteWhere(keep func(*cart.Item) bool) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	kept := m.items[:0]
	for _, it := range m.items {
		if keep(it) {
			kept = append(kept, it)
			continue
		}
		removed++
	}
	m.items = kept
	return removed
}

func (m *MockCartRepository) DeleteByID(ctx context.Context, userID, itemID string) (int64, error) {
	return m.deleteWhere(func(it *cart.Item) bool {
		return !(it.UserID() == userID && it.ID() == itemID)
	}), nil
}

func (m *MockCartRepository) DeleteLine(ctx context.Context, userID, subjectID string, line cart.Line) (int64, error) {
	return m.deleteWhere(func(it *cart.Item) bool {
		return !(it.UserID() == userID && it.Matches(subjectID, line))
	}), nil
}

func (m *MockCartRepository) DeleteIndividualBySubject(ctx context.Context, userID, subjectID string) (int64, error) {
	return m.deleteWhere(func(it *cart.Item) bool {
		return !(it.UserID() == userID && it.SubjectID() == subjectID && !it.IsBundle())
	}), nil
}

func (m *MockCartRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return m.deleteWhere(func(it *cart.Item) bool {
		return it.UserID() != userID
	}), nil
}

// MockOfferRepository is an in-memory offer.Repository.
type MockOfferRepository struct {
	mu     sync.RWMutex
	offers map[string]*offer.Offer
	// CreateError, when set, is returned by Create instead of storing the offer.
	CreateError error
}

func NewMockOfferRepository() *MockOfferRepository {
	return &MockOfferRepository{offers: make(map[string]*offer.Offer)}
}

func (m *MockOfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	return m.Update(ctx, o)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offers[o.ID()] = o
	return nil
}

func (m *MockOfferRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.offers[id]; !ok {
		return offer.ErrOfferNotFound
	}
	delete(m.offers, id)
	return nil
}

func (m *MockOfferRepository) GetByID(ctx context.Context, id string) (*offer.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.offers[id]
	if !ok {
		return nil, offer.ErrOfferNotFound
	}
	return o, nil
}

func (m *MockOfferRepository) GetByCode(ctx context.Context, code string) (*offer.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.offers {
		if o.Code() == code {
			return o, nil
		}
	}
	return nil, offer.ErrOfferNotFound
}

func (m *MockOfferRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := m.GetByCode(ctx, code)
	return err == nil, nil
}

func (m *MockOfferRepository) List(ctx context.Context, filter offer.ListFilter) ([]*offer.Offer, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*offer.Offer
	for _, o := range m.offers {
		if filter.Active != nil && o.IsActive() != *filter.Active {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, int64(len(out)), nil
}

// IncrementUsage rebuilds the stored offer with one more use, mirroring the guarded UPDATE.
func (m *MockOfferRepository) IncrementUsage(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.offers[id]
	if !ok {
		return offer.ErrOfferNotFound
	}
	if limit := o.MaxUsage(); limit != nil && o.CurrentUsage() >= *limit {
		return offer.ErrUsageExhausted
	}
	m.offers[id] = offer.ReconstructOffer(o.ID(), o.Code(), o.Terms(), o.CurrentUsage()+1, o.IsActive(), o.CreatedAt(), o.UpdatedAt())
	return nil
}

// MockAccessRepository is an in-memory access.Repository keyed by (user, subject, content type).
type MockAccessRepository struct {
	mu     sync.RWMutex
	grants map[string]*access.UserAccess
	order  []string

	GrantError error
}

func NewMockAccessRepository() *MockAccessRepository {
	return &MockAccessRepository{grants: make(map[string]*access.UserAccess)}
}

func accessKey(userID, subjectID, contentTypeID string) string {
	return userID + "/" + subjectID + "/" + contentTypeID
}

func (m *MockAccessRepository) Grant(ctx context.Context, grants []*access.UserAccess) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GrantError != nil {
		return m.GrantError
	}
	for _, g := range grants {
		key := accessKey(g.UserID(), g.SubjectID(), g.ContentTypeID())
		if _, ok := m.grants[key]; ok {
			continue
		}
		m.grants[key] = g
		m.order = append(m.order, key)
	}
	return nil
}

func (m *MockAccessRepository) Has(ctx context.Context, userID, subjectID, contentTypeID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.grants[accessKey(userID, subjectID, contentTypeID)]
	return ok, nil
}

func (m *MockAccessRepository) OwnedContentTypes(ctx context.Context, userID, subjectID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for _, key := range m.order {
		g := m.grants[key]
		if g.UserID() == userID && g.SubjectID() == subjectID {
			out = append(out, g.ContentTypeID())
		}
	}
	return out, nil
}

func (m *MockAccessRepository) ListByUser(ctx context.Context, userID string) ([]*access.UserAccess, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*access.UserAccess
	for _, key := range m.order {
		if g := m.grants[key]; g.UserID() == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

// MockPurchaseRepository is an in-memory purchase.Repository.
type MockPurchaseRepository struct {
	mu        sync.RWMutex
	purchases []*purchase.Purchase
}

func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{}
}

func (m *MockPurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.purchases {
		if existing.PaymentReference() == p.PaymentReference() {
			return purchase.ErrPaymentAlreadyRecorded
		}
	}
	m.purchases = append(m.purchases, p)
	return nil
}

func (m *MockPurchaseRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]*purchase.Purchase, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*purchase.Purchase
	for _, p := range m.purchases {
		if p.UserID() == userID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

// TxRunner runs fn directly without a real transaction and counts the calls.
type TxRunner struct {
	Calls int
}

func (r *TxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.Calls++
	return fn(ctx)
}
