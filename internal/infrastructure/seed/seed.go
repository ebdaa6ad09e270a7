// Package seed loads a catalog described in YAML into the database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type File struct {
	ContentTypes []ContentTypeSeed `yaml:"content_types"`
	Subjects     []SubjectSeed     `yaml:"subjects"`
	Offers       []OfferSeed       `yaml:"offers"`
}

type ContentTypeSeed struct {
	Name      string `yaml:"name"`
	Slug      string `yaml:"slug"`
	SortOrder int    `yaml:"sort_order"`
}

type SubjectSeed struct {
	Title         string            `yaml:"title"`
	Slug          string            `yaml:"slug"`
	Description   string            `yaml:"description"`
	BundlePrice   string            `yaml:"bundle_price"`
	BundleEnabled bool              `yaml:"bundle_enabled"`
	Pricing       map[string]string `yaml:"pricing"` // content type slug -> price
	Contents      []ContentSeed     `yaml:"contents"`
}

type ContentSeed struct {
	Type  string `yaml:"type"`
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

type OfferSeed struct {
	Code         string    `yaml:"code"`
	Description  string    `yaml:"description"`
	DiscountType string    `yaml:"discount_type"`
	Value        string    `yaml:"value"`
	Subject      string    `yaml:"subject"`      // subject slug, optional
	ContentType  string    `yaml:"content_type"` // content type slug, optional
	ValidFrom    time.Time `yaml:"valid_from"`
	ValidUntil   time.Time `yaml:"valid_until"`
	MaxUsage     *int      `yaml:"max_usage"`
}

// LoadFile parses a seed file
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

type Repositories struct {
	Subjects     catalog.SubjectRepository
	ContentTypes catalog.ContentTypeRepository
	Contents     catalog.SubjectContentRepository
	Pricing      catalog.PricingRepository
	Offers       offer.Repository
}

// Result counts the rows created by Apply
type Result struct {
	ContentTypes int
	Subjects     int
	Contents     int
	Prices       int
	Offers       int
}

type Seeder struct {
	repos  Repositories
	logger logger.Interface
}

func NewSeeder(repos Repositories, logger logger.Interface) *Seeder {
	return &Seeder{repos: repos, logger: logger}
}

// Apply creates whatever in f does not exist yet. Existing subjects, content types and
// offers are matched by slug or code and left untouched, so running it twice is safe.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Result, error) {
	res := &Result{}

	typeIDs, err := s.applyContentTypes(ctx, f.ContentTypes, res)
	if err != nil {
		return nil, err
	}

	subjectIDs := make(map[string]string, len(f.Subjects))
	for _, seed := range f.Subjects {
		id, err := s.applySubject(ctx, seed, typeIDs, res)
		if err != nil {
			return nil, fmt.Errorf("subject %q: %w", seed.Slug, err)
		}
		subjectIDs[seed.Slug] = id
	}

	for _, seed := range f.Offers {
		if err := s.applyOffer(ctx, seed, subjectIDs, typeIDs, res); err != nil {
			return nil, fmt.Errorf("offer %q: %w", seed.Code, err)
		}
	}

	s.logger.Infow("seed applied",
		"content_types", res.ContentTypes,
		"subjects", res.Subjects,
		"contents", res.Contents,
		"prices", res.Prices,
		"offers", res.Offers)
	return res, nil
}

func (s *Seeder) applyContentTypes(ctx context.Context, seeds []ContentTypeSeed, res *Result) (map[string]string, error) {
	existing, err := s.repos.ContentTypes.List(ctx, false)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]string, len(existing))
	for _, ct := range existing {
		ids[ct.Slug()] = ct.ID()
	}

	for _, seed := range seeds {
		ct, err := catalog.NewContentType(seed.Name, seed.Slug, seed.SortOrder)
		if err != nil {
			return nil, fmt.Errorf("content type %q: %w", seed.Slug, err)
		}
		if _, ok := ids[ct.Slug()]; ok {
			continue
		}
		if err := s.repos.ContentTypes.Create(ctx, ct); err != nil {
			return nil, err
		}
		ids[ct.Slug()] = ct.ID()
		res.ContentTypes++
	}
	return ids, nil
}

func (s *Seeder) applySubject(ctx context.Context, seed SubjectSeed, typeIDs map[string]string, res *Result) (string, error) {
	existing, err := s.repos.Subjects.GetBySlug(ctx, seed.Slug)
	if err == nil {
		return existing.ID(), nil
	}
	if !errors.Is(err, catalog.ErrSubjectNotFound) {
		return "", err
	}

	subject, err := catalog.NewSubject(seed.Title, seed.Slug, seed.Description)
	if err != nil {
		return "", err
	}
	if seed.BundlePrice != "" {
		price, err := decimal.NewFromString(seed.BundlePrice)
		if err != nil {
			return "", fmt.Errorf("invalid bundle price: %w", err)
		}
		if err := subject.SetBundlePricing(&price, seed.BundleEnabled); err != nil {
			return "", err
		}
	}
	if err := s.repos.Subjects.Create(ctx, subject); err != nil {
		return "", err
	}
	res.Subjects++

	for slug, raw := range seed.Pricing {
		typeID, ok := typeIDs[slug]
		if !ok {
			return "", fmt.Errorf("unknown content type %q in pricing", slug)
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return "", fmt.Errorf("invalid price for %q: %w", slug, err)
		}
		pricing, err := catalog.NewContentTypePricing(subject.ID(), typeID, price)
		if err != nil {
			return "", err
		}
		if err := s.repos.Pricing.Upsert(ctx, pricing); err != nil {
			return "", err
		}
		res.Prices++
	}

	for i, c := range seed.Contents {
		typeID, ok := typeIDs[c.Type]
		if !ok {
			return "", fmt.Errorf("unknown content type %q in contents", c.Type)
		}
		content, err := catalog.NewSubjectContent(subject.ID(), typeID, c.Title, c.URL, i)
		if err != nil {
			return "", err
		}
		if err := s.repos.Contents.Create(ctx, content); err != nil {
			return "", err
		}
		res.Contents++
	}

	return subject.ID(), nil
}

func (s *Seeder) applyOffer(ctx context.Context, seed OfferSeed, subjectIDs, typeIDs map[string]string, res *Result) error {
	exists, err := s.repos.Offers.ExistsByCode(ctx, offer.NormalizeCode(seed.Code))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	value, err := decimal.NewFromString(seed.Value)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	terms := offer.Terms{
		Description:  seed.Description,
		DiscountType: offer.DiscountType(seed.DiscountType),
		Value:        value,
		ValidFrom:    seed.ValidFrom.UTC(),
		ValidUntil:   seed.ValidUntil.UTC(),
		MaxUsage:     seed.MaxUsage,
	}
	if seed.Subject != "" {
		id, ok := subjectIDs[seed.Subject]
		if !ok {
			return fmt.Errorf("unknown subject %q", seed.Subject)
		}
		terms.SubjectID = &id
	}
	if seed.ContentType != "" {
		id, ok := typeIDs[seed.ContentType]
		if !ok {
			return fmt.Errorf("unknown content type %q", seed.ContentType)
		}
		terms.ContentTypeID = &id
	}

	o, err := offer.NewOffer(seed.Code, terms)
	if err != nil {
		return err
	}
	if err := s.repos.Offers.Create(ctx, o); err != nil {
		return err
	}
	res.Offers++
	return nil
}
