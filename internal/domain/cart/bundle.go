package cart

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BundleOffer describes a subject that can currently be bought as a bundle.
type BundleOffer struct {
	SubjectID    string
	SubjectTitle string
	Price        decimal.Decimal
}

// BundleOpportunity is a subject where the user's individual lines already cover every
// available content type and the bundle would be cheaper.
type BundleOpportunity struct {
	SubjectID       string
	SubjectTitle    string
	BundlePrice     decimal.Decimal
	IndividualTotal decimal.Decimal
	Savings         decimal.Decimal
	CartItemIDs     []string
	ContentTypeIDs  []string
}

// DetectBundleOpportunities groups the individual lines of items by subject and reports the
// subjects whose lines cover every content type in available, where a bundle is offered and the
// individual total exceeds the bundle price. Subjects with no available content types are never
// reported. Results are ordered by subject title.
func DetectBundleOpportunities(items []*Item, bundles map[string]BundleOffer, available map[string][]string) []BundleOpportunity {
	type group struct {
		itemIDs  []string
		typeIDs  []string
		covered  map[string]struct{}
		subtotal decimal.Decimal
	}

	groups := make(map[string]*group)
	for _, it := range items {
		ctID, ok := it.ContentTypeID()
		if !ok {
			continue
		}
		g, exists := groups[it.subjectID]
		if !exists {
			g = &group{covered: make(map[string]struct{}), subtotal: decimal.Zero}
			groups[it.subjectID] = g
		}
		g.itemIDs = append(g.itemIDs, it.id)
		g.typeIDs = append(g.typeIDs, ctID)
		g.covered[ctID] = struct{}{}
		g.subtotal = g.subtotal.Add(it.price)
	}

	var out []BundleOpportunity
	for subjectID, g := range groups {
		offer, ok := bundles[subjectID]
		if !ok {
			continue
		}
		avail := available[subjectID]
		if len(avail) == 0 {
			continue
		}
		if !coversAll(g.covered, avail) {
			continue
		}
		if !g.subtotal.GreaterThan(offer.Price) {
			continue
		}
		out = append(out, BundleOpportunity{
			SubjectID:       subjectID,
			SubjectTitle:    offer.SubjectTitle,
			BundlePrice:     offer.Price,
			IndividualTotal: g.subtotal,
			Savings:         g.subtotal.Sub(offer.Price),
			CartItemIDs:     g.itemIDs,
			ContentTypeIDs:  g.typeIDs,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SubjectTitle != out[j].SubjectTitle {
			return out[i].SubjectTitle < out[j].SubjectTitle
		}
		return out[i].SubjectID < out[j].SubjectID
	})
	return out
}

func coversAll(covered map[string]struct{}, required []string) bool {
	for _, id := range required {
		if _, ok := covered[id]; !ok {
			return false
		}
	}
	return true
}
