package cart

import "fmt"

// LineKind discriminates the two shapes a cart line can take.
type LineKind string

const (
	LineKindBundle     LineKind = "bundle"
	LineKindIndividual LineKind = "individual"
)

// Line is either a BundleLine or an IndividualLine. The unexported marker keeps the set closed.
type Line interface {
	Kind() LineKind
	isLine()
}

// BundleLine buys every available content type of a subject at the bundle price.
type BundleLine struct{}

func (BundleLine) Kind() LineKind { return LineKindBundle }
func (BundleLine) isLine()        {}

// IndividualLine buys a single content type of a subject.
type IndividualLine struct {
	ContentTypeID string
}

func (IndividualLine) Kind() LineKind { return LineKindIndividual }
func (IndividualLine) isLine()        {}

// NewLine builds a line from its stored representation: a bundle never carries a
// content type and an individual line always does.
func NewLine(isBundle bool, contentTypeID string) (Line, error) {
	if isBundle {
		if contentTypeID != "" {
			return nil, fmt.Errorf("%w: bundle line cannot reference a content type", ErrInvalidLine)
		}
		return BundleLine{}, nil
	}
	if contentTypeID == "" {
		return nil, fmt.Errorf("%w: individual line requires a content type", ErrInvalidLine)
	}
	return IndividualLine{ContentTypeID: contentTypeID}, nil
}

// ContentTypeOf returns the content type of an individual line.
func ContentTypeOf(l Line) (string, bool) {
	if il, ok := l.(IndividualLine); ok {
		return il.ContentTypeID, true
	}
	return "", false
}
