package access

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Source records how an access grant came about.
type Source string

const (
	SourcePurchase Source = "purchase"
	SourceAdmin    Source = "admin"
)

// UserAccess grants a user one content type of one subject. At most one exists per
// (user, subject, content type).
type UserAccess struct {
	id            string
	userID        string
	subjectID     string
	contentTypeID string
	source        Source
	purchaseID    *string
	grantedAt     time.Time
}

func NewUserAccess(userID, subjectID, contentTypeID string, source Source, purchaseID *string) (*UserAccess, error) {
	if userID == "" || subjectID == "" || contentTypeID == "" {
		return nil, fmt.Errorf("user, subject and content type are required")
	}
	if source != SourcePurchase && source != SourceAdmin {
		return nil, fmt.Errorf("invalid access source: %s", source)
	}
	return &UserAccess{
		id:            uuid.NewString(),
		userID:        userID,
		subjectID:     subjectID,
		contentTypeID: contentTypeID,
		source:        source,
		purchaseID:    purchaseID,
		grantedAt:     time.Now().UTC(),
	}, nil
}

func ReconstructUserAccess(id, userID, subjectID, contentTypeID string, source Source, purchaseID *string, grantedAt time.Time) *UserAccess {
	return &UserAccess{
		id:            id,
		userID:        userID,
		subjectID:     subjectID,
		contentTypeID: contentTypeID,
		source:        source,
		purchaseID:    purchaseID,
		grantedAt:     grantedAt,
	}
}

func (a *UserAccess) ID() string            { return a.id }
func (a *UserAccess) UserID() string        { return a.userID }
func (a *UserAccess) SubjectID() string     { return a.subjectID }
func (a *UserAccess) ContentTypeID() string { return a.contentTypeID }
func (a *UserAccess) Source() Source        { return a.source }
func (a *UserAccess) PurchaseID() *string   { return a.purchaseID }
func (a *UserAccess) GrantedAt() time.Time  { return a.grantedAt }

// OwnsAll reports whether owned contains every id in required. An empty requirement is never owned.
func OwnsAll(owned []string, required []string) bool {
	if len(required) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(owned))
	for _, id := range owned {
		set[id] = struct{}{}
	}
	for _, id := range required {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
