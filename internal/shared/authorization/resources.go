package authorization

// Resources and actions checked by the permission middleware.
const (
	ResourceCatalog  = "catalog"
	ResourceOffer    = "offer"
	ResourceAccess   = "access"
	ResourceCart     = "cart"
	ResourceLibrary  = "library"
	ResourcePurchase = "purchase"

	ActionRead  = "read"
	ActionWrite = "write"
)
