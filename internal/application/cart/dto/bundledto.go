package dto

import "github.com/lumen-edu/lumen/internal/domain/cart"

type BundleOpportunityDTO struct {
	SubjectID       string   `json:"subject_id"`
	SubjectTitle    string   `json:"subject_title"`
	BundlePrice     string   `json:"bundle_price"`
	IndividualTotal string   `json:"individual_total"`
	Savings         string   `json:"savings"`
	CartItemIDs     []string `json:"cart_item_ids"`
	ContentTypeIDs  []string `json:"content_type_ids"`
}

func ToBundleOpportunityDTOList(opps []cart.BundleOpportunity) []*BundleOpportunityDTO {
	out := make([]*BundleOpportunityDTO, 0, len(opps))
	for _, o := range opps {
		out = append(out, &BundleOpportunityDTO{
			SubjectID:       o.SubjectID,
			SubjectTitle:    o.SubjectTitle,
			BundlePrice:     FormatMoney(o.BundlePrice),
			IndividualTotal: FormatMoney(o.IndividualTotal),
			Savings:         FormatMoney(o.Savings),
			CartItemIDs:     o.CartItemIDs,
			ContentTypeIDs:  o.ContentTypeIDs,
		})
	}
	return out
}
