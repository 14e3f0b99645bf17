package pricing

import (
	"github.com/shopspring/decimal"

	"nanny_booking/internal/domain/catalog"
	"nanny_booking/internal/domain/entities"
)

// longTerm prices a monthly arrangement. Light housekeeping is part of the base
// rate and never listed; driving support and the transport requirement are
// separate line items and may both apply.
func longTerm(p entities.UserPreferences, providerID string) entities.PricingBreakdown {
	base := catalog.BaseRate(catalog.RateKey{
		Taxonomy:          catalog.TaxonomyLongTerm,
		HomeSize:          p.HomeSize,
		LivingArrangement: p.LivingArrangement,
		Dependents:        catalog.CountDependents(p),
		Services:          catalog.FlagsOf(p),
	}) + catalog.ExperienceSurcharge(catalog.TaxonomyLongTerm, p.ExperienceLevel)

	total := dec(base)
	addOns := []entities.AddOn{}
	for _, row := range selectedAddOns(p, catalog.TaxonomyLongTerm) {
		total = total.Add(dec(row.Price))
		addOns = append(addOns, entities.AddOn{Name: row.Name, Price: row.Price})
	}

	return entities.PricingBreakdown{
		Taxonomy:   string(catalog.TaxonomyLongTerm),
		BaseRate:   roundMoney(decimal.NewFromFloat(base)),
		AddOns:     addOns,
		Total:      roundMoney(total),
		ProviderID: providerID,
		Preview:    true,
	}
}
