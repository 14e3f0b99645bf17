// Package pricing computes preview estimates for the booking wizard.
//
// Every function here is pure: the result depends only on the preferences passed
// in and the static rate catalog. Estimates are previews; the booking service
// recomputes the real amounts after a booking is created.
package pricing

import (
	"nanny_booking/internal/domain/catalog"
	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/domain/preferences"
)

// Calculate routes on duration type: short_term goes to the short-term
// calculator, everything else is priced as long-term.
func Calculate(p entities.UserPreferences) entities.PricingBreakdown {
	p = clean(p)
	if p.DurationType == entities.DurationShortTerm {
		return shortTerm(p)
	}
	return longTerm(p, "")
}

// CalculateShortTerm prices the preferences with the short-term rules regardless
// of the stored duration type.
func CalculateShortTerm(p entities.UserPreferences) entities.PricingBreakdown {
	return shortTerm(clean(p))
}

// CalculateLongTerm prices the preferences with the long-term rules.
func CalculateLongTerm(p entities.UserPreferences) entities.PricingBreakdown {
	return longTerm(clean(p), "")
}

// CalculateForProvider previews the monthly price for one candidate before the
// client has committed to a duration type, so it always prices as long-term.
func CalculateForProvider(p entities.UserPreferences, provider entities.SelectedProvider) entities.PricingBreakdown {
	p = clean(p)
	p.DurationType = entities.DurationLongTerm
	return longTerm(p, provider.ID)
}

// clean detaches the document from its owner and normalizes it, so arithmetic
// never observes a half-updated or shared slice.
func clean(p entities.UserPreferences) entities.UserPreferences {
	return preferences.Normalize(p.Clone())
}

func shortTerm(p entities.UserPreferences) entities.PricingBreakdown {
	switch catalog.TaxonomyFor(entities.DurationShortTerm, p.BookingSubType) {
	case catalog.TaxonomyHourly:
		return hourly(p)
	case catalog.TaxonomyTemporary:
		return temporarySupport(p)
	default:
		return daily(p)
	}
}

// selectedAddOns lists the rows of a taxonomy's price list the client asked for.
func selectedAddOns(p entities.UserPreferences, t catalog.Taxonomy) []catalog.AddOnRate {
	var out []catalog.AddOnRate
	for _, row := range catalog.AddOns(t) {
		if catalog.Selected(p, row.Key) {
			out = append(out, row)
		}
	}
	return out
}
