// Package catalog holds the static rate tables of the booking engine.
//
// Tables are plain data; callers get copies and cannot mutate them.
package catalog

import "nanny_booking/internal/domain/entities"

// Taxonomy selects a pricing algorithm and the rate/add-on tables it uses.
type Taxonomy string

const (
	TaxonomyHourly    Taxonomy = "short_term_hourly"
	TaxonomyTemporary Taxonomy = "short_term_temporary"
	TaxonomyDaily     Taxonomy = "short_term_daily"
	TaxonomyLongTerm  Taxonomy = "long_term"
)

// PriceUnit is the billing unit of a rate.
type PriceUnit string

const (
	PerHour  PriceUnit = "hour"
	PerDay   PriceUnit = "day"
	PerMonth PriceUnit = "month"
)

// TaxonomyFor maps a (durationType, bookingSubType) pair to its taxonomy.
// Anything that is not short_term prices as long-term.
func TaxonomyFor(d entities.DurationType, sub entities.BookingSubType) Taxonomy {
	if d != entities.DurationShortTerm {
		return TaxonomyLongTerm
	}
	switch sub {
	case entities.SubTypeDateNight, entities.SubTypeEmergency:
		return TaxonomyHourly
	case entities.SubTypeTemporarySupport:
		return TaxonomyTemporary
	default:
		return TaxonomyDaily
	}
}

// Unit returns the billing unit of the taxonomy.
func (t Taxonomy) Unit() PriceUnit {
	switch t {
	case TaxonomyHourly:
		return PerHour
	case TaxonomyLongTerm:
		return PerMonth
	default:
		return PerDay
	}
}
