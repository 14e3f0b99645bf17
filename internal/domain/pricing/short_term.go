package pricing

import (
	"github.com/shopspring/decimal"

	"nanny_booking/internal/domain/catalog"
	"nanny_booking/internal/domain/entities"
)

// hourly prices date nights and emergencies. Add-ons raise the hourly rate
// because the services are billed per hour of coverage.
func hourly(p entities.UserPreferences) entities.PricingBreakdown {
	base := catalog.BaseRate(catalog.RateKey{Taxonomy: catalog.TaxonomyHourly, SubType: p.BookingSubType})

	rate := dec(base)
	addOns := []entities.AddOn{}
	for _, row := range selectedAddOns(p, catalog.TaxonomyHourly) {
		price := row.PriceFor(p.HomeSize)
		rate = rate.Add(dec(price))
		addOns = append(addOns, entities.AddOn{Name: row.Name, Price: price})
	}

	hours := dec(TotalHours(p))
	subtotal := rate.Mul(hours)
	fee := dec(catalog.HourlyServiceFee)

	return entities.PricingBreakdown{
		Taxonomy:            string(catalog.TaxonomyHourly),
		BaseRate:            base,
		AddOns:              addOns,
		Total:               roundMoney(subtotal.Add(fee)),
		TotalHours:          ref(hours.InexactFloat64()),
		IsHourly:            true,
		Subtotal:            ref(roundMoney(subtotal)),
		ServiceFee:          ref(catalog.HourlyServiceFee),
		EffectiveHourlyRate: ref(roundMoney(rate)),
		Preview:             true,
	}
}

// temporarySupport prices each selected date at its weekday rate and adds
// per-day services once per date.
func temporarySupport(p entities.UserPreferences) entities.PricingBreakdown {
	days := len(p.SelectedDates)

	dayTotal := decimal.Zero
	for _, d := range p.SelectedDates {
		rate := catalog.TemporaryWeekdayRate
		if t, ok := parseDate(d); ok {
			rate = catalog.DayRate(t.Weekday())
		}
		dayTotal = dayTotal.Add(dec(rate))
	}

	addOnTotal := decimal.Zero
	addOns := []entities.AddOn{}
	for _, row := range selectedAddOns(p, catalog.TaxonomyTemporary) {
		line := dec(row.Price).Mul(decimal.NewFromInt(int64(days)))
		addOnTotal = addOnTotal.Add(line)
		addOns = append(addOns, entities.AddOn{Name: row.Name, Price: roundMoney(line)})
	}

	return entities.PricingBreakdown{
		Taxonomy:   string(catalog.TaxonomyTemporary),
		BaseRate:   roundMoney(dayTotal),
		AddOns:     addOns,
		Total:      roundMoney(dayTotal.Add(addOnTotal)),
		TotalHours: ref(DefaultHours(p.BookingSubType, days)),
		Preview:    true,
	}
}

// daily prices the remaining short-term sub-types (school holidays, day dates)
// at a flat day rate multiplied by the number of selected dates.
func daily(p entities.UserPreferences) entities.PricingBreakdown {
	days := len(p.SelectedDates)
	dependents := catalog.CountDependents(p)

	dailyRate := catalog.BaseRate(catalog.RateKey{Taxonomy: catalog.TaxonomyDaily, Dependents: dependents}) +
		catalog.ExperienceSurcharge(catalog.TaxonomyDaily, p.ExperienceLevel)

	addOnTotal := decimal.Zero
	addOns := []entities.AddOn{}
	for _, row := range selectedAddOns(p, catalog.TaxonomyDaily) {
		addOnTotal = addOnTotal.Add(dec(row.Price))
		addOns = append(addOns, entities.AddOn{Name: row.Name, Price: row.Price})
	}

	total := dec(dailyRate).Add(addOnTotal).Mul(decimal.NewFromInt(int64(days)))
	return entities.PricingBreakdown{
		Taxonomy:   string(catalog.TaxonomyDaily),
		BaseRate:   dailyRate,
		AddOns:     addOns,
		Total:      roundMoney(total),
		TotalHours: ref(DefaultHours(p.BookingSubType, days)),
		Preview:    true,
	}
}
