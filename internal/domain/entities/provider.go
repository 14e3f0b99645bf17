package entities

import "time"

// SelectedProvider is the nanny candidate picked in the wizard.
//
// It is supplied by the caller as-is; the session only holds it transiently and
// mirrors it to the recovery cache together with the selection time.
type SelectedProvider struct {
	ID       string         `json:"id"`
	Profiles map[string]any `json:"profiles,omitempty"`
	Services map[string]any `json:"services,omitempty"`
}

// CachedSelection is the recovery cache entry for a selected provider.
// A zero Timestamp means the entry predates timestamps and must be discarded.
type CachedSelection struct {
	Provider  SelectedProvider `json:"provider"`
	Timestamp time.Time        `json:"timestamp"`
}

// Fresh reports whether the selection is younger than ttl at now.
func (c CachedSelection) Fresh(now time.Time, ttl time.Duration) bool {
	if c.Timestamp.IsZero() || c.Provider.ID == "" {
		return false
	}
	age := now.Sub(c.Timestamp)
	return age >= 0 && age < ttl
}
