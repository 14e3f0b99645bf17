package request

import (
	"errors"
	"strings"

	"nanny_booking/internal/domain/entities"
)

var (
	ErrEmptyPatch = errors.New("preferences patch sets no field")
)

// UpdatePreferencesRequest is the body of PATCH /v1/preferences. Field names
// follow the wizard document; an omitted field keeps its current value.
type UpdatePreferencesRequest struct {
	entities.PreferencesPatch
}

// ToPatch returns the domain patch, rejecting a body that sets nothing.
func (r UpdatePreferencesRequest) ToPatch() (entities.PreferencesPatch, error) {
	if r.PreferencesPatch == (entities.PreferencesPatch{}) {
		return entities.PreferencesPatch{}, ErrEmptyPatch
	}
	return r.PreferencesPatch, nil
}

// ProviderRequest carries a nanny candidate as returned by the provider search.
type ProviderRequest struct {
	ID       string         `json:"id" binding:"required"`
	Profiles map[string]any `json:"profiles"`
	Services map[string]any `json:"services"`
}

func (r ProviderRequest) ToProvider() entities.SelectedProvider {
	return entities.SelectedProvider{
		ID:       strings.TrimSpace(r.ID),
		Profiles: r.Profiles,
		Services: r.Services,
	}
}

// ProviderPreviewRequest optionally names the candidate to price. Without one
// the session's selected provider is used.
type ProviderPreviewRequest struct {
	ID       string         `json:"id"`
	Profiles map[string]any `json:"profiles"`
	Services map[string]any `json:"services"`
}

func (r ProviderPreviewRequest) ToProvider() *entities.SelectedProvider {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return nil
	}
	return &entities.SelectedProvider{ID: id, Profiles: r.Profiles, Services: r.Services}
}
