package response

import "nanny_booking/internal/domain/entities"

type ProviderResponse struct {
	ID       string         `json:"id"`
	Profiles map[string]any `json:"profiles,omitempty"`
	Services map[string]any `json:"services,omitempty"`
}

// SessionResponse renders a session snapshot. Warnings are persistence
// problems raised since the previous response and never block the wizard.
type SessionResponse struct {
	SessionID        string                   `json:"session_id"`
	Revision         uint64                   `json:"revision"`
	Preferences      entities.UserPreferences `json:"preferences"`
	SelectedProvider *ProviderResponse        `json:"selected_provider,omitempty"`
	Warnings         []string                 `json:"warnings"`
}

func FromSnapshot(s entities.SessionSnapshot) SessionResponse {
	res := SessionResponse{
		SessionID:   s.SessionID,
		Revision:    s.Revision,
		Preferences: s.Preferences,
		Warnings:    s.Warnings,
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}
	if s.SelectedProvider != nil {
		res.SelectedProvider = &ProviderResponse{
			ID:       s.SelectedProvider.ID,
			Profiles: s.SelectedProvider.Profiles,
			Services: s.SelectedProvider.Services,
		}
	}
	return res
}
