package entities

const RoleClient = "client"

// Identity describes who drives a booking session.
//
// Authentication happens upstream; an empty ClientID is an anonymous visitor.
type Identity struct {
	SessionID string
	ClientID  string
	Role      string
}

func (i Identity) Authenticated() bool {
	return i.ClientID != ""
}

// CanPersist reports whether preferences may be written to the remote profile.
func (i Identity) CanPersist() bool {
	return i.Authenticated() && i.Role == RoleClient
}

// SessionSnapshot is a consistent copy of a booking session's state.
type SessionSnapshot struct {
	SessionID        string            `json:"session_id"`
	Generation       string            `json:"-"`
	Revision         uint64            `json:"revision"`
	Preferences      UserPreferences   `json:"preferences"`
	SelectedProvider *SelectedProvider `json:"selected_provider,omitempty"`
	Warnings         []string          `json:"warnings,omitempty"`
}
