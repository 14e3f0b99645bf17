package entities

import "time"

// Profile is the remote profile record of a client. A zero ClientID means no
// record exists yet.
type Profile struct {
	ClientID    string
	Preferences UserPreferences
	UpdatedAt   time.Time
}
