package domain

// Settings holds per-installation preferences.
type Settings struct {
	DarkMode bool `json:"darkMode"`
}

// DefaultSettings returns the settings used when nothing has been persisted.
func DefaultSettings() *Settings {
	return &Settings{DarkMode: false}
}
