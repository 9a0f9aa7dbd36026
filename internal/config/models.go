package config

import "time"

// Registry represents the entire user configuration file.
// This stores connection details for known devices and application
// preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Devices     map[string]*Device `yaml:"devices,omitempty"` // Keyed by user-chosen device name
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Device represents a known BSB-LAN device.
// Secrets are never stored: NeedsPasskey only records that a passkey must
// be supplied, and auth passwords are always prompted.
type Device struct {
	Host         string    `yaml:"host"`                    // Hostname or IP address
	Port         int       `yaml:"port,omitempty"`          // HTTP port (default 80)
	Username     string    `yaml:"username,omitempty"`      // HTTP Basic Auth username
	NeedsPasskey bool      `yaml:"needs_passkey,omitempty"` // Device expects a path passkey
	Nickname     string    `yaml:"nickname,omitempty"`      // User-friendly name
	LastSeen     time.Time `yaml:"last_seen,omitempty"`     // Last successful connection
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultDevice string `yaml:"default_device,omitempty"` // Device used when --host is absent
	PollInterval  int    `yaml:"poll_interval"`            // Monitor poll interval in seconds
	TimeoutSecs   int    `yaml:"timeout"`                  // Request timeout in seconds
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Devices: make(map[string]*Device),
		Preferences: &Preferences{
			PollInterval: 30,
			TimeoutSecs:  10,
		},
	}
}
