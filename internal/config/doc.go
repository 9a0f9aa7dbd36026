// Package config manages the user configuration file for the bsblan tools.
//
// The configuration stores connection details for known BSB-LAN devices
// (host, port, auth username, whether a passkey is required) and
// application preferences such as the default device and the monitor poll
// interval. Passwords and passkeys are never written to disk; they are
// prompted or passed on the command line when needed.
//
// The file lives in the platform configuration directory
// (e.g. ~/.config/bsblan/config.yaml on Linux) and is written atomically.
package config
