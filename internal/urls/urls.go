package urls

// Documentation URLs for guides and troubleshooting.
// All URLs point to the upstream BSB-LAN project documentation.

// QuickStart is the guide for wiring a BSB-LAN adapter to the heater
// and bringing its web interface up for the first time.
const QuickStart = "https://docs.bsb-lan.de/quickstart.html"

// ParameterReference documents the numbered parameters exposed by the
// firmware, including which ones each heater family answers.
const ParameterReference = "https://docs.bsb-lan.de/parameters.html"

// AccessControl explains the passkey and HTTP auth settings that gate
// access to the device's HTTP interface.
const AccessControl = "https://docs.bsb-lan.de/configuration.html"
