// Package urls centralizes links to external BSB-LAN documentation
// referenced from CLI output.
package urls
