// Package tui implements the interactive heating monitor.
//
// The monitor is a bubbletea program that polls the device's heating
// state on a fixed interval and renders target temperature, measured
// room temperature, and the HVAC operating mode. The poll interval comes
// from user preferences; 'r' forces an immediate refresh.
package tui
