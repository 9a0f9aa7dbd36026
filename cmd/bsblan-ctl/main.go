// Bsblan-ctl is a control utility for BSB-LAN heating controllers.
//
// It talks to the device's local HTTP/JSON interface to read the current
// heating state and static device information, change the thermostat
// setpoint and operating mode, and run a live terminal monitor.
//
// Usage:
//
//	bsblan-ctl [command] [flags]
//
// See 'bsblan-ctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/bsblan/internal/logging"
	"github.com/muurk/bsblan/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bsblan-ctl",
	Short: "BSB-LAN Heating Controller Utility",
	Long: `A standalone utility for BSB-LAN heating controllers.

Reads the current heating state and device information, changes the
thermostat target temperature and HVAC mode, and provides a live
terminal monitor. Devices can be registered once with 'bsblan-ctl
devices add' and addressed by name afterwards.`,
	Version: version.Version,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bsblan-ctl %s (commit: %s)\n", version.Version, version.Commit)
	},
}
