package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/bsblan/internal/bsblan"
	"github.com/muurk/bsblan/internal/config"
	"github.com/muurk/bsblan/internal/tui"
	"github.com/muurk/bsblan/internal/urls"
)

// Connection command flags
var (
	deviceHost   string
	devicePort   int
	timeoutSecs  int
	username     string
	password     string
	passkey      string
	outputFormat string
	pollInterval int
)

func init() {
	// Common flags for device commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&deviceHost, "host", "", "Device hostname, IP address, or registered device name")
	rootCmd.PersistentFlags().IntVar(&devicePort, "port", bsblan.DefaultPort, "Device HTTP port")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", 10, "Request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "HTTP Basic Auth username")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "HTTP Basic Auth password (prompted if username is set without it)")
	rootCmd.PersistentFlags().StringVar(&passkey, "passkey", "", "Access key embedded in the device URL path")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setTempCmd)
	rootCmd.AddCommand(setModeCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(devicesCmd)
}

// stateCmd reads the current heating state
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show current heating state",
	Long: `Read the current heating state from a BSB-LAN device.

The first read scans the device to discover which parameters the attached
heater answers; the discovered set is reused for the rest of the process.`,
	Example: `  # Read state from a device
  bsblan-ctl state --host 10.0.1.60

  # JSON output for scripting
  bsblan-ctl state --host 10.0.1.60 --format json`,
	RunE: runState,
}

func runState(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	state, err := client.State()
	if err != nil {
		return describeError(err)
	}

	switch outputFormat {
	case "compact":
		fmt.Println(state.FormatCompact())
	case "json":
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		fmt.Println(state.FormatDetailed())
	}

	return nil
}

// infoCmd reads static device information
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device information",
	Long: `Read static identification of the heating controller: the device
model string, family, and variant. These values do not depend on the
parameter scan.`,
	Example: `  bsblan-ctl info --host 10.0.1.60`,
	RunE:    runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if err != nil {
		return describeError(err)
	}

	switch outputFormat {
	case "compact":
		fmt.Println(info.FormatCompact())
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		fmt.Println(info.FormatDetailed())
	}

	return nil
}

// scanCmd re-runs parameter discovery
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover queryable parameters",
	Long: `Scan the device to discover which state parameters the attached
heater answers. Scanning is normally implicit on the first state read;
this command forces a fresh scan and prints the discovered set.`,
	Example: `  bsblan-ctl scan --host 10.0.1.60`,
	RunE:    runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	parameters, err := client.Scan()
	if err != nil {
		return describeError(err)
	}

	if parameters == "" {
		fmt.Println("No parameters returned a value.")
		fmt.Println("\nThe heater may not support the standard heating circuit")
		fmt.Println("parameters. See " + urls.ParameterReference)
		return nil
	}

	fmt.Printf("Queryable parameters: %s\n", parameters)
	return nil
}

// getCmd queries arbitrary parameters
var getCmd = &cobra.Command{
	Use:   "get <parameters>",
	Short: "Query arbitrary parameters",
	Long: `Query one or more parameters by ID and print the raw readings in
device order. Parameter IDs are comma-separated.

See ` + urls.ParameterReference + ` for the full parameter list.`,
	Example: `  # Operating mode and setpoint
  bsblan-ctl get 700,710 --host 10.0.1.60

  # Boiler temperature
  bsblan-ctl get 8310 --host 10.0.1.60 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	params, err := client.Query(args[0])
	if err != nil {
		return describeError(err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(params, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(bsblan.FormatParameterMap(params))
	return nil
}

// setTempCmd writes the thermostat target temperature
var setTempCmd = &cobra.Command{
	Use:   "set-temp <temperature>",
	Short: "Set the thermostat target temperature",
	Long: `Set the comfort setpoint of the heating circuit.

The temperature is a decimal value in the controller's configured unit
(degrees Celsius on most installations).`,
	Example: `  bsblan-ctl set-temp 19.0 --host 10.0.1.60`,
	Args:    cobra.ExactArgs(1),
	RunE:    runSetTemp,
}

func runSetTemp(cmd *cobra.Command, args []string) error {
	value := args[0]
	if err := bsblan.ValidateTargetTemperature(value); err != nil {
		return err
	}

	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Printf("Setting target temperature to %s on %s:%d...\n", value, client.Host, client.Port)

	if err := client.Thermostat(value, ""); err != nil {
		return describeError(err)
	}

	fmt.Println("✓ Target temperature set")
	return nil
}

// setModeCmd writes the thermostat HVAC mode
var setModeCmd = &cobra.Command{
	Use:   "set-mode <mode>",
	Short: "Set the thermostat HVAC mode",
	Long: `Set the operating mode of the heating circuit.

Modes can be given by number or name:
  0, protection  frost protection only
  1, automatic   follows the time program
  2, reduced     setback temperature
  3, comfort     comfort temperature`,
	Example: `  bsblan-ctl set-mode comfort --host 10.0.1.60
  bsblan-ctl set-mode 1 --host 10.0.1.60`,
	Args: cobra.ExactArgs(1),
	RunE: runSetMode,
}

func runSetMode(cmd *cobra.Command, args []string) error {
	mode := resolveModeName(args[0])
	if err := bsblan.ValidateHVACMode(mode); err != nil {
		return err
	}

	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Printf("Setting HVAC mode to %s (%s) on %s:%d...\n",
		mode, bsblan.HVACModeNames[mode], client.Host, client.Port)

	if err := client.Thermostat("", mode); err != nil {
		return describeError(err)
	}

	fmt.Println("✓ HVAC mode set")
	return nil
}

// resolveModeName maps a mode name to its enum value; numeric input is
// passed through for validation.
func resolveModeName(input string) string {
	needle := strings.ToLower(input)
	for value, name := range bsblan.HVACModeNames {
		if name == needle {
			return value
		}
	}
	return input
}

// monitorCmd launches the live heating monitor
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Launch the live heating monitor",
	Long: `Launch a terminal monitor that polls the heating state on an
interval and shows target temperature, room temperature, and HVAC mode.

Press 'r' for an immediate refresh and 'q' to quit.`,
	Example: `  # Poll every 30 seconds (default)
  bsblan-ctl monitor --host 10.0.1.60

  # Faster polling
  bsblan-ctl monitor --host 10.0.1.60 --interval 10`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().IntVar(&pollInterval, "interval", 0, "Poll interval in seconds (default from config, else 30)")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	interval := pollInterval
	if interval <= 0 {
		interval = 30
		if registry, err := config.LoadRegistry(); err == nil && registry.Preferences != nil {
			if registry.Preferences.PollInterval > 0 {
				interval = registry.Preferences.PollInterval
			}
		}
	}

	return tui.RunMonitor(client, time.Duration(interval)*time.Second)
}

// devicesCmd manages the device registry
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List registered devices",
	Long: `List devices registered in the configuration file. Registered
devices can be addressed by name via --host, and one of them can be made
the default for commands run without --host.`,
	RunE: runDevicesList,
}

var devicesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a device",
	Long: `Register a device under a name. The current --host, --port,
--username, and --passkey flags are recorded; passwords and passkey
values are never stored, only whether a passkey is required.`,
	Example: `  bsblan-ctl devices add attic --host 10.0.1.60 --username admin
  bsblan-ctl state --host attic`,
	Args: cobra.ExactArgs(1),
	RunE: runDevicesAdd,
}

var devicesDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default device",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevicesDefault,
}

func init() {
	devicesCmd.AddCommand(devicesAddCmd)
	devicesCmd.AddCommand(devicesDefaultCmd)
}

func runDevicesList(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	if len(registry.Devices) == 0 {
		fmt.Println("No devices registered.")
		fmt.Println("Use 'bsblan-ctl devices add <name> --host <ip>' to register one.")
		return nil
	}

	names := make([]string, 0, len(registry.Devices))
	for name := range registry.Devices {
		names = append(names, name)
	}
	sort.Strings(names)

	defaultName := ""
	if registry.Preferences != nil {
		defaultName = registry.Preferences.DefaultDevice
	}

	for _, name := range names {
		device := registry.Devices[name]
		marker := " "
		if name == defaultName {
			marker = "*"
		}
		port := device.Port
		if port == 0 {
			port = bsblan.DefaultPort
		}
		fmt.Printf("%s %-16s %s:%d", marker, name, device.Host, port)
		if device.Username != "" {
			fmt.Printf("  (auth: %s)", device.Username)
		}
		if device.NeedsPasskey {
			fmt.Print("  (passkey)")
		}
		fmt.Println()
	}

	return nil
}

func runDevicesAdd(cmd *cobra.Command, args []string) error {
	if deviceHost == "" {
		return fmt.Errorf("--host is required to register a device")
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	name := args[0]
	registry.Devices[name] = &config.Device{
		Host:         deviceHost,
		Port:         devicePort,
		Username:     username,
		NeedsPasskey: passkey != "",
		LastSeen:     time.Now(),
	}

	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("✓ Registered device %q (%s:%d)\n", name, deviceHost, devicePort)
	return nil
}

func runDevicesDefault(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	name := args[0]
	if _, ok := registry.Lookup(name); !ok {
		return fmt.Errorf("unknown device %q - register it first with 'bsblan-ctl devices add'", name)
	}

	if registry.Preferences == nil {
		registry.Preferences = &config.Preferences{}
	}
	registry.Preferences.DefaultDevice = name

	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("✓ Default device set to %q\n", name)
	return nil
}

// buildClient resolves connection details from flags and the device
// registry and returns a configured client.
func buildClient() (*bsblan.Client, error) {
	host := deviceHost
	port := devicePort
	user := username
	needsPasskey := passkey != ""

	registry, regErr := config.LoadRegistry()

	if host == "" {
		if regErr != nil {
			return nil, regErr
		}
		device, ok := registry.DefaultDevice()
		if !ok {
			return nil, fmt.Errorf("no --host given and no default device configured")
		}
		host, port, user, needsPasskey = applyDeviceEntry(device, port, user, needsPasskey)
	} else if regErr == nil {
		// --host may name a registered device
		if device, ok := registry.Lookup(host); ok {
			host, port, user, needsPasskey = applyDeviceEntry(device, port, user, needsPasskey)
		}
	}

	client := bsblan.NewClient(host, port)
	client.SetTimeout(time.Duration(timeoutSecs) * time.Second)

	key := passkey
	if needsPasskey && key == "" {
		var err error
		key, err = promptSecret(fmt.Sprintf("Passkey for %s: ", host))
		if err != nil {
			return nil, err
		}
	}
	client.SetPasskey(key)

	if user != "" {
		pass := password
		if pass == "" {
			var err error
			pass, err = promptSecret(fmt.Sprintf("Password for %s@%s: ", user, host))
			if err != nil {
				return nil, err
			}
		}
		client.SetAuth(user, pass)
	}

	return client, nil
}

func applyDeviceEntry(device *config.Device, port int, user string, needsPasskey bool) (string, int, string, bool) {
	if device.Port != 0 {
		port = device.Port
	}
	if user == "" {
		user = device.Username
	}
	return device.Host, port, user, needsPasskey || device.NeedsPasskey
}

// promptSecret reads a secret from the terminal without echo. Outside a
// terminal there is nothing to prompt, so the secret stays empty and the
// library's no-auth behavior applies.
func promptSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(secret), nil
}

// describeError augments device errors with troubleshooting hints.
func describeError(err error) error {
	switch {
	case bsblan.IsProtocolError(err):
		return fmt.Errorf("%s\n\nThe device answered, but not with JSON. If a passkey or HTTP auth\nis configured on the device, pass it with --passkey or --username.\nSee %s", bsblan.GetShortErrorMessage(err), urls.AccessControl)
	case bsblan.IsConnectionError(err):
		return fmt.Errorf("%s\n\nCheck that the device is powered and reachable, and that host and\nport are correct. See %s", bsblan.GetShortErrorMessage(err), urls.QuickStart)
	default:
		return err
	}
}
