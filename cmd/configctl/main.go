// configctl is a CLI tool for inspecting gateway configurations.
// Each command performs a single operation, making it composable for scripts.
//
// Commands:
//
//	configctl parse -file PATH [-raw] [-feature NAME]...
//	configctl check -file PATH [-feature NAME]...
//	configctl summary -merchant ID [-feature NAME]...
//	configctl document -merchant ID
//	configctl feature -merchant ID -feature NAME
//	configctl merchants
//
// Commands other than parse talk to a configd given by -server.
//
// Examples:
//
//	configctl parse -file ./acme.json -feature tokenize_credit_cards
//	configctl document -merchant acme -q | configctl check -file - -server https://configd.example -chrome-tls
//	configctl feature -server http://localhost:8080 -merchant acme -feature tokenize_credit_cards -q
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gateway-config/internal/client"
	"gateway-config/internal/configuration"
	"gateway-config/internal/model"
	"gateway-config/internal/transport"
)

// Global flags (apply to all commands)
var (
	serverURL  string
	sdkVersion string
	chromeTLS  bool
	timeout    time.Duration
	quiet      bool
	noColor    bool
	verbose    bool
)

// ANSI color codes
var (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

func init() {
	if os.Getenv("NO_COLOR") != "" {
		disableColors()
	}
}

func disableColors() {
	colorReset, colorRed, colorGreen, colorYellow = "", "", "", ""
	colorCyan, colorGray = "", ""
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "parse":
		runParse(args)
	case "summary":
		runSummary(args)
	case "document":
		runDocument(args)
	case "check":
		runCheck(args)
	case "feature":
		runFeature(args)
	case "merchants":
		runMerchants(args)
	case "-h", "-help", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `configctl - gateway configuration inspection tool

Usage:
  configctl <command> [options]

Commands:
  parse      Parse a configuration document locally and print its summary
  check      Validate a configuration document with a remote configd
  summary    Print the summary of a merchant's installed configuration
  document   Print a merchant's configuration document as installed
  feature    Report whether a GraphQL feature is enabled for a merchant
  merchants  List merchants with an installed configuration

Examples:
  # Validate a document without a server
  configctl parse -file acme.json

  # Echo the document back exactly as parsed
  configctl parse -file acme.json -raw

  # Summarize with feature checks
  configctl summary -server http://localhost:8080 -merchant acme -feature tokenize_credit_cards

  # Script-friendly feature check (prints true/false)
  configctl feature -merchant acme -feature tokenize_credit_cards -q

Run 'configctl <command> -h' for command-specific options.
`)
}

// featureList collects repeated -feature flags.
type featureList []string

func (f *featureList) String() string { return strings.Join(*f, ",") }

func (f *featureList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errors.New("feature name must not be empty")
	}
	*f = append(*f, v)
	return nil
}

// newFlagSet registers the flags shared by every command.
func newFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&serverURL, "server", client.DefaultBaseURL, "configd base URL")
	fs.StringVar(&sdkVersion, "sdk-version", client.DefaultSDKVersion, "SDK version sent in SDK-Client")
	fs.BoolVar(&chromeTLS, "chrome-tls", false, "Present a Chrome TLS fingerprint to https servers")
	fs.DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	fs.BoolVar(&quiet, "q", false, "Quiet mode - minimal output")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&verbose, "v", false, "Verbose - show full output")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: configctl %s\n\nOptions:\n", usage)
		fs.PrintDefaults()
	}
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) {
	fs.Parse(args)
	if noColor {
		disableColors()
	}
}

func newClient() *client.Client {
	cfg := client.Config{
		BaseURL:    serverURL,
		Timeout:    timeout,
		SDKVersion: sdkVersion,
	}
	if chromeTLS {
		cfg.Transport = transport.NewChromeTransport(transport.Options{})
	}

	c, err := client.New(cfg)
	if err != nil {
		fatal("Invalid client settings: %v", err)
	}
	return c
}

// =============================================================================
// PARSE / CHECK COMMANDS
// =============================================================================

// runParse parses a document in-process. No server is contacted.
func runParse(args []string) {
	fs := newFlagSet("parse", "parse -file PATH [-raw] [-feature NAME]...")
	var file string
	var raw bool
	var features featureList
	fs.StringVar(&file, "file", "", "Configuration document path, - for stdin (required)")
	fs.BoolVar(&raw, "raw", false, "Print the document as parsed instead of the summary")
	fs.Var(&features, "feature", "GraphQL feature to check (repeatable)")
	parseFlags(fs, args)

	if file == "" {
		fs.Usage()
		os.Exit(1)
	}

	doc, err := readDocument(file)
	if err != nil {
		fatal("Failed to read document: %v", err)
	}

	cfg, err := configuration.Parse(doc)
	if err != nil {
		fatal("Invalid configuration: %v", err)
	}

	if raw {
		fmt.Println(cfg.ToJSON())
		return
	}

	printSuccess("Configuration valid for merchant %s", cfg.MerchantID())
	printSummary(model.NewSummary(cfg, features...))
}

// runCheck asks a remote configd to validate a document.
func runCheck(args []string) {
	fs := newFlagSet("check", "check -file PATH [-server URL] [-feature NAME]...")
	var file string
	var features featureList
	fs.StringVar(&file, "file", "", "Configuration document path, - for stdin (required)")
	fs.Var(&features, "feature", "GraphQL feature to check (repeatable)")
	parseFlags(fs, args)

	if file == "" {
		fs.Usage()
		os.Exit(1)
	}

	doc, err := readDocument(file)
	if err != nil {
		fatal("Failed to read document: %v", err)
	}

	summary, err := newClient().Parse(context.Background(), doc, features...)
	if err != nil {
		reportError("Invalid configuration", err)
	}

	printSuccess("Server accepted configuration for merchant %s", summary.MerchantID)
	printSummary(summary)
}

// readDocument reads path, or stdin when path is "-".
func readDocument(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// =============================================================================
// MERCHANT COMMANDS
// =============================================================================

func runSummary(args []string) {
	fs := newFlagSet("summary", "summary -merchant ID [-feature NAME]...")
	var merchantID string
	var features featureList
	fs.StringVar(&merchantID, "merchant", "", "Merchant ID (required)")
	fs.Var(&features, "feature", "GraphQL feature to check (repeatable)")
	parseFlags(fs, args)

	if merchantID == "" {
		fs.Usage()
		os.Exit(1)
	}

	summary, err := newClient().Summary(context.Background(), merchantID, features...)
	if err != nil {
		reportError("Failed to fetch summary", err)
	}
	printSummary(summary)
}

func runDocument(args []string) {
	fs := newFlagSet("document", "document -merchant ID")
	var merchantID string
	fs.StringVar(&merchantID, "merchant", "", "Merchant ID (required)")
	parseFlags(fs, args)

	if merchantID == "" {
		fs.Usage()
		os.Exit(1)
	}

	doc, err := newClient().Document(context.Background(), merchantID)
	if err != nil {
		reportError("Failed to fetch document", err)
	}

	// Raw bytes in quiet mode so the output can be piped back into parse.
	if quiet {
		os.Stdout.Write(doc)
		return
	}
	printJSON(doc, "")
}

func runFeature(args []string) {
	fs := newFlagSet("feature", "feature -merchant ID -feature NAME")
	var merchantID, feature string
	fs.StringVar(&merchantID, "merchant", "", "Merchant ID (required)")
	fs.StringVar(&feature, "feature", "", "GraphQL feature (required)")
	parseFlags(fs, args)

	if merchantID == "" || feature == "" {
		fs.Usage()
		os.Exit(1)
	}

	enabled, err := newClient().FeatureEnabled(context.Background(), merchantID, feature)
	if err != nil {
		reportError("Failed to check feature", err)
	}

	if quiet {
		fmt.Println(enabled)
		return
	}
	if enabled {
		printSuccess("%s is enabled for %s", feature, merchantID)
	} else {
		printWarning("%s is not enabled for %s", feature, merchantID)
	}
}

func runMerchants(args []string) {
	fs := newFlagSet("merchants", "merchants")
	parseFlags(fs, args)

	ids, err := newClient().Merchants(context.Background())
	if err != nil {
		reportError("Failed to list merchants", err)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	printInfo("%d merchant(s)", len(ids))
}

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

func printSummary(summary *model.Summary) {
	data, err := json.Marshal(summary)
	if err != nil {
		fatal("Failed to encode summary: %v", err)
	}
	printJSON(data, "")
}

func printJSON(data []byte, prefix string) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, prefix, "  "); err != nil {
		fmt.Printf("%s%s\n", prefix, string(data))
		return
	}

	output := pretty.String()
	if !verbose {
		lines := strings.Split(output, "\n")
		if len(lines) > 60 {
			lines = append(lines[:50], fmt.Sprintf("%s  %s(%d more lines, use -v for full output)%s", prefix, colorGray, len(lines)-50, colorReset))
			output = strings.Join(lines, "\n")
		}
	}
	fmt.Println(output)
}

func printSuccess(format string, args ...any) {
	if !quiet {
		fmt.Printf("%s✓ %s%s\n", colorGreen, fmt.Sprintf(format, args...), colorReset)
	}
}

func printWarning(format string, args ...any) {
	fmt.Printf("%s⚠ %s%s\n", colorYellow, fmt.Sprintf(format, args...), colorReset)
}

func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stderr, "%s→ %s%s\n", colorGray, fmt.Sprintf(format, args...), colorReset)
	}
}

// reportError prints err with its API code when available and exits.
func reportError(action string, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		fatal("%s: %s%s%s %s", action, colorCyan, apiErr.Code, colorRed, apiErr.Message)
	}
	fatal("%s: %v", action, err)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s✗ %s%s\n", colorRed, fmt.Sprintf(format, args...), colorReset)
	os.Exit(1)
}
