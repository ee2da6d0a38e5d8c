package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rafaelsanzio/zxcvbn"
	"github.com/rafaelsanzio/zxcvbn/internal/rules"
)

// Exit codes returned by [run].
const (
	exitOK         = 0 // success
	exitError      = 1 // runtime or check error
	exitUsageError = 2 // invalid arguments
)

// options holds the parsed CLI flags and arguments.
type options struct {
	password   string
	userInputs []string
	json       bool
	verbose    bool
	noColor    bool
	help       bool
	showVer    bool
	policy     bool
	minLength  int // 0 = use rules.DefaultOptions
}

// parseArgs parses command-line arguments into options.
//
// Flags (--flag or -f) can appear anywhere; the first non-flag argument
// is the password, and every non-flag argument after that is an extra
// user input folded into the per-call dictionary. Use "--" to stop flag
// parsing (useful for passwords starting with a dash).
func parseArgs(args []string) (options, error) {
	var opts options
	flagsDone := false

	for _, arg := range args {
		if arg == "--" && !flagsDone {
			flagsDone = true
			continue
		}

		if !flagsDone && strings.HasPrefix(arg, "-") {
			switch {
			case arg == "--json":
				opts.json = true
			case arg == "--verbose" || arg == "-v":
				opts.verbose = true
			case arg == "--no-color":
				opts.noColor = true
			case arg == "--policy":
				opts.policy = true
			case arg == "--help" || arg == "-h":
				opts.help = true
			case arg == "--version":
				opts.showVer = true
			case strings.HasPrefix(arg, "--min-length="):
				val := strings.TrimPrefix(arg, "--min-length=")
				n, err := strconv.Atoi(val)
				if err != nil || n < 1 {
					return opts, fmt.Errorf("invalid --min-length value: %q (must be a positive integer)", val)
				}
				opts.minLength = n
			default:
				return opts, fmt.Errorf("unknown flag: %s\nRun 'zxcvbn --help' for usage", arg)
			}
			continue
		}

		if opts.password == "" {
			opts.password = arg
		} else {
			opts.userInputs = append(opts.userInputs, arg)
		}
	}

	return opts, nil
}

// run executes the CLI logic and returns the exit code.
func run(stdout, stderr io.Writer, args []string, envNoColor bool) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsageError
	}

	if opts.help {
		printHelp(stdout)
		return exitOK
	}

	if opts.showVer {
		fmt.Fprintf(stdout, "zxcvbn %s\n", version)
		return exitOK
	}

	if opts.password == "" {
		fmt.Fprintln(stderr, "Error: password argument required")
		fmt.Fprintln(stderr, "Run 'zxcvbn --help' for usage")
		return exitError
	}

	cfg := zxcvbn.DefaultConfig()
	userInputs := make([]any, len(opts.userInputs))
	for i, s := range opts.userInputs {
		userInputs[i] = s
	}

	result, err := zxcvbn.AnalyzeWithConfig(opts.password, userInputs, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	var policyIssues []string
	if opts.policy {
		ropts := rules.DefaultOptions()
		if opts.minLength > 0 {
			ropts.MinLength = opts.minLength
		}
		policyIssues = rules.CheckWith(opts.password, ropts)
	}

	if opts.json {
		return printJSON(stdout, stderr, result, policyIssues)
	}

	useColor := !opts.noColor && !envNoColor
	printResult(stdout, result, opts, policyIssues, useColor)
	return exitOK
}

// printResult writes the formatted human-readable result.
func printResult(w io.Writer, r zxcvbn.Result, opts options, policyIssues []string, useColor bool) {
	fmt.Fprintf(w, "Score:   %s\n", scoreMeter(r.Score, useColor))
	fmt.Fprintf(w, "Guesses: %.3g (log10 %.2f)\n", r.Guesses, r.GuessesLog10)
	fmt.Fprintf(w, "Crack time (offline, fast hashing): %s\n", r.CrackTimesDisplay.OfflineFastHashing1e10PerSec)
	fmt.Fprintf(w, "Crack time (online, throttled):     %s\n", r.CrackTimesDisplay.OnlineThrottling100PerHour)

	if opts.verbose {
		fmt.Fprintf(w, "\nMatch sequence (%d):\n", len(r.Sequence))
		for _, m := range r.Sequence {
			fmt.Fprintf(w, "  - [%d,%d] %-10s %q (guesses %.3g)\n", m.I, m.J, m.Pattern, m.Token, m.Guesses)
		}
	}

	if r.Feedback.Warning != "" {
		warning := r.Feedback.Warning
		if useColor {
			warning = colorize(warning, ansiRed)
		}
		fmt.Fprintf(w, "\nWarning: %s\n", warning)
	}
	if len(r.Feedback.Suggestions) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range r.Feedback.Suggestions {
			marker := "  - "
			if useColor {
				marker = "  " + colorize("-", ansiGreen) + " "
			}
			fmt.Fprintf(w, "%s%s\n", marker, s)
		}
	}

	if len(policyIssues) > 0 {
		fmt.Fprintln(w, "\nPolicy issues:")
		for _, iss := range policyIssues {
			marker := "  - "
			if useColor {
				marker = "  " + colorize("-", ansiYellow) + " "
			}
			fmt.Fprintf(w, "%s%s\n", marker, iss)
		}
	}
}

// jsonResult is the JSON-serializable CLI output, extending the library
// Result with the optional policy-check issues.
type jsonResult struct {
	zxcvbn.Result
	PolicyIssues []string `json:"policy_issues,omitempty"`
}

// printJSON encodes the result as indented JSON.
func printJSON(stdout, stderr io.Writer, r zxcvbn.Result, policyIssues []string) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonResult{Result: r, PolicyIssues: policyIssues}); err != nil {
		fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
		return exitError
	}
	return exitOK
}

// printHelp writes the CLI usage information.
func printHelp(w io.Writer) {
	fmt.Fprintf(w, `zxcvbn %s - Password strength estimator

Usage:
  zxcvbn <password> [user-input...] [flags]

Flags:
  --json              Output result as JSON
  --verbose, -v       Show the full match sequence
  --no-color          Disable colored output
  --policy            Also run a composition-rule check (length/charset/repeats)
  --min-length=N      Minimum length for --policy (default: 12)
  --version           Show version
  --help, -h          Show this help message

Environment:
  NO_COLOR            Set to any value to disable colored output

Examples:
  zxcvbn "MyP@ssw0rd123!"
  zxcvbn "qwerty" --json
  zxcvbn "alice2024" alice alice@example.com --verbose
  zxcvbn -- "-dashpassword"
`, version)
}
