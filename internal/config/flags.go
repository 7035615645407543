package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// configFileFlag extracts the config file path from -c/-config, ignoring
// every other argument so it can run before the main flag overlay.
func configFileFlag() string {
	var file string

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&file, "config", "", "path to config file")
	fs.StringVar(&file, "c", "", "path to config file (short)")
	_ = fs.Parse(filterArgs(os.Args[1:], []string{"-c", "-config"}))

	return file
}

// parseFlags overlays cfg with values from command-line flags.
//
// Supported flags:
//
//	-a string      base URL of the job-board API
//	-t string      path of the token file
//	-timeout int   request timeout in seconds (0 disables)
//
// Only the flags listed above are parsed; unrelated arguments are filtered
// out first so this overlay never trips over flags owned elsewhere.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-a", "-t", "-timeout"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the job-board API")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "path of the token file")
	timeout := fs.Int("timeout", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 disables)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

// filterArgs keeps only the allowed flags (and their values) from args, so
// that independent flag sets can each parse their own slice of os.Args.
//
// Both "-flag value" and "-flag=value" forms are recognized.
func filterArgs(args []string, allowed []string) []string {
	want := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		want[name] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(name, "-") {
			if _, ok := want[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := want[arg]; !ok {
			continue
		}
		kept = append(kept, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			kept = append(kept, args[i+1])
			i++
		}
	}
	return kept
}
