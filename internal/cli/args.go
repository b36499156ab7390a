package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gemkey/internal/gemini"
)

type options struct {
	Question    string
	Model       string
	Key         string
	NoPrompt    bool
	Markdown    bool
	BaseURL     string
	Timeout     time.Duration
	ShowHelp    bool
	ShowVersion bool
}

// parseArgs scans flags in any position. Non-flag arguments join into the
// question when -q is absent; the -q value itself is kept verbatim.
func parseArgs(args []string) (options, error) {
	opts := options{Timeout: gemini.DefaultTimeout}
	questionSet := false
	rest := make([]string, 0, len(args))

	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			rest = append(rest, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			rest = append(rest, arg)
			i++
			continue
		}

		name, value, hasValue := parseOptionToken(arg)
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", formatFlagName(name))
			}
			i++
			return args[i], nil
		}

		var err error
		switch name {
		case "question", "q":
			opts.Question, err = next()
			questionSet = true
		case "model", "m":
			opts.Model, err = next()
		case "key", "k":
			opts.Key, err = next()
		case "base-url":
			opts.BaseURL, err = next()
		case "timeout":
			var raw string
			if raw, err = next(); err == nil {
				opts.Timeout, err = parseTimeout(raw)
			}
		case "no-prompt":
			opts.NoPrompt = true
		case "markdown":
			opts.Markdown = true
		case "help", "h":
			opts.ShowHelp = true
		case "version", "v":
			opts.ShowVersion = true
		default:
			return opts, fmt.Errorf("unknown option %q (use --help)", arg)
		}
		if err != nil {
			return opts, err
		}
		i++
	}

	if len(rest) > 0 {
		if questionSet {
			return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
		}
		opts.Question = strings.Join(rest, " ")
	}
	return opts, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("--timeout value is empty")
	}
	if strings.ContainsAny(raw, "hms") {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("--timeout: %w", err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("--timeout must be positive")
		}
		return d, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("--timeout must be a positive integer seconds or duration")
	}
	return time.Duration(seconds) * time.Second, nil
}

func parseOptionToken(arg string) (name, value string, hasValue bool) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if idx := strings.IndexByte(trimmed, '='); idx >= 0 {
		return trimmed[:idx], trimmed[idx+1:], true
	}
	return trimmed, "", false
}

func formatFlagName(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
