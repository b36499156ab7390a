package cli

import (
	"strings"
	"testing"
	"time"
)

func TestParseArgsFlagsAnywhere(t *testing.T) {
	opts, err := parseArgs([]string{"-m", "gemini-pro", "-q", "Say: OK", "--no-prompt", "--timeout", "30"})
	if err != nil {
		t.Fatalf("parseArgs error = %v", err)
	}
	if opts.Question != "Say: OK" || opts.Model != "gemini-pro" {
		t.Fatalf("opts = %+v", opts)
	}
	if !opts.NoPrompt {
		t.Fatal("NoPrompt = false")
	}
	if opts.Timeout != 30*time.Second {
		t.Fatalf("timeout = %s", opts.Timeout)
	}
}

func TestParseArgsEqualsForms(t *testing.T) {
	opts, err := parseArgs([]string{"-q=test", "-k=secret", "--model=gemini-2.0-flash", "--timeout=2m"})
	if err != nil {
		t.Fatalf("parseArgs error = %v", err)
	}
	if opts.Question != "test" || opts.Key != "secret" || opts.Model != "gemini-2.0-flash" {
		t.Fatalf("opts = %+v", opts)
	}
	if opts.Timeout != 2*time.Minute {
		t.Fatalf("timeout = %s", opts.Timeout)
	}
}

func TestParseArgsQuestionVerbatim(t *testing.T) {
	opts, err := parseArgs([]string{"-q", "  spaced question  "})
	if err != nil {
		t.Fatalf("parseArgs error = %v", err)
	}
	if opts.Question != "  spaced question  " {
		t.Fatalf("question = %q, want verbatim value", opts.Question)
	}
}

func TestParseArgsRestBecomesQuestion(t *testing.T) {
	opts, err := parseArgs([]string{"what", "is", "photosynthesis"})
	if err != nil {
		t.Fatalf("parseArgs error = %v", err)
	}
	if opts.Question != "what is photosynthesis" {
		t.Fatalf("question = %q", opts.Question)
	}
}

func TestParseArgsDoubleDashEndsOptions(t *testing.T) {
	opts, err := parseArgs([]string{"--", "--no-prompt", "literally"})
	if err != nil {
		t.Fatalf("parseArgs error = %v", err)
	}
	if opts.Question != "--no-prompt literally" {
		t.Fatalf("question = %q", opts.Question)
	}
	if opts.NoPrompt {
		t.Fatal("NoPrompt = true, want false")
	}
}

func TestParseArgsRejectsRestNextToQuestionFlag(t *testing.T) {
	if _, err := parseArgs([]string{"-q", "one", "two"}); err == nil {
		t.Fatal("expected error for extra arguments")
	}
}

func TestParseArgsUnknownOption(t *testing.T) {
	_, err := parseArgs([]string{"--retries", "3"})
	if err == nil || !strings.Contains(err.Error(), "--retries") {
		t.Fatalf("error = %v", err)
	}
}

func TestParseArgsMissingValue(t *testing.T) {
	if _, err := parseArgs([]string{"--model"}); err == nil {
		t.Fatal("expected error for missing value")
	}
}

func TestParseArgsDefaultTimeout(t *testing.T) {
	opts, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("parseArgs error = %v", err)
	}
	if opts.Timeout != 60*time.Second {
		t.Fatalf("timeout = %s, want 60s", opts.Timeout)
	}
}

func TestParseTimeoutRejectsBadValues(t *testing.T) {
	for _, raw := range []string{"", "0", "-5", "soon", "0s"} {
		if _, err := parseTimeout(raw); err == nil {
			t.Fatalf("parseTimeout(%q) expected error", raw)
		}
	}
}
