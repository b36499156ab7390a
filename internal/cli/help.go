package cli

import (
	"fmt"
	"io"
)

const version = "0.1.0"

func printUsage(w io.Writer) {
	fmt.Fprint(w, `gemkey — check a Gemini API key with a single question

Usage:
  gemkey [flags] [question...]

Flags:
  -q, --question <text>   question to send (prompted for when omitted)
  -m, --model <name>      model to use (default VITE_GEMINI_MODEL or gemini-1.5-flash-latest)
  -k, --key <key>         Gemini API key (overrides environment)
      --no-prompt         never prompt for a key; fail if none is found
      --timeout <value>   request timeout, seconds or duration (default 60)
      --base-url <url>    alternate API base URL
      --markdown          render the answer as terminal markdown
  -h, --help              show this help
  -v, --version           show version

The key is taken from, in order: --key, GEMINI_API_KEY, GOOGLE_API_KEY,
VITE_GEMINI_API_KEY, then an interactive prompt. A .env file in the current
directory or next to the binary supplies variables that are not already set.
`)
}
