// Command gemkey checks a Google Gemini API key by sending one question
// and printing the model's answer.
package main

import (
	"os"

	"gemkey/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
