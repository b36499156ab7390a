// Package cli drives one key-check run from arguments to exit code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gemkey/internal/config"
	"gemkey/internal/dotenv"
	"gemkey/internal/gemini"
	"gemkey/internal/render"
)

const banner = "=== Model response ==="

const remediationHint = "Hint: pass --key YOUR_KEY or set GEMINI_API_KEY/GOOGLE_API_KEY/VITE_GEMINI_API_KEY in a .env next to gemkey.\n" +
	"Example .env:\n" +
	"VITE_GEMINI_API_KEY=YOUR_KEY\n" +
	"VITE_GEMINI_MODEL=gemini-1.5-flash-latest\n"

var errNoQuestion = errors.New("no question provided")

// Run executes one check and returns the process exit code: 0 on success,
// 2 when no question could be obtained, 1 for every other failure.
func Run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	err := run(args, stdin, stdout, stderr)
	if err == nil {
		return 0
	}
	if errors.Is(err, errNoQuestion) {
		fmt.Fprintln(stderr, "No question provided.")
		return 2
	}

	var httpErr *gemini.HTTPError
	if errors.As(err, &httpErr) {
		fmt.Fprintf(stderr, "HTTP error %d: %s\n", httpErr.Status, httpErr.Body)
		return 1
	}
	var netErr *gemini.NetworkError
	if errors.As(err, &netErr) {
		fmt.Fprintf(stderr, "Network error: %v\n", netErr.Cause)
		return 1
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprint(stderr, remediationHint)
	return 1
}

// run is the linear sequence the tool exists for: load env files, parse
// arguments, resolve the key, resolve the question, send one request, print
// the answer. Any failure ends the run; nothing is retried.
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	env := dotenv.OSEnv{}
	dotenv.Load(env, envFilePaths()...)

	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		printUsage(stdout)
		return nil
	}
	if opts.ShowVersion {
		fmt.Fprintln(stdout, version)
		return nil
	}

	prompter := &terminalPrompter{stdin: stdin, stderr: stderr}
	key, err := config.ResolveAPIKey(opts.Key, !opts.NoPrompt, env, prompter)
	if err != nil {
		return err
	}

	question := opts.Question
	if question == "" {
		question = readQuestion(stdin, stderr)
	}
	if question == "" {
		return errNoQuestion
	}

	model := config.ResolveModel(opts.Model, env)
	client := gemini.NewClient(gemini.ClientOptions{
		APIKey:     key,
		BaseURL:    opts.BaseURL,
		HTTPClient: &http.Client{Timeout: opts.Timeout},
	})

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	stop := func() {}
	if isTerminalWriter(stderr) {
		stop = startSpinner(stderr, "Waiting for "+model)
	}
	text, err := client.GenerateContent(ctx, model, question)
	stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, banner)
	if opts.Markdown {
		fmt.Fprintln(stdout, render.Markdown(text, terminalWidth(stdout), true))
	} else {
		fmt.Fprintln(stdout, text)
	}
	return nil
}

// envFilePaths lists the .env locations, working directory first so it wins
// for variables not already set.
func envFilePaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}
	if exe, err := os.Executable(); err == nil {
		if dir := strings.TrimSpace(filepath.Dir(exe)); dir != "" {
			paths = append(paths, filepath.Join(dir, ".env"))
		}
	}
	return paths
}
