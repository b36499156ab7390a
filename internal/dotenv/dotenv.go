// Package dotenv loads KEY=VALUE files into an environment abstraction.
package dotenv

import (
	"bytes"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment is the mutable variable store the loader writes into.
// Injecting it keeps tests away from real process state.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
}

// OSEnv is the process environment.
type OSEnv struct{}

func (OSEnv) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
func (OSEnv) Set(key, value string) error      { return os.Setenv(key, value) }

// MapEnv is an in-memory Environment, mainly for tests.
type MapEnv map[string]string

func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnv) Set(key, value string) error {
	m[key] = value
	return nil
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

type pair struct {
	key   string
	value string
}

// Load reads each path in order and sets every parsed variable that is not
// already present in env. Variables already set always win, and for a key
// appearing more than once — across files or within one — the earliest
// occurrence wins. Unreadable files are skipped entirely and unparseable
// lines individually; the loader is best effort by contract.
func Load(env Environment, paths ...string) {
	for _, path := range paths {
		pairs, err := parseFile(path)
		if err != nil {
			continue
		}
		for _, p := range pairs {
			if _, ok := env.Lookup(p.key); ok {
				continue
			}
			_ = env.Set(p.key, p.value)
		}
	}
}

// parseFile reads path line by line, keeping the first occurrence of each
// key in file order.
func parseFile(path string) ([]pair, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, os.ErrInvalid
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	buf = bytes.TrimPrefix(buf, utf8BOM)

	var pairs []pair
	seen := map[string]bool{}
	for _, line := range strings.Split(string(buf), "\n") {
		parsed, err := godotenv.Unmarshal(line)
		if err != nil {
			continue
		}
		for key, value := range parsed {
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, pair{key: key, value: value})
		}
	}
	return pairs, nil
}
