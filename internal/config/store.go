package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file at the repository root
const FileName = ".codeconfig"

// Known configuration keys
const (
	KeyMasterBranch      = "master-branch-name"
	KeyDevelopmentBranch = "development-branch-name"
	KeyReadyLabel        = "ready-label"
	KeyHotfixLabel       = "hotfix-label"
)

// Definition describes a configuration key
type Definition struct {
	Key      string
	Question string
	Default  string
}

var definitions = []Definition{
	{Key: KeyMasterBranch, Question: "What is the name of your main-line branch?", Default: "master"},
	{Key: KeyDevelopmentBranch, Question: "What is the name of your integration branch?", Default: "development"},
	{Key: KeyReadyLabel, Question: "Which label marks a pull request as ready for review?", Default: "ready for review"},
	{Key: KeyHotfixLabel, Question: "Which label marks a pull request as a hotfix?", Default: "hotfix"},
}

// Definitions returns every known key in display order
func Definitions() []Definition {
	return append([]Definition(nil), definitions...)
}

// Keys returns the names of every known key
func Keys() []string {
	keys := make([]string, len(definitions))
	for i, d := range definitions {
		keys[i] = d.Key
	}
	return keys
}

func lookupDefinition(key string) (Definition, bool) {
	for _, d := range definitions {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Prompter asks the user for a missing value
type Prompter interface {
	Input(message, defaultValue string) (string, error)
}

// Store reads and writes the configuration file of one repository
type Store struct {
	path     string
	prompter Prompter
	values   map[string]string
}

// Open loads the configuration of the repository at repoRoot. A missing file
// is an empty configuration. prompter may be nil, in which case missing
// values are reported as errors.
func Open(repoRoot string, prompter Prompter) (*Store, error) {
	s := &Store{
		path:     filepath.Join(repoRoot, FileName),
		prompter: prompter,
		values:   map[string]string{},
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if err := yaml.Unmarshal(data, &s.values); err != nil {
		legacy, ok := parseAssignments(data)
		if !ok {
			return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
		}
		s.values = legacy
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	return s, nil
}

// parseAssignments reads the older `key = value` form of the file.
// It reports false unless every non-blank, non-comment line is an assignment.
// The next Set rewrites the file as YAML.
func parseAssignments(data []byte) (map[string]string, bool) {
	values := map[string]string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" || strings.ContainsAny(key, " \t") {
			return nil, false
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			value = value[1 : len(value)-1]
		}
		values[key] = value
	}
	return values, true
}

// Path returns the location of the configuration file
func (s *Store) Path() string {
	return s.path
}

// Lookup returns a stored value without prompting
func (s *Store) Lookup(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok && value != ""
}

// Get returns the value for key. A missing value is asked for, with an empty
// answer meaning the key's default, and the answer is saved.
func (s *Store) Get(key string) (string, error) {
	if value, ok := s.Lookup(key); ok {
		return value, nil
	}

	def, known := lookupDefinition(key)
	if !known {
		return "", fmt.Errorf("unknown configuration key %q", key)
	}
	if s.prompter == nil {
		return "", fmt.Errorf("%s is not configured; run `code config set %s <value>`", key, key)
	}

	answer, err := s.prompter.Input(def.Question, def.Default)
	if err != nil {
		return "", fmt.Errorf("%s is not configured; run `code config set %s <value>`: %w", key, key, err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = def.Default
	}

	if err := s.Set(key, answer); err != nil {
		return "", err
	}
	return answer, nil
}

// Set stores a value for a known key and saves the file
func (s *Store) Set(key, value string) error {
	if _, known := lookupDefinition(key); !known {
		return fmt.Errorf("unknown configuration key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s cannot be empty", key)
	}
	s.values[key] = value
	return s.save()
}

// All returns a copy of the stored values
func (s *Store) All() map[string]string {
	all := make(map[string]string, len(s.values))
	for k, v := range s.values {
		all[k] = v
	}
	return all
}

// SortedKeys returns the stored keys in alphabetical order
func (s *Store) SortedKeys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) save() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}
