// Package suitefile locates and parses .witness suite files.
//
// Two formats are accepted. The line-oriented text form:
//
//	# comment
//	build: make all
//	unit: go test ./...
//
// where a line is named only when a single word precedes the first colon;
// otherwise the whole line is the command and the program doubles as the
// name. And a JSON form, recognized by a leading "[":
//
//	[{"name": "build", "command": ["make", "all"]}]
package suitefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vertti/witness/pkg/subproc"
)

// Entry is one named check loaded from a suite file.
type Entry struct {
	Name    string
	Command subproc.Command
}

// FindFile resolves the suite file to run. An explicit path wins; otherwise
// the search walks up from startDir looking for a .witness file, stopping
// at the home directory, a .git boundary, or the filesystem root.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("suite file not found: %w", err)
		}
		return explicitPath, nil
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		candidate := filepath.Join(dir, ".witness")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if atSearchBoundary(dir, home) {
			return "", errors.New(".witness file not found")
		}
		dir = filepath.Dir(dir)
	}
}

// atSearchBoundary reports whether the upward search must stop in dir: the
// home directory, a repository root, or the filesystem root. A suite file
// above one of these belongs to someone else's tree.
func atSearchBoundary(dir, home string) bool {
	if dir == home {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return true
	}
	return dir == filepath.Dir(dir)
}

// ParseFile reads and parses a suite file.
func ParseFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the suite file
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	return Parse(data)
}

// Parse parses suite file content in either format.
func Parse(data []byte) ([]Entry, error) {
	if strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		return parseJSON(data)
	}
	return parseText(data)
}

func parseText(data []byte) ([]Entry, error) {
	entries := []Entry{}

	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name := ""
		command := trimmed
		// Only a single word before the first colon names a check;
		// anything else (a URL mid-command, say) is command text.
		if before, after, found := strings.Cut(trimmed, ":"); found && isLabel(before) {
			name = strings.TrimSpace(before)
			command = strings.TrimSpace(after)
		}

		fields := strings.Fields(command)
		if len(fields) == 0 {
			return nil, fmt.Errorf("line %d: check %q has no command", i+1, name)
		}
		if name == "" {
			// Unnamed line: the program itself is the label.
			name = fields[0]
		}

		entries = append(entries, Entry{
			Name:    name,
			Command: subproc.NewCommand(fields[0], fields[1:]...),
		})
	}

	return entries, nil
}

// isLabel reports whether s is a check name: one word, nothing more.
func isLabel(s string) bool {
	return len(strings.Fields(s)) == 1
}

func parseJSON(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("suite file is not valid JSON")
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, errors.New("JSON suite file must be an array of checks")
	}

	entries := []Entry{}
	var parseErr error

	parsed.ForEach(func(_, item gjson.Result) bool {
		idx := len(entries)

		command := item.Get("command")
		if !command.IsArray() || len(command.Array()) == 0 {
			parseErr = fmt.Errorf("check %d: \"command\" must be a non-empty array", idx)
			return false
		}

		var program string
		var args []string
		for j, part := range command.Array() {
			if part.Type != gjson.String {
				parseErr = fmt.Errorf("check %d: command element %d is not a string", idx, j)
				return false
			}
			if j == 0 {
				program = part.String()
			} else {
				args = append(args, part.String())
			}
		}

		name := item.Get("name").String()
		if name == "" {
			name = program
		}

		entries = append(entries, Entry{
			Name:    name,
			Command: subproc.NewCommand(program, args...),
		})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return entries, nil
}
