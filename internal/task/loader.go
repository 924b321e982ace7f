package task

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/comux/internal/errors"
)

// commandFile is the structured task file shape:
//
//	commands:
//	  - command: "make build"
//	  - command: "make test"
//
// Supported in yaml, json, and toml, selected by file extension.
type commandFile struct {
	Commands []fileCommand `yaml:"commands" json:"commands" toml:"commands"`
}

type fileCommand struct {
	Command string `yaml:"command" json:"command" toml:"command"`
}

// Load builds the ordered, unique command set for a run from literal
// command arguments and task files, in that order. Duplicate commands
// (by exact trimmed text) are silently dropped, first occurrence wins.
//
// Files ending in .yaml/.yml, .json, or .toml are parsed as structured
// command files; any other file is read line by line, skipping blank
// lines and lines whose first non-whitespace character is '#'.
//
// Returns a configuration error if a file cannot be read or parsed, or
// if the resulting unique command set is empty.
func Load(commands []string, files []string) ([]Command, error) {
	var out []Command
	seen := make(map[string]struct{})

	add := func(text string, origin Origin) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		out = append(out, Command{Text: text, Label: text, Origin: origin})
	}

	for _, c := range commands {
		add(c, OriginArgument)
	}

	for _, path := range files {
		texts, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		for _, text := range texts {
			add(text, OriginFile)
		}
	}

	if len(out) == 0 {
		return nil, errors.NewConfigError("loading commands", errors.ErrNoCommands)
	}

	return out, nil
}

// loadFile reads one task file and returns its raw command texts.
func loadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("reading task file %s", path), err)
	}

	switch {
	case hasExt(path, ".yaml", ".yml"):
		var cf commandFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("parsing task file %s", path), err)
		}
		return structuredCommands(cf), nil
	case hasExt(path, ".json"):
		var cf commandFile
		if err := json.Unmarshal(data, &cf); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("parsing task file %s", path), err)
		}
		return structuredCommands(cf), nil
	case hasExt(path, ".toml"):
		var cf commandFile
		if err := toml.Unmarshal(data, &cf); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("parsing task file %s", path), err)
		}
		return structuredCommands(cf), nil
	default:
		return plainLines(data), nil
	}
}

// plainLines splits a plain task file into command texts, skipping blank
// lines and '#' comments.
func plainLines(data []byte) []string {
	var texts []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		texts = append(texts, line)
	}
	return texts
}

func structuredCommands(cf commandFile) []string {
	texts := make([]string, 0, len(cf.Commands))
	for _, c := range cf.Commands {
		texts = append(texts, c.Command)
	}
	return texts
}

func hasExt(path string, exts ...string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
