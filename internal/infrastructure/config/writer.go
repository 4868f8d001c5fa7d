package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Matches table headers, including indented sub-tables.
var sectionHeader = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
// Fields keep definition order and tables are sorted by name, so binding
// tables come out in a stable order whatever the map iteration order was.
// The file is replaced atomically so the watcher never sees a partial write.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := encodeConfig(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

func encodeConfig(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// sortTOMLSections sorts TOML content so sections are in alphabetical order.
// Top-level keys stay first.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var (
		sections []section
		current  *section
		preamble []string
	)

	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder
	for _, line := range preamble {
		result.WriteString(line)
		result.WriteString("\n")
	}
	for i, sec := range sections {
		if i > 0 || len(preamble) > 0 {
			content := result.String()
			if content != "" && !strings.HasSuffix(content, "\n\n") {
				result.WriteString("\n")
			}
		}
		for _, line := range sec.lines {
			// Blank lines are re-added between sections.
			if strings.TrimSpace(line) == "" {
				continue
			}
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	output := strings.TrimRight(result.String(), "\n")
	if output != "" {
		output += "\n"
	}
	return output
}
