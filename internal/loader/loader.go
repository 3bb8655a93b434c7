package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/napolitain/solver-geode/internal/models"
)

// Precompiled regexes for better performance
var (
	digitsRegex    = regexp.MustCompile(`-?\d+`)
	blueprintRegex = regexp.MustCompile(`(?i)\bblueprint\b`)
)

// fieldsPerBlueprint is id followed by the six cost numbers
const fieldsPerBlueprint = 7

// ParseBlueprint parses a single blueprint description. The description must
// contain exactly seven integers: id, ore bot ore, clay bot ore, obsidian bot
// ore and clay, geode bot ore and obsidian.
func ParseBlueprint(text string) (*models.Blueprint, error) {
	matches := digitsRegex.FindAllString(text, -1)
	if len(matches) != fieldsPerBlueprint {
		return nil, fmt.Errorf("%w: expected %d numbers, found %d in %q",
			models.ErrMalformedBlueprint, fieldsPerBlueprint, len(matches), strings.TrimSpace(text))
	}

	var n [fieldsPerBlueprint]int
	for i, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %v", models.ErrMalformedBlueprint, i+1, err)
		}
		n[i] = v
	}

	return models.NewStandardBlueprint(n[0], n[1], n[2], n[3], n[4], n[5], n[6])
}

// ParseBlueprints parses every blueprint in text
func ParseBlueprints(text string) ([]*models.Blueprint, error) {
	return ReadBlueprints(strings.NewReader(text))
}

// ReadBlueprints parses every blueprint from r. Blueprints start at the word
// "Blueprint" and may wrap across lines; input without that keyword is read
// one blueprint per non-blank line.
func ReadBlueprints(r io.Reader) ([]*models.Blueprint, error) {
	var chunks []chunk
	current := -1 // index of the open "Blueprint" chunk

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		starts := blueprintRegex.FindAllStringIndex(line, -1)
		if len(starts) == 0 {
			if current >= 0 {
				chunks[current].text += " " + line
				continue
			}
			chunks = append(chunks, chunk{line: lineNo, text: line})
			continue
		}

		if starts[0][0] > 0 {
			head := strings.TrimSpace(line[:starts[0][0]])
			if current >= 0 {
				chunks[current].text += " " + head
			} else {
				chunks = append(chunks, chunk{line: lineNo, text: head})
			}
		}
		for i, loc := range starts {
			end := len(line)
			if i+1 < len(starts) {
				end = starts[i+1][0]
			}
			chunks = append(chunks, chunk{line: lineNo, text: strings.TrimSpace(line[loc[0]:end])})
			current = len(chunks) - 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}

	blueprints := make([]*models.Blueprint, 0, len(chunks))
	for _, c := range chunks {
		bp, err := ParseBlueprint(c.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", c.line, err)
		}
		blueprints = append(blueprints, bp)
	}
	return blueprints, nil
}

// LoadBlueprints loads blueprints from a text file
func LoadBlueprints(path string) ([]*models.Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	blueprints, err := ReadBlueprints(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return blueprints, nil
}

type chunk struct {
	line int
	text string
}
