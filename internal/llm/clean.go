// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"encoding/json"
	"strings"
)

// extractJSON strips markdown code fences and surrounding prose from a
// model response and returns the outermost JSON value. Models asked for
// JSON-only output mostly comply, but fences and lead-in sentences still
// appear often enough to handle here rather than in every caller.
func extractJSON(response string) (json.RawMessage, error) {
	cleaned := response
	for _, fence := range []string{"```json", "```JSON", "```"} {
		cleaned = strings.ReplaceAll(cleaned, fence, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	objStart := strings.Index(cleaned, "{")
	arrStart := strings.Index(cleaned, "[")

	switch {
	case objStart != -1 && (arrStart == -1 || objStart < arrStart):
		if end := findMatching(cleaned, objStart, '{', '}'); end != -1 {
			cleaned = cleaned[objStart : end+1]
		}
	case arrStart != -1:
		if end := findMatching(cleaned, arrStart, '[', ']'); end != -1 {
			cleaned = cleaned[arrStart : end+1]
		}
	}

	cleaned = strings.TrimSpace(cleaned)
	if !json.Valid([]byte(cleaned)) {
		return nil, &ParseError{Output: response}
	}
	return json.RawMessage(cleaned), nil
}

// findMatching returns the index of the closer balancing the opener at
// start, skipping string literals, or -1 if unbalanced.
func findMatching(s string, start int, opener, closer byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
