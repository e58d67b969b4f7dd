package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the JSON object out of free-form model output.
//
// The span from the first '{' to the last '}' is tried first. If that does not parse
// (prose with braces around the payload, several objects), every balanced object is
// tried in order and the first valid one wins. Text without a '{' ... '}' span
// fails with ErrMalformedResponse.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON found in response", ErrMalformedResponse)
	}

	greedy := text[start : end+1]
	var probe map[string]json.RawMessage
	firstErr := json.Unmarshal([]byte(greedy), &probe)
	if firstErr == nil {
		return json.RawMessage(greedy), nil
	}

	for i := start; i <= end; i++ {
		if text[i] != '{' {
			continue
		}
		closing := matchingBrace(text, i)
		if closing < 0 {
			continue
		}
		candidate := text[i : closing+1]
		if err := json.Unmarshal([]byte(candidate), &probe); err == nil {
			return json.RawMessage(candidate), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, firstErr)
}

// matchingBrace returns the index of the brace closing the one at open,
// skipping braces inside JSON strings, or -1 if it is never closed.
func matchingBrace(text string, open int) int {
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
