package gen

import (
	"encoding/json"
	"errors"
	"strings"
)

// ExtractJSON unmarshals the JSON object buried in a model completion into
// v. Models are asked for bare JSON but routinely wrap it in markdown
// fences or commentary, so three strategies are tried in order: the text
// as-is, the text with code fences stripped, and the span from the first
// '{' to the last '}'.
func ExtractJSON(s string, v interface{}) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("gen: empty completion")
	}

	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	if strings.HasPrefix(s, "```") {
		if fenced := stripFences(s); fenced != "" {
			if err := json.Unmarshal([]byte(fenced), v); err == nil {
				return nil
			}
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(s[start:end+1]), v); err == nil {
			return nil
		}
	}

	return errors.New("gen: no JSON object in completion")
}

func stripFences(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return ""
	}
	s = strings.Join(lines[1:len(lines)-1], "\n")
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "json"))
}
