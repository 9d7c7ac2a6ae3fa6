package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var fenceJSON = regexp.MustCompile("(?i)```json")

// Normalize recovers a GeneratedPortfolio from free-form model text. It strips
// code-fence markers, locates the first balanced {...} region with a scanner
// that respects string literals, and decodes it. When no balanced region
// exists it falls back to the greedy first-{-to-last-} substring before giving
// up with ErrMalformedOutput.
func Normalize(raw string) (GeneratedPortfolio, error) {
	text := fenceJSON.ReplaceAllString(raw, "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	candidate, ok := extractObject(text)
	if !ok {
		candidate, ok = extractGreedy(text)
	}
	if !ok {
		return GeneratedPortfolio{}, fmt.Errorf("%w: no object found", ErrMalformedOutput)
	}

	if !gjson.Valid(candidate) {
		// Scanner can be fooled by unbalanced braces inside malformed text;
		// give the greedy substring one chance before failing.
		greedy, gok := extractGreedy(text)
		if !gok || !gjson.Valid(greedy) {
			return GeneratedPortfolio{}, fmt.Errorf("%w: candidate is not valid JSON", ErrMalformedOutput)
		}
		candidate = greedy
	}

	var portfolio GeneratedPortfolio
	if err := json.Unmarshal([]byte(candidate), &portfolio); err != nil {
		return GeneratedPortfolio{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return portfolio, nil
}

// extractObject returns the first balanced top-level JSON object in text.
// Brace depth is tracked outside string literals only, so braces inside
// quoted values do not terminate the region.
func extractObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// extractGreedy returns the substring from the first '{' through the last '}'.
func extractGreedy(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
