package analyses

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSONBlock returns the trimmed contents of the first fenced code
// block in the model's response. A response with no fenced block is an
// explicit failure; nothing from earlier responses is ever reused.
func ExtractJSONBlock(raw string) (string, error) {
	match := fencedBlockRe.FindStringSubmatch(raw)
	if match == nil {
		return "", ErrNoJSONBlock
	}
	return strings.TrimSpace(match[1]), nil
}

// DecodeResult parses the extracted payload into a Result. Unknown fields
// are ignored; missing lists decode to empty slices, never nil.
func DecodeResult(payload string) (Result, error) {
	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}
	if result.Skills.Technical == nil {
		result.Skills.Technical = []string{}
	}
	if result.Skills.Soft == nil {
		result.Skills.Soft = []string{}
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Gaps == nil {
		result.Gaps = []string{}
	}
	if result.ImprovementSuggestions == nil {
		result.ImprovementSuggestions = []string{}
	}
	return result, nil
}
