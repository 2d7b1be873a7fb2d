package analyses

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestResponseNullsUnsetScalars(t *testing.T) {
	result, err := DecodeResult(`{"experience_summary": "solid"}`)
	if err != nil {
		t.Fatalf("DecodeResult: %v", err)
	}
	analysis := flattenResult(result)
	analysis.ID = "analysis-1"
	analysis.CreatedAt = time.Now().UTC()

	body, err := json.Marshal(toResponse(analysis, result))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(body), `"overall_score":null`) {
		t.Fatalf("unset score should serialize as null, got %s", body)
	}

	zero, err := DecodeResult(`{"overall_score": 0}`)
	if err != nil {
		t.Fatalf("DecodeResult: %v", err)
	}
	body, err = json.Marshal(toResponse(flattenResult(zero), zero))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(body), `"overall_score":0`) {
		t.Fatalf("explicit zero score should serialize as 0, got %s", body)
	}
}
