package handlers

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestResolveSurveyResponsePrefersExplicitPayload(t *testing.T) {
	explicit := json.RawMessage(`{"rating":5,"custom":{"nested":true}}`)
	resolved, err := resolveSurveyResponse(recordSurveyRequest{
		Response: explicit,
		Rating:   float64(1),
	})
	if err != nil {
		t.Fatalf("resolveSurveyResponse: %v", err)
	}
	if string(resolved) != string(explicit) {
		t.Fatalf("expected explicit payload verbatim, got %s", resolved)
	}
}

func TestResolveSurveyResponseSynthesizesFromFields(t *testing.T) {
	notes := "felt strong"
	resolved, err := resolveSurveyResponse(recordSurveyRequest{
		Rating:      float64(4),
		Condition:   "good",
		Performance: float64(8),
		Notes:       &notes,
	})
	if err != nil {
		t.Fatalf("resolveSurveyResponse: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(resolved, &decoded); err != nil {
		t.Fatalf("unmarshal synthesized payload: %v", err)
	}
	want := map[string]any{
		"rating":      float64(4),
		"condition":   "good",
		"performance": float64(8),
		"notes":       "felt strong",
	}
	if !reflect.DeepEqual(decoded, want) {
		t.Fatalf("expected %v, got %v", want, decoded)
	}
}

func TestResolveSurveyResponseRoundTrips(t *testing.T) {
	original := json.RawMessage(`{"rating":3,"condition":"tired","list":[1,2,3],"deep":{"a":{"b":"c"}}}`)
	resolved, err := resolveSurveyResponse(recordSurveyRequest{Response: original})
	if err != nil {
		t.Fatalf("resolveSurveyResponse: %v", err)
	}

	var got, want any
	if err := json.Unmarshal(resolved, &got); err != nil {
		t.Fatalf("unmarshal resolved: %v", err)
	}
	if err := json.Unmarshal(original, &want); err != nil {
		t.Fatalf("unmarshal original: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected deep-equal round trip, got %v want %v", got, want)
	}
}

func TestResolveSurveyResponseJSONNullSynthesizes(t *testing.T) {
	resolved, err := resolveSurveyResponse(recordSurveyRequest{
		Response: json.RawMessage(`null`),
		Rating:   float64(2),
	})
	if err != nil {
		t.Fatalf("resolveSurveyResponse: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(resolved, &decoded); err != nil {
		t.Fatalf("unmarshal synthesized payload: %v", err)
	}
	if decoded["rating"] != float64(2) {
		t.Fatalf("expected synthesized rating 2, got %v", decoded["rating"])
	}
}
