package gemini

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractTextAnswer(t *testing.T) {
	body := `{"candidates":[{"content":{"parts":[{"text":"OK"}]}}]}`
	got, err := ExtractText([]byte(body))
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != "OK" {
		t.Fatalf("text = %q, want OK", got)
	}
}

func TestExtractTextEmptyAnswerIsStillAnswer(t *testing.T) {
	body := `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`
	got, err := ExtractText([]byte(body))
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != "" {
		t.Fatalf("text = %q, want empty", got)
	}
}

func TestExtractTextAPIErrorMessage(t *testing.T) {
	body := `{"error":{"code":400,"message":"invalid key"}}`
	_, err := ExtractText([]byte(body))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "invalid key" {
		t.Fatalf("message = %q, want invalid key", apiErr.Message)
	}
}

func TestExtractTextAPIErrorWithoutMessage(t *testing.T) {
	body := `{"error":{"code":500}}`
	_, err := ExtractText([]byte(body))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if !strings.Contains(apiErr.Message, "500") {
		t.Fatalf("message = %q, want whole error value", apiErr.Message)
	}
}

func TestExtractTextUnexpectedShape(t *testing.T) {
	cases := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`{"candidates":[{"content":{"parts":[{}]}}]}`,
		`{"candidates":42}`,
		`{"candidates":[{"content":{"parts":[{"text":7}]}}]}`,
		`[1,2,3]`,
	}
	for _, body := range cases {
		if _, err := ExtractText([]byte(body)); !errors.Is(err, ErrUnexpectedShape) {
			t.Fatalf("ExtractText(%s) error = %v, want ErrUnexpectedShape", body, err)
		}
	}
}

func TestExtractTextMalformedJSON(t *testing.T) {
	long := "<html>" + strings.Repeat("x", 300)
	_, err := ExtractText([]byte(long))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want *MalformedError", err)
	}
	if len(malformed.Snippet) > 203 {
		t.Fatalf("snippet too long: %d bytes", len(malformed.Snippet))
	}
	if !strings.HasPrefix(malformed.Snippet, "<html>") {
		t.Fatalf("snippet = %q", malformed.Snippet)
	}
}

func TestExtractTextErrorSurvivesWrongTypedCandidates(t *testing.T) {
	// The body is valid JSON, so a wrong-typed candidates value must not be
	// reported as malformed; the error payload wins.
	body := `{"candidates":"oops","error":{"message":"boom"}}`
	_, err := ExtractText([]byte(body))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "boom" {
		t.Fatalf("message = %q, want boom", apiErr.Message)
	}
}

func TestExtractTextErrorBeatsShapeError(t *testing.T) {
	// A response with both a broken candidates path and an error payload
	// surfaces the API error.
	body := `{"candidates":[],"error":{"message":"quota exceeded"}}`
	_, err := ExtractText([]byte(body))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "quota exceeded" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}
