package gemini

import "encoding/json"

// generateResponse mirrors the subset of the generateContent reply the CLI
// consumes. Text is a pointer so an absent leaf is distinguishable from an
// empty answer.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error json.RawMessage `json:"error"`
}

// ExtractText parses body and returns the answer at
// candidates[0].content.parts[0].text. Each failure branch maps to exactly
// one error: *MalformedError for invalid JSON, *APIError when the reply
// carries a top-level error payload, ErrUnexpectedShape otherwise. A
// wrong-typed step along the answer path is a shape problem, not a parse
// problem, so the error payload still wins when present.
func ExtractText(body []byte) (string, error) {
	if !json.Valid(body) {
		return "", &MalformedError{Snippet: truncate(string(body), 200)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Candidates) > 0 {
			parts := parsed.Candidates[0].Content.Parts
			if len(parts) > 0 && parts[0].Text != nil {
				return *parts[0].Text, nil
			}
		}
		if len(parsed.Error) > 0 {
			return "", &APIError{Message: apiErrorMessage(parsed.Error)}
		}
		return "", ErrUnexpectedShape
	}

	// Some step of the path had the wrong type; the error payload may still
	// decode on its own.
	var top map[string]json.RawMessage
	if json.Unmarshal(body, &top) == nil {
		if raw, ok := top["error"]; ok {
			return "", &APIError{Message: apiErrorMessage(raw)}
		}
	}
	return "", ErrUnexpectedShape
}

// apiErrorMessage prefers the error's message field and falls back to the
// whole error value as JSON text.
func apiErrorMessage(raw json.RawMessage) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(raw)
}
