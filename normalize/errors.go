package normalize

import "fmt"

// ContentError reports a payload that was syntactically valid JSON but did
// not have the shape or field types the upstream API is expected to
// produce. Key names the offending field when a single field failed
// coercion; Payload carries the raw decoded value for inspection.
type ContentError struct {
	Msg     string
	Key     string
	Payload any
}

func (e *ContentError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("content error: %s (key %q, payload %v)", e.Msg, e.Key, e.Payload)
	}
	return fmt.Sprintf("content error: %s", e.Msg)
}

func errUnexpectedShape(op string, raw any) *ContentError {
	return &ContentError{
		Msg:     fmt.Sprintf("unexpected API response shape for %s: got %T", op, raw),
		Payload: raw,
	}
}

func errField(key string, item map[string]any) *ContentError {
	return &ContentError{
		Msg:     "non-numeric value for required field",
		Key:     key,
		Payload: item,
	}
}
