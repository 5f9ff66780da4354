package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

var errNoJSONObject = errors.New("no valid JSON found")

// CompleteJSON runs Complete without history and decodes the JSON object in the reply.
func (g *gateway) CompleteJSON(ctx context.Context, system, user string) JSONResult {
	raw := g.Complete(ctx, system, user, nil, g.cfg.ToolMaxTokens)
	g.l.Debugf(ctx, "%s: raw response: %q", LogPrefixCompleteJSON, raw)

	if IsApology(raw) {
		g.l.Errorf(ctx, "%s: api error: %s", LogPrefixCompleteJSON, raw)
		return JSONResult{Err: &JSONError{Kind: ErrKindRateLimit, Message: raw}}
	}

	data, err := ExtractJSON(raw)
	if err != nil {
		g.l.Errorf(ctx, "%s: %v: raw response %q", LogPrefixCompleteJSON, err, raw)
		lower := strings.ToLower(raw)
		if strings.Contains(raw, "429") || strings.Contains(lower, "rate limit") {
			return JSONResult{Err: &JSONError{Kind: ErrKindRateLimit, Message: rateLimitJSONMessage}}
		}
		return JSONResult{Err: &JSONError{Kind: ErrKindParseError, RawResponse: raw}}
	}

	return JSONResult{Data: data}
}

// ExtractJSON decodes the object in text. A reply that is entirely an object is
// used verbatim; otherwise the span from the first '{' to the last '}' is decoded.
func ExtractJSON(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)

	candidate := text
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start == -1 || end <= start {
			return nil, errNoJSONObject
		}
		candidate = text[start : end+1]
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return nil, err
	}
	return out, nil
}
