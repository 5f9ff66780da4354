package router

import (
	"fmt"
	"strconv"
	"strings"
)

// fields reads loosely typed values out of the decoded model reply.
type fields map[string]any

func (f fields) str(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "null", "none":
		return ""
	}
	return s
}

func (f fields) boolean(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

func (f fields) number(key string) (float64, error) {
	switch v := f[key].(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported %s value %v", key, v)
	}
}
