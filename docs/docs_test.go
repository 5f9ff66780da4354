package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocRenders(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Swagger string         `json:"swagger"`
		Info    map[string]any `json:"info"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("rendered doc is not valid JSON: %v", err)
	}
	if parsed.Info["title"] != "Travel Assistant API" {
		t.Errorf("unexpected title %v", parsed.Info["title"])
	}
	if _, ok := parsed.Paths["/api/v1/sessions/{id}/messages"]; !ok {
		t.Errorf("messages path missing, got %d paths", len(parsed.Paths))
	}
}
