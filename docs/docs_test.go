package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestRegisteredSpecServesAllRoutes(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read registered spec: %v", err)
	}

	var spec struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("rendered spec is not valid JSON: %v", err)
	}

	if spec.Info.Title != "Influence OS API" {
		t.Fatalf("unexpected title %q", spec.Info.Title)
	}

	for _, path := range []string{
		"/",
		"/posts",
		"/generate-post",
		"/auth/linkedin",
		"/auth/linkedin/callback",
		"/users/me",
		"/posts/share",
	} {
		if _, ok := spec.Paths[path]; !ok {
			t.Fatalf("spec is missing path %q", path)
		}
	}
}
