package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/antscan/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("/ws/build.xml")
	is2 := domain.NewInternedString("/ws/build.xml")

	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}
	if is1.String() != "/ws/build.xml" {
		t.Errorf("Expected String() to return %q, got %q", "/ws/build.xml", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var is domain.InternedString

	if !is.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if is.String() != "" {
		t.Errorf("Expected zero value to render empty, got %q", is.String())
	}
}

func TestInternedStringJSON(t *testing.T) {
	type definition struct {
		URI domain.InternedString `json:"uri"`
	}

	data, err := json.Marshal(definition{URI: domain.NewInternedString("/ws/sub/build.xml")})
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"uri":"/ws/sub/build.xml"}` {
		t.Errorf("Unexpected JSON %s", data)
	}

	var decoded definition
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if decoded.URI.Value() != domain.NewInternedString("/ws/sub/build.xml").Value() {
		t.Errorf("Expected decoded handle to equal a freshly interned one")
	}
}
