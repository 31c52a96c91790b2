package api

import (
	"testing"

	"github.com/aferro/curator/internal/resource"
)

func TestAdaptersExposeKindAndID(t *testing.T) {
	if got := (PhotoAdapter{}).Kind(); got != "photos" {
		t.Fatalf("photo kind = %q, want photos", got)
	}
	if got := (VideoAdapter{}).Kind(); got != "videos" {
		t.Fatalf("video kind = %q, want videos", got)
	}
	if got := (ServiceAdapter{}).Kind(); got != "services" {
		t.Fatalf("service kind = %q, want services", got)
	}
	if got := (ContactAdapter{}).Kind(); got != "contacts" {
		t.Fatalf("contact kind = %q, want contacts", got)
	}

	if got := (ServiceAdapter{}).ID(Service{ID: 42}); got != resource.ID(42) {
		t.Fatalf("service id = %d, want 42", got)
	}
}

func TestContactSearchFieldsMatchScreen(t *testing.T) {
	c := Contact{Name: "John", Email: "john@example.com", Subject: "Quote", Message: "hidden"}
	fields := (ContactAdapter{}).SearchText(c)
	if len(fields) != 3 {
		t.Fatalf("search fields = %v, want name/email/subject", fields)
	}
	for _, f := range fields {
		if f == c.Message {
			t.Fatalf("message body must not be searchable from the list screen")
		}
	}
}

func TestRulesAssetFields(t *testing.T) {
	cases := []struct {
		rules resource.Rules
		asset string
	}{
		{PhotoRules(), "photo"},
		{VideoRules(), "video"},
		{ServiceRules(), "file"},
		{ContactRules(), ""},
	}
	for _, tc := range cases {
		if tc.rules.AssetField != tc.asset {
			t.Fatalf("asset field = %q, want %q", tc.rules.AssetField, tc.asset)
		}
	}
}
