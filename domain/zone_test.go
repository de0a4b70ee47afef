package domain

import (
	"errors"
	"testing"
)

func TestParseZoneValid(t *testing.T) {
	z, err := ParseZone([]byte(`{"id":"z1","name":"X","area":"Front Yard","tags":["a"]}`))
	if err != nil {
		t.Fatalf("parse zone: %v", err)
	}
	if z.Name != "X" || z.Area != AreaFrontYard {
		t.Fatalf("unexpected zone: %#v", z)
	}
}

func TestParseZoneRejectsMissingName(t *testing.T) {
	_, err := ParseZone([]byte(`{"area":"Front Yard"}`))
	if !errors.Is(err, ErrZoneNameNotText) {
		t.Fatalf("expected name rejection, got %v", err)
	}
}

func TestParseZoneRejectsNonTextFields(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"numeric name", `{"name":7,"area":"Back Yard"}`, ErrZoneNameNotText},
		{"missing area", `{"name":"X"}`, ErrZoneAreaNotText},
		{"array area", `{"name":"X","area":["Back Yard"]}`, ErrZoneAreaNotText},
	}
	for _, tc := range cases {
		if _, err := ParseZone([]byte(tc.data)); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestParseZoneRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseZone([]byte(`{`)); err == nil {
		t.Fatal("expected error for malformed record")
	}
}

func TestOrientationForArea(t *testing.T) {
	cases := []struct {
		area Area
		want Orientation
	}{
		{AreaFrontYard, OrientationWest},
		{AreaBackYard, OrientationEast},
		{AreaSouthSide, OrientationSouth},
		{AreaSideYard, OrientationNA},
		{AreaYardTotal, OrientationNA},
	}
	for _, tc := range cases {
		if got := OrientationForArea(tc.area); got != tc.want {
			t.Fatalf("area %q: expected %q, got %q", tc.area, tc.want, got)
		}
	}
}

func TestNewZoneDerivesOrientationUnconditionally(t *testing.T) {
	z := NewZone("id", CreateZoneInput{Name: "Ferns", Area: AreaBackYard})
	if z.Orientation != OrientationEast {
		t.Fatalf("expected East, got %q", z.Orientation)
	}
}

func TestNewZoneNameFallbackChain(t *testing.T) {
	if z := NewZone("id", CreateZoneInput{Name: "My Pick", SuggestionName: "Ficus", Area: AreaFrontYard}); z.Name != "My Pick" {
		t.Fatalf("explicit name should win, got %q", z.Name)
	}
	if z := NewZone("id", CreateZoneInput{SuggestionName: "Ficus", Area: AreaFrontYard}); z.Name != "Ficus" {
		t.Fatalf("suggestion name should win over default, got %q", z.Name)
	}
	if z := NewZone("id", CreateZoneInput{Area: AreaFrontYard}); z.Name != "New Plant" {
		t.Fatalf("expected literal fallback, got %q", z.Name)
	}
}

func TestNewZoneSeedsOnboardingNoteAndNilHealth(t *testing.T) {
	z := NewZone("id", CreateZoneInput{Name: "Hosta", Area: AreaSideYard})
	if len(z.Notes) != 1 || z.Notes[0] != onboardingNote {
		t.Fatalf("expected single onboarding note, got %#v", z.Notes)
	}
	if z.Health != nil {
		t.Fatalf("health must start nil, got %v", *z.Health)
	}
}

func TestParseAreaRejectsSentinel(t *testing.T) {
	if _, ok := ParseArea("All"); ok {
		t.Fatal("sentinel must not be a storable area")
	}
	if _, ok := ParseArea("Back Yard"); !ok {
		t.Fatal("expected Back Yard to parse")
	}
}
