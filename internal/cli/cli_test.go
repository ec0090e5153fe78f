package cli

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in       string
		fallback string
		want     []string
	}{
		{"", "xml", []string{"xml"}},
		{"svg", "xml", []string{"svg"}},
		{"json,xml,svg", "xml", []string{"json", "xml", "svg"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.in, tt.fallback)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q, %q) = %v, want %v", tt.in, tt.fallback, got, tt.want)
		}
	}
}

func TestExtFor(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"xml", "bpmn.xml"},
		{"json", "json"},
		{"svg", "svg"},
		{"png", "png"},
	}

	for _, tt := range tests {
		if got := extFor(tt.format); got != tt.want {
			t.Errorf("extFor(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	want := filepath.Join("/tmp/xdg-cache", "flowsketch")
	if dir != want {
		t.Errorf("cacheDir = %q, want %q", dir, want)
	}
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "/home/tester")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	want := filepath.Join("/home/tester", ".cache", "flowsketch")
	if dir != want {
		t.Errorf("cacheDir = %q, want %q", dir, want)
	}
}
