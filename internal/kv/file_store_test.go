package kv

import (
	"context"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Set(ctx, "raqam_user", `{"id":"current_user"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, found, err := fs.Get(ctx, "raqam_user")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("key not found after Set")
	}
	if value != `{"id":"current_user"}` {
		t.Errorf("Get returned %q", value)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	value, found, err := fs.Get(ctx, "raqam_listings")
	if err != nil {
		t.Fatalf("Get on missing key returned error: %v", err)
	}
	if found || value != "" {
		t.Errorf("Get on missing key = (%q, %v), want (\"\", false)", value, found)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Set(ctx, "raqam_theme_preference", "light"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := fs.Set(ctx, "raqam_theme_preference", "dark"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	value, _, err := fs.Get(ctx, "raqam_theme_preference")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "dark" {
		t.Errorf("Get after overwrite = %q, want %q", value, "dark")
	}
}

func TestFileStoreMultiGet(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Set(ctx, "raqam_language", "ar"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := fs.Set(ctx, "raqam_currency", "usd"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	values, err := fs.MultiGet(ctx, []string{"raqam_language", "raqam_currency", "raqam_default_location"})
	if err != nil {
		t.Fatalf("MultiGet: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("MultiGet returned %d entries, want 2", len(values))
	}
	if values["raqam_language"] != "ar" || values["raqam_currency"] != "usd" {
		t.Errorf("MultiGet values = %v", values)
	}
	if _, ok := values["raqam_default_location"]; ok {
		t.Error("MultiGet included a missing key")
	}
}

func TestFileStoreMultiRemove(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Set(ctx, "raqam_favorites", `["2"]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Removing a mix of present and absent keys succeeds
	if err := fs.MultiRemove(ctx, []string{"raqam_favorites", "raqam_user"}); err != nil {
		t.Fatalf("MultiRemove: %v", err)
	}

	if _, found, _ := fs.Get(ctx, "raqam_favorites"); found {
		t.Error("key still present after MultiRemove")
	}
}
