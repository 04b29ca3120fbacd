package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := store.SetSection("search", map[string]interface{}{
		"default_search_engine": "ecosia",
	}); err != nil {
		t.Fatalf("SetSection failed: %v", err)
	}
	if !store.IsModified() {
		t.Error("store should be modified after SetSection")
	}

	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if store.IsModified() {
		t.Error("store should be clean after Save")
	}

	reloaded, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	data, err := reloaded.GetSection("search")
	if err != nil {
		t.Fatalf("GetSection failed: %v", err)
	}
	if data["default_search_engine"] != "ecosia" {
		t.Errorf("expected ecosia, got %v", data["default_search_engine"])
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed for missing file: %v", err)
	}

	data, err := store.GetSection("search")
	if err != nil {
		t.Fatalf("GetSection failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty section, got %v", data)
	}
}

func TestFileStoreImportsLegacySettings(t *testing.T) {
	dir := t.TempDir()
	legacy := map[string]string{"default_search_engine": "duckduckgo"}
	raw, err := json.Marshal(legacy)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, legacyFileName), raw, 0600); err != nil {
		t.Fatal(err)
	}

	store, err := NewFileStore(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	data, err := store.GetSection(SectionIDSearch)
	if err != nil {
		t.Fatalf("GetSection failed: %v", err)
	}
	if data["default_search_engine"] != "duckduckgo" {
		t.Errorf("legacy engine not imported, got %v", data["default_search_engine"])
	}
}

func TestFileStoreLegacyIgnoredWhenConfigExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetSection(SectionIDSearch, map[string]interface{}{
		"default_search_engine": "yahoo",
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, legacyFileName),
		[]byte(`{"default_search_engine":"ecosia"}`), 0600); err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := reloaded.GetSection(SectionIDSearch)
	if err != nil {
		t.Fatal(err)
	}
	if data["default_search_engine"] != "yahoo" {
		t.Errorf("config file should win over legacy file, got %v", data["default_search_engine"])
	}
}
