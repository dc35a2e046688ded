package ialabel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGeometry(t *testing.T) {
	geom := DefaultGeometry()
	if geom.Offset != 281 || geom.PPC != 14 {
		t.Errorf("Unexpected defaults: %+v", geom)
	}
	if geom.IATop != 514 || geom.IAHeight != 76 {
		t.Errorf("Unexpected vertical defaults: %+v", geom)
	}
}

func TestLoadGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geometry.yaml")
	content := "offset: 300\nppc: 12\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write geometry file: %v", err)
	}

	geom, err := LoadGeometry(path)
	if err != nil {
		t.Fatalf("LoadGeometry failed: %v", err)
	}
	if geom.Offset != 300 {
		t.Errorf("Expected offset 300, got %d", geom.Offset)
	}
	if geom.PPC != 12 {
		t.Errorf("Expected ppc 12, got %d", geom.PPC)
	}
	// Keys absent from the file keep their defaults.
	if geom.IATop != 514 || geom.IAHeight != 76 {
		t.Errorf("Expected default vertical bounds, got %+v", geom)
	}
}

func TestLoadGeometryMissingFile(t *testing.T) {
	if _, err := LoadGeometry(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected an error for a missing geometry file")
	}
}

func TestLoadGeometryInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("offset: [nope"), 0644); err != nil {
		t.Fatalf("Failed to write geometry file: %v", err)
	}
	if _, err := LoadGeometry(path); err == nil {
		t.Error("Expected an error for invalid YAML")
	}
}
