package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/relock/internal/adapters/detector"
	"go.trai.ch/relock/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tmpDir := t.TempDir()

	markerFile := filepath.Join(tmpDir, ".dockerenv")
	markerDir := filepath.Join(tmpDir, "workspaces")

	writeMarkerFile := func(t *testing.T) {
		t.Helper()
		if err := os.WriteFile(markerFile, nil, 0o644); err != nil {
			t.Fatalf("Failed to create marker file: %v", err)
		}
	}
	makeMarkerDir := func(t *testing.T) {
		t.Helper()
		if err := os.MkdirAll(markerDir, 0o755); err != nil {
			t.Fatalf("Failed to create marker dir: %v", err)
		}
	}

	tests := []struct {
		name     string
		setup    func(t *testing.T)
		expected domain.Classification
	}{
		{
			name:     "both markers absent",
			setup:    func(_ *testing.T) {},
			expected: domain.Standalone,
		},
		{
			name:     "only marker file present",
			setup:    writeMarkerFile,
			expected: domain.Standalone,
		},
		{
			name: "only marker dir present",
			setup: func(t *testing.T) {
				t.Helper()
				makeMarkerDir(t)
			},
			expected: domain.Standalone,
		},
		{
			name: "both markers present",
			setup: func(t *testing.T) {
				t.Helper()
				writeMarkerFile(t)
				makeMarkerDir(t)
			},
			expected: domain.Contained,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = os.Remove(markerFile)
			_ = os.RemoveAll(markerDir)
			tt.setup(t)

			got := detector.Classify(markerFile, markerDir)
			if got != tt.expected {
				t.Errorf("Classify() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClassify_MarkerKindsSwapped(t *testing.T) {
	tmpDir := t.TempDir()

	// Marker file is a directory and marker dir is a file: both wrong kind.
	markerFile := filepath.Join(tmpDir, ".dockerenv")
	markerDir := filepath.Join(tmpDir, "workspaces")

	if err := os.MkdirAll(markerFile, 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(markerDir, nil, 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if got := detector.Classify(markerFile, markerDir); got != domain.Standalone {
		t.Errorf("Classify() = %v, want Standalone", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()

	markerFile := filepath.Join(tmpDir, ".dockerenv")
	markerDir := filepath.Join(tmpDir, "workspaces")
	if err := os.WriteFile(markerFile, nil, 0o644); err != nil {
		t.Fatalf("Failed to create marker file: %v", err)
	}
	if err := os.MkdirAll(markerDir, 0o755); err != nil {
		t.Fatalf("Failed to create marker dir: %v", err)
	}

	// Same filesystem state must yield the same answer on every call.
	for range 5 {
		if got := detector.Classify(markerFile, markerDir); got != domain.Contained {
			t.Fatalf("Classify() = %v, want Contained", got)
		}
	}
}
