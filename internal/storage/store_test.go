package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

// mockStoreSpec implements ValidatingSpec for FileStore tests.
type mockStoreSpec struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (s *mockStoreSpec) Validate() error {
	return nil
}

// writeAssetFile marshals an asset envelope into dir for load tests.
func writeAssetFile(t *testing.T, dir, file string, asset Asset[*mockStoreSpec]) {
	t.Helper()

	data, err := json.Marshal(asset)
	if err != nil {
		t.Fatalf("marshalling fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestNewFileStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "path", store.path, tmpDir)
	testutil.AssertEqual(t, "loaded specs", store.Len(), 0)
}

func TestNewFileStore_NonExistentDirectory(t *testing.T) {
	_, err := NewFileStore[*mockStoreSpec]("/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestNewFileStore_LoadsExistingAssets(t *testing.T) {
	tmpDir := t.TempDir()

	writeAssetFile(t, tmpDir, "den.json", Asset[*mockStoreSpec]{
		Version:    1,
		Identifier: "ridge-den",
		Spec:       &mockStoreSpec{Name: "den", Value: 1},
	})
	writeAssetFile(t, tmpDir, "creek.json", Asset[*mockStoreSpec]{
		Version:    1,
		Identifier: "frozen-creek",
		Spec:       &mockStoreSpec{Name: "creek", Value: 2},
	})

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "loaded specs", store.Len(), 2)

	den := store.Get("ridge-den")
	if den == nil {
		t.Fatal("expected ridge-den to be loaded")
	}
	testutil.AssertEqual(t, "name", den.Name, "den")
	testutil.AssertEqual(t, "value", den.Value, 1)
}

func TestNewFileStore_LoadErrors(t *testing.T) {
	tests := map[string]struct {
		setup func(t *testing.T, dir string)
	}{
		"malformed json": {
			setup: func(t *testing.T, dir string) {
				if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{invalid`), 0644); err != nil {
					t.Fatalf("writing fixture: %v", err)
				}
			},
		},
		"failed validation": {
			setup: func(t *testing.T, dir string) {
				// Version 0 fails the envelope check.
				writeAssetFile(t, dir, "bad.json", Asset[*mockStoreSpec]{
					Identifier: "ridge-den",
					Spec:       &mockStoreSpec{Name: "den"},
				})
			},
		},
		"duplicate id across directories": {
			setup: func(t *testing.T, dir string) {
				sub := filepath.Join(dir, "nested")
				if err := os.Mkdir(sub, 0755); err != nil {
					t.Fatalf("creating subdir: %v", err)
				}
				asset := Asset[*mockStoreSpec]{
					Version:    1,
					Identifier: "ridge-den",
					Spec:       &mockStoreSpec{Name: "den"},
				}
				writeAssetFile(t, dir, "one.json", asset)
				writeAssetFile(t, sub, "two.json", asset)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(t, tmpDir)

			if _, err := NewFileStore[*mockStoreSpec](tmpDir); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestNewFileStore_IgnoresNonJSONFiles(t *testing.T) {
	tmpDir := t.TempDir()

	writeAssetFile(t, tmpDir, "den.json", Asset[*mockStoreSpec]{
		Version:    1,
		Identifier: "ridge-den",
		Spec:       &mockStoreSpec{Name: "den"},
	})
	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("not an asset"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "loaded specs", store.Len(), 1)
}

func TestFileStore_Get(t *testing.T) {
	store, err := NewFileStore[*mockStoreSpec](t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save("ridge-den", &mockStoreSpec{Name: "den", Value: 42}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.Get("ridge-den")
	if got == nil {
		t.Fatal("expected spec")
	}
	testutil.AssertEqual(t, "value", got.Value, 42)

	if store.Get("no-such-id") != nil {
		t.Error("expected nil for unknown id")
	}
	if store.Get("") != nil {
		t.Error("expected nil for empty id")
	}
}

func TestFileStore_GetAllReturnsCopy(t *testing.T) {
	store, err := NewFileStore[*mockStoreSpec](t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for id, spec := range map[string]*mockStoreSpec{
		"ridge-den":    {Name: "den", Value: 1},
		"frozen-creek": {Name: "creek", Value: 2},
	} {
		if err := store.Save(id, spec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all := store.GetAll()
	testutil.AssertEqual(t, "count", len(all), 2)

	// Mutating the returned map must not touch the store.
	delete(all, "ridge-den")
	testutil.AssertEqual(t, "store untouched", store.Len(), 2)
}

func TestFileStore_Save(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Save("ridge-den", &mockStoreSpec{Name: "den", Value: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The spec is cached and reachable immediately.
	cached := store.Get("ridge-den")
	if cached == nil {
		t.Fatal("expected cached spec")
	}
	testutil.AssertEqual(t, "cached value", cached.Value, 100)

	// And the on-disk envelope round-trips through a fresh store.
	reloaded, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := reloaded.Get("ridge-den")
	if got == nil {
		t.Fatal("expected spec after reload")
	}
	testutil.AssertEqual(t, "reloaded name", got.Name, "den")
	testutil.AssertEqual(t, "reloaded value", got.Value, 100)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store, err := NewFileStore[*mockStoreSpec](t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Save("ridge-den", &mockStoreSpec{Name: "first", Value: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save("ridge-den", &mockStoreSpec{Name: "second", Value: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "count", store.Len(), 1)
	testutil.AssertEqual(t, "name", store.Get("ridge-den").Name, "second")
}

func TestFileStore_filePath(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "file path", store.filePath("ridge-den"), filepath.Join(tmpDir, "ridge-den.json"))
}
