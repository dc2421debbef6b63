package storage

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

// extData mirrors the shape real extensions carry: a small flat struct.
type extData struct {
	Seed   int64 `json:"seed"`
	Chance int   `json:"chance"`
}

func TestExtensionState_SetGetRoundTrip(t *testing.T) {
	var e ExtensionState

	// Set on a nil map allocates it.
	if err := e.Set("generator", extData{Seed: 42, Chance: 75}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out extData
	found, err := e.Get("generator", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", found, true)
	testutil.AssertEqual(t, "seed", out.Seed, int64(42))
	testutil.AssertEqual(t, "chance", out.Chance, 75)
}

func TestExtensionState_SetOverwrites(t *testing.T) {
	e := ExtensionState{}

	if err := e.Set("generator", extData{Seed: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Set("generator", extData{Seed: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out extData
	if _, err := e.Get("generator", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "seed", out.Seed, int64(2))
}

func TestExtensionState_SetUnmarshallable(t *testing.T) {
	e := ExtensionState{}

	if err := e.Set("bad", make(chan int)); err == nil {
		t.Error("expected marshal error")
	}
}

func TestExtensionState_GetMissing(t *testing.T) {
	tests := map[string]struct {
		state ExtensionState
	}{
		"nil map":     {state: nil},
		"missing key": {state: ExtensionState{"other": []byte(`"kept"`)}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out extData
			found, err := tt.state.Get("generator", &out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "found", found, false)
		})
	}
}

func TestExtensionState_GetUnmarshalError(t *testing.T) {
	e := ExtensionState{
		"bad": []byte(`{"invalid json`),
	}

	var out extData
	found, err := e.Get("bad", &out)

	testutil.AssertEqual(t, "found", found, true)
	testutil.AssertErrorContains(t, err, "unmarshal extension")
}

func TestExtensionState_Delete(t *testing.T) {
	tests := map[string]struct {
		initial ExtensionState
		key     string
	}{
		"nil map":      {initial: nil, key: "anything"},
		"missing key":  {initial: ExtensionState{"other": []byte(`"kept"`)}, key: "generator"},
		"existing key": {initial: ExtensionState{"generator": []byte(`{}`), "other": []byte(`"kept"`)}, key: "generator"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := tt.initial
			e.Delete(tt.key)

			if e == nil {
				return
			}
			if _, ok := e[tt.key]; ok {
				t.Errorf("key %q should have been deleted", tt.key)
			}
			if name == "existing key" {
				if _, ok := e["other"]; !ok {
					t.Error("unrelated key should survive delete")
				}
			}
		})
	}
}
