package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestGzipFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entry.cache.gz")
	payload := []byte(`{"ok":true}`)

	WriteGzipFile(t, path, payload)

	got := ReadGzipFile(t, path)
	if !bytes.Equal(got, payload) {
		t.Errorf("ReadGzipFile() = %s, want %s", got, payload)
	}
}

func TestWriteGzipFile_ProducesGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entry.cache.gz")

	WriteGzipFile(t, path, []byte("data"))

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		t.Errorf("file does not start with the gzip magic bytes: % x", raw[:2])
	}
}

func TestLoadFixtureJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(`{"name":"demo","count":3}`), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	var dest struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	LoadFixtureJSON(t, path, &dest)

	if dest.Name != "demo" || dest.Count != 3 {
		t.Errorf("LoadFixtureJSON() = %+v", dest)
	}
}

func TestFixturePath(t *testing.T) {
	if got := FixturePath("nested.json"); got != filepath.Join("testdata", "nested.json") {
		t.Errorf("FixturePath() = %q", got)
	}
}
