package file

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"NoResultsReport/src/storage"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "search.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRecords(t *testing.T) {
	path := writeInput(t, `[{"Source": "web"}, {"Source": "mobile"}, {}]`)

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if !strings.Contains(string(records[1]), "mobile") {
		t.Errorf("record 1 = %s", records[1])
	}
}

func TestReadRecordsErrors(t *testing.T) {
	cases := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json"), ErrInputMissing},
		{"truncated json", writeInput(t, `[{"Source": `), ErrInputMalformed},
		{"top-level object", writeInput(t, `{"Source": "web"}`), ErrInputMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := ReadRecords(tc.path)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if len(records) != 0 {
				t.Errorf("records = %v, want none", records)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "nope.json")

	records := NewReader(&out, storage.NewNopLogger()).Load(path)

	if records == nil || len(records) != 0 {
		t.Errorf("records = %v, want empty non-nil slice", records)
	}
	if !strings.Contains(out.String(), "File not found: "+path) {
		t.Errorf("diagnostic = %q", out.String())
	}
}

func TestLoadMalformed(t *testing.T) {
	var out bytes.Buffer
	records := NewReader(&out, storage.NewNopLogger()).Load(writeInput(t, `not json`))

	if len(records) != 0 {
		t.Errorf("records = %v, want empty", records)
	}
	if !strings.Contains(out.String(), "Error decoding JSON") {
		t.Errorf("diagnostic = %q", out.String())
	}
}

func TestLoadEmptyArray(t *testing.T) {
	var out bytes.Buffer
	records := NewReader(&out, storage.NewNopLogger()).Load(writeInput(t, `[]`))

	if len(records) != 0 {
		t.Errorf("records = %v", records)
	}
	if out.Len() != 0 {
		t.Errorf("no diagnostic expected, got %q", out.String())
	}
}
