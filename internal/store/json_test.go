package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pmla-casebook/internal/registry"
)

func buildSnapshot() registry.Snapshot {
	reg := registry.New()
	rec := reg.GetOrCreate("ECIR/01/HQ/2020")
	rec.AddPerson("John Doe")
	reg.SetDateIfAbsent("ECIR/01/HQ/2020", time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC))
	reg.AppendFact("ECIR/01/HQ/2020", registry.SearchFact{Date: "20/03/2020", Location: "Mumbai", Sheet: "Searches"})
	reg.AppendFact("ECIR/01/HQ/2020", registry.AttachmentFact{
		Fields: map[string]string{"PAO No": "PAO/1/2020"},
		Sheet:  "PAO Details",
	})
	return reg.Snapshot()
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master_cases.json")
	snap := buildSnapshot()

	if err := Save(path, snap); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(loaded, snap) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", loaded, snap)
	}
}

func TestSaveFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master_cases.json")
	if err := Save(path, buildSnapshot()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// The on-disk field names are the consumer contract.
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	c := raw["ECIR/01/HQ/2020"]
	for _, field := range []string{
		"ecir_no", "ecir_date", "status", "zonal_office",
		"persons_involved", "searches", "arrests", "paos", "pcs",
	} {
		if _, ok := c[field]; !ok {
			t.Errorf("snapshot missing contract field %q", field)
		}
	}
	if got := string(c["ecir_date"]); got != `"2020-03-15T00:00:00"` {
		t.Errorf("ecir_date = %s, want ISO-8601 string", got)
	}
	if got := string(c["arrests"]); got != "[]" {
		t.Errorf("arrests = %s, want []", got)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, "out.json"), buildSnapshot()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load() of a missing file should error")
	}
}
