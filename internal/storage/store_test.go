package storage

import (
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"
)

func testOpen(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestPutGetRoundTrip(t *testing.T) {
	s, _ := testOpen(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := s.Put(KeyCart, record{Name: "x", Count: 3}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	var got record
	if !s.Get(KeyCart, &got) {
		t.Fatal("expected record to be found")
	}
	if got.Name != "x" || got.Count != 3 {
		t.Fatalf("record did not round-trip: %+v", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	s, _ := testOpen(t)

	var out []string
	if s.Get("nope", &out) {
		t.Fatal("expected miss for absent key")
	}
}

func TestGetSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := s.Put(KeyShipping, map[string]string{"city": "New York"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	s.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	var got map[string]string
	if !reopened.Get(KeyShipping, &got) || got["city"] != "New York" {
		t.Fatalf("record lost across reopen: %v", got)
	}
}

func TestCorruptRecordReadsAsAbsent(t *testing.T) {
	s, _ := testOpen(t)

	// Write garbage straight past the envelope layer.
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(KeyOrders), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("raw write failed: %v", err)
	}

	var out []string
	if s.Get(KeyOrders, &out) {
		t.Fatal("expected corrupt record to read as absent")
	}
}

func TestVersionMismatchReadsAsAbsent(t *testing.T) {
	s, _ := testOpen(t)

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(KeyCart), []byte(`{"v":99,"data":[]}`))
	})
	if err != nil {
		t.Fatalf("raw write failed: %v", err)
	}

	var out []string
	if s.Get(KeyCart, &out) {
		t.Fatal("expected version-mismatched record to read as absent")
	}
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	s, _ := testOpen(t)
	if err := s.Delete("nope"); err != nil {
		t.Fatalf("delete of absent key returned error: %v", err)
	}
}
