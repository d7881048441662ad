package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/samvad-hq/samvad-status-probe/internal/domain"
	bolt "go.etcd.io/bbolt"
)

func openTestStore(t *testing.T, opts Options) *boltStore {
	t.Helper()
	raw, err := openBolt(filepath.Join(t.TempDir(), "journal.db"), normalizeOptions(opts))
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := raw.(*boltStore)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltStoreRecentReturnsNewestFirst(t *testing.T) {
	store := openTestStore(t, Options{})
	base := time.Unix(1_700_000_000, 0)

	for i, id := range []string{"r1", "r2", "r3"} {
		err := store.Record(domain.Report{ID: id, ProbeID: "p", CreatedAt: base.Add(time.Duration(i) * time.Second)})
		if err != nil {
			t.Fatalf("Record %s: %v", id, err)
		}
	}

	got, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r3" || got[1].ID != "r2" {
		t.Fatalf("unexpected order %#v", got)
	}
}

func TestBoltStoreExpiresReports(t *testing.T) {
	store := openTestStore(t, Options{ReportTTL: time.Minute, CleanupInterval: time.Minute})
	now := time.Now()
	store.now = func() time.Time { return now }

	if err := store.Record(domain.Report{ID: "old", Outcome: domain.OutcomeFailure}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got, err := store.Recent(10)
	if err != nil || len(got) != 1 || got[0].Outcome != domain.OutcomeFailure {
		t.Fatalf("expected stored report, got %#v err=%v", got, err)
	}

	now = now.Add(2 * time.Minute)
	got, err = store.Recent(10)
	if err != nil {
		t.Fatalf("Recent after expiry: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected report to expire, got %#v", got)
	}

	var remaining int
	_ = store.db.View(func(tx *bolt.Tx) error {
		remaining = tx.Bucket([]byte(reportBucket)).Stats().KeyN
		return nil
	})
	if remaining != 0 {
		t.Fatalf("expected cleanup to delete expired keys, %d left", remaining)
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.Record(domain.Report{ID: "x"}); err != nil {
		t.Fatalf("noop store Record: %v", err)
	}
	if got, _ := store.Recent(5); len(got) != 0 {
		t.Fatalf("noop store returned reports")
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatalf("expected unsupported type error")
	}
}
