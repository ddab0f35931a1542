package history

import (
	"path/filepath"
	"testing"
	"time"

	"quizdown/internal/testutil"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	ctx := testutil.Context(t, 5*time.Second)
	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// TestRecordAndRecent verifies attempts are listed newest first.
func TestRecordAndRecent(t *testing.T) {
	store := openStore(t, "")
	clock := testutil.NewFakeClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	store.now = clock.Now
	ctx := testutil.Context(t, 5*time.Second)

	first, err := store.Record(ctx, "abc", "quiz.txt", 1, 2)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	clock.Advance(time.Minute)
	second, err := store.Record(ctx, "abc", "quiz.txt", 2, 2)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	attempts, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != second.ID || attempts[1].ID != first.ID {
		t.Fatalf("unexpected order: %+v", attempts)
	}
	if !attempts[0].FinishedAt.Equal(second.FinishedAt) {
		t.Fatalf("expected finished_at %v, got %v", second.FinishedAt, attempts[0].FinishedAt)
	}
}

// TestBestPicksHighestPercentage verifies best attempt selection per quiz.
func TestBestPicksHighestPercentage(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "history.duckdb"))
	ctx := testutil.Context(t, 5*time.Second)

	if _, ok, err := store.Best(ctx, "abc"); err != nil || ok {
		t.Fatalf("expected no best attempt, got ok=%v err=%v", ok, err)
	}
	for _, score := range []int{1, 3, 2} {
		if _, err := store.Record(ctx, "abc", "stdin", score, 3); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if _, err := store.Record(ctx, "other", "stdin", 5, 5); err != nil {
		t.Fatalf("record: %v", err)
	}
	best, ok, err := store.Best(ctx, "abc")
	if err != nil || !ok {
		t.Fatalf("best: ok=%v err=%v", ok, err)
	}
	if best.Score != 3 || best.Percentage() != 100 {
		t.Fatalf("unexpected best attempt: %+v", best)
	}
}

// TestRecordRejectsImpossibleScore verifies score bounds.
func TestRecordRejectsImpossibleScore(t *testing.T) {
	store := openStore(t, "")
	ctx := testutil.Context(t, 5*time.Second)
	if _, err := store.Record(ctx, "abc", "stdin", 3, 2); err == nil {
		t.Fatalf("expected error")
	}
}
