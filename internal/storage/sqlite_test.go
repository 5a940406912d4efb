package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-birds/internal/core"
	"github.com/vovakirdan/tui-birds/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(score int, at time.Time) replay.Run {
	return replay.Run{
		GameID:   "birds",
		Seed:     42,
		TickRate: 60,
		Ticks:    900,
		Config:   []byte("pipes:\n  speed: 2\n"),
		Events: []replay.Event{
			{Tick: 3, Control: core.ControlKey, Pressed: true},
			{Tick: 9, Control: core.ControlKey, Pressed: false},
			{Tick: 40, Control: core.ControlPointer, Pressed: true},
		},
		FinalPhase: "GameOver",
		FinalScore: score,
		Source:     "sim",
		CreatedAt:  at,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreTildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "test.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	want := sampleRun(7, at)

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("SaveRun() returned id %d", id)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got.ID != id || got.GameID != want.GameID || got.Seed != want.Seed || got.TickRate != want.TickRate {
		t.Errorf("header mismatch: %+v", got)
	}
	if got.Ticks != want.Ticks || got.FinalPhase != want.FinalPhase || got.FinalScore != want.FinalScore || got.Source != want.Source {
		t.Errorf("outcome mismatch: %+v", got)
	}
	if string(got.Config) != string(want.Config) {
		t.Errorf("config = %q, expected %q", got.Config, want.Config)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, at)
	}
	if len(got.Events) != len(want.Events) {
		t.Fatalf("events = %+v, expected %+v", got.Events, want.Events)
	}
	for i := range want.Events {
		if got.Events[i] != want.Events[i] {
			t.Errorf("event %d = %+v, expected %+v", i, got.Events[i], want.Events[i])
		}
	}
}

func TestRunNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Run(99); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Run() = %v, expected ErrRunNotFound", err)
	}
	if err := store.DeleteRun(99); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("DeleteRun() = %v, expected ErrRunNotFound", err)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(sampleRun(i, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, expected 3", len(runs))
	}
	for i, expected := range []int{4, 3, 2} {
		if runs[i].FinalScore != expected {
			t.Errorf("runs[%d].FinalScore = %d, expected %d", i, runs[i].FinalScore, expected)
		}
		if runs[i].Events != nil {
			t.Errorf("runs[%d] should be listed without events", i)
		}
	}
}

func TestDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(sampleRun(1, time.Now()))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.Run(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("deleted run still loads: %v", err)
	}

	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM run_events WHERE run_id = ?", id).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("%d events survived the delete", n)
	}
}

func TestEventsCascadeOnEveryConnection(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.SaveRun(sampleRun(1, time.Now()))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Two connections open at once are distinct pool members.
	first, err := store.db.Conn(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	second, err := store.db.Conn(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	for i, conn := range []*sql.Conn{first, second} {
		var on int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&on); err != nil {
			t.Fatal(err)
		}
		if on != 1 {
			t.Errorf("connection %d: foreign_keys = %d, expected 1", i, on)
		}
	}

	if _, err := second.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := second.QueryRowContext(ctx, "SELECT COUNT(*) FROM run_events WHERE run_id = ?", id).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("%d events survived deleting their run", n)
	}
}

func TestRunWithoutEvents(t *testing.T) {
	store := openTestStore(t)
	run := sampleRun(0, time.Now())
	run.Events = nil
	run.Config = nil

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(got.Events) != 0 || len(got.Config) != 0 {
		t.Errorf("expected an empty run, got %+v", got)
	}
}
