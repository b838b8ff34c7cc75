package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksOperationsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordStoreOperation(OpCreate, 10*time.Millisecond, nil)
	rec.RecordStoreOperation(OpCreate, 15*time.Millisecond, errors.New("duplicate"))

	if got := rec.OperationCalls(OpCreate); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.OperationErrors(OpCreate); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot(OpCreate)
	if snap.LastLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastLatency)
	}
	if other := rec.Snapshot(OpDelete); other.Calls != 0 {
		t.Fatalf("expected untouched operation to be empty, got %+v", other)
	}
}

func TestRecorderTracksGamesStored(t *testing.T) {
	rec := NewRecorder()
	rec.SetGamesStored(3)
	rec.SetGamesStored(1)

	if got := rec.GamesStored(); got != 1 {
		t.Fatalf("expected 1 stored game, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordStoreOperation(OpGet, time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/v1/games", 200, time.Millisecond)
	rec.SetGamesStored(2)
	rec.AddGamesStored(1)
	if rec.GamesStored() != 0 || rec.OperationCalls(OpGet) != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestRecorderConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec.RecordStoreOperation(OpList, time.Millisecond, nil)
			rec.SetGamesStored(i)
		}(i)
	}
	wg.Wait()

	if got := rec.OperationCalls(OpList); got != 20 {
		t.Fatalf("expected 20 calls, got %d", got)
	}
}

func TestRecorderAddGamesStoredConcurrent(t *testing.T) {
	rec := NewRecorder()
	rec.SetGamesStored(5)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				rec.AddGamesStored(2)
			} else {
				rec.AddGamesStored(-1)
			}
		}(i)
	}
	wg.Wait()

	if got := rec.GamesStored(); got != 25 {
		t.Fatalf("expected 25 stored games, got %d", got)
	}
}
