package session

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/cardroom/cambio/game/engine"
	"github.com/cardroom/cambio/game/service"
)

func newTestPersistence(t *testing.T) *FilePersistence {
	t.Helper()
	fp, err := NewFilePersistence(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create persistence: %v", err)
	}
	return fp
}

func TestFilePersistence_SaveAndLoad(t *testing.T) {
	fp := newTestPersistence(t)
	mgr := NewManagerWithPersistence(fp)

	sess, err := mgr.Create("roundtrip", testPlayers)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Play a couple of moves so the state is non-trivial
	sess.Submit(engine.Move{Type: engine.MoveDrawDeck})
	sess.Submit(engine.Move{Type: engine.MovePeek, Slot: engine.SlotOf(3)})
	if err := mgr.Save("roundtrip"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := fp.Load("roundtrip")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := sess.Snapshot()
	got := loaded.Snapshot()

	if got.ID != want.ID {
		t.Errorf("ID mismatch: %s vs %s", got.ID, want.ID)
	}
	if got.CurrentPlayer != want.CurrentPlayer {
		t.Errorf("CurrentPlayer mismatch: %s vs %s", got.CurrentPlayer, want.CurrentPlayer)
	}
	if got.DrawPileCount != want.DrawPileCount {
		t.Errorf("DrawPileCount mismatch: %d vs %d", got.DrawPileCount, want.DrawPileCount)
	}
	if len(got.History) != len(want.History) {
		t.Fatalf("History length mismatch: %d vs %d", len(got.History), len(want.History))
	}
	for i := range got.History {
		if got.History[i] != want.History[i] {
			t.Errorf("History entry %d mismatch: %+v vs %+v", i, got.History[i], want.History[i])
		}
	}

	// Cards survive the JSON round trip slot by slot
	for pi := range want.Players {
		for si := range want.Players[pi].Hand {
			if got.Players[pi].Hand[si] != want.Players[pi].Hand[si] {
				t.Errorf("Player %d slot %d mismatch: %+v vs %+v",
					pi, si, got.Players[pi].Hand[si], want.Players[pi].Hand[si])
			}
		}
	}

	// The restored engine keeps playing
	if outcome := loaded.Submit(engine.Move{Type: engine.MoveDrawDeck}); !outcome.Valid {
		t.Errorf("Loaded session rejected a legal move: %s", outcome.Reason)
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	fp := newTestPersistence(t)

	if _, err := fp.Load("ghost"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_Delete(t *testing.T) {
	fp := newTestPersistence(t)
	mgr := NewManagerWithPersistence(fp)
	mgr.Create("doomed", testPlayers)

	if !fp.Exists("doomed") {
		t.Fatal("Expected session file after create")
	}
	if err := fp.Delete("doomed"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fp.Exists("doomed") {
		t.Error("Expected file gone after delete")
	}
	if err := fp.Delete("doomed"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	fp := newTestPersistence(t)
	mgr := NewManagerWithPersistence(fp)

	mgr.Create("one", testPlayers)
	mgr.Create("two", testPlayers)

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 ids, got %d: %v", len(ids), ids)
	}

	found := map[string]bool{}
	for _, id := range ids {
		found[id] = true
	}
	if !found["one"] || !found["two"] {
		t.Errorf("Expected ids one and two, got %v", ids)
	}
}

func TestFilePersistence_PathTraversal(t *testing.T) {
	fp := newTestPersistence(t)

	path := fp.getFilePath("../../etc/passwd")
	if strings.Contains(path, "..") {
		t.Errorf("Path traversal not sanitized: %s", path)
	}
	if filepath.Dir(path) != fp.sessionsDir {
		t.Errorf("Sanitized path escapes sessions dir: %s", path)
	}
}

func TestManager_LoadPersistedSessions(t *testing.T) {
	dir := t.TempDir()

	fp, err := NewFilePersistence(dir)
	if err != nil {
		t.Fatalf("Failed to create persistence: %v", err)
	}

	// Populate storage with one manager, then restart with a fresh one
	first := NewManagerWithPersistence(fp)
	first.Create("survivor", testPlayers)

	second := NewManagerWithPersistence(fp)
	if second.Count() != 0 {
		t.Fatal("Fresh manager should start empty")
	}
	if err := second.LoadPersistedSessions(); err != nil {
		t.Fatalf("LoadPersistedSessions failed: %v", err)
	}
	if second.Count() != 1 {
		t.Fatalf("Expected 1 loaded session, got %d", second.Count())
	}

	sess, err := second.Get("survivor")
	if err != nil {
		t.Fatalf("Get failed after load: %v", err)
	}
	if sess.Snapshot().TurnPhase != engine.PhaseAwaitingAction {
		t.Error("Loaded session should be in play")
	}
}

func TestManager_GetFallsBackToPersistence(t *testing.T) {
	fp := newTestPersistence(t)
	mgr := NewManagerWithPersistence(fp)

	mgr.Create("lazy", testPlayers)
	if err := mgr.DeleteFromMemory("lazy"); err != nil {
		t.Fatalf("DeleteFromMemory failed: %v", err)
	}

	// Get should transparently reload from disk
	sess, err := mgr.Get("lazy")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if sess.ID != "lazy" {
		t.Errorf("Expected lazy, got %s", sess.ID)
	}
	if mgr.Count() != 1 {
		t.Errorf("Expected session cached back in memory, got count %d", mgr.Count())
	}
}

func TestManager_ConcurrentColdGetSharesOneSession(t *testing.T) {
	fp := newTestPersistence(t)
	mgr := NewManagerWithPersistence(fp)

	mgr.Create("cold", testPlayers)
	if err := mgr.DeleteFromMemory("cold"); err != nil {
		t.Fatalf("DeleteFromMemory failed: %v", err)
	}

	// Many goroutines reload the same persisted session at once. Every
	// caller must get the same Session object, otherwise each would carry
	// its own lock and moves could run concurrently against diverging
	// engines.
	const workers = 32
	results := make([]*service.Session, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			<-start
			sess, err := mgr.Get("cold")
			if err != nil {
				t.Errorf("Get failed: %v", err)
				return
			}
			results[n] = sess
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("Concurrent Gets returned distinct Session objects for one id")
		}
	}
	if mgr.Count() != 1 {
		t.Errorf("Expected exactly 1 cached session, got %d", mgr.Count())
	}
}

func TestManager_SaveAllSessions(t *testing.T) {
	fp := newTestPersistence(t)
	mgr := NewManagerWithPersistence(fp)

	mgr.Create("a", testPlayers)
	mgr.Create("b", testPlayers)

	if err := mgr.SaveAllSessions(); err != nil {
		t.Fatalf("SaveAllSessions failed: %v", err)
	}

	ids, _ := fp.ListAll()
	if len(ids) != 2 {
		t.Errorf("Expected 2 persisted sessions, got %d", len(ids))
	}
}
