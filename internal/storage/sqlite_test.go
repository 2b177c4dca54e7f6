package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRounds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRound(RoundRecord{Playstyle: "single", Score: 4}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("single"); high != 4 {
		t.Errorf("HighScore after reopen = %d, expected 4", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundRecord{
		{Playstyle: "single", Score: 10, SecondsAlive: 21.5, Player: "ana"},
		{Playstyle: "single", Score: 5, SecondsAlive: 11},
		{Playstyle: "single", Score: 20, SecondsAlive: 40.25, Player: "bo"},
		{Playstyle: "multi", Score: 50, SecondsAlive: 90},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	top, err := store.TopRounds("single", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 single rounds, got %d", len(top))
	}

	// Should be sorted descending
	for i, want := range []int{20, 10, 5} {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, want)
		}
	}
	if top[0].Player != "bo" || top[0].SecondsAlive != 40.25 {
		t.Errorf("top[0] = %+v, expected bo with 40.25s", top[0])
	}
	if _, err := uuid.Parse(top[0].RoundID); err != nil {
		t.Errorf("RoundID %q is not a UUID: %v", top[0].RoundID, err)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	multi, err := store.TopRounds("multi", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(multi) != 1 {
		t.Errorf("Expected 1 multi round, got %d", len(multi))
	}
}

func TestStoreKeepsGivenRoundID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	if _, err := store.SaveRound(RoundRecord{RoundID: id, Playstyle: "single", Score: 1}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(RoundRecord{RoundID: id, Playstyle: "single", Score: 2}); err == nil {
		t.Error("saving the same round ID twice should fail")
	}

	top, _ := store.TopRounds("single", 1)
	if len(top) != 1 || top[0].RoundID != id {
		t.Errorf("TopRounds = %+v, expected round %s", top, id)
	}
}

func TestStoreTopRoundsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundRecord{Playstyle: "single", Score: (i + 1) * 10})
	}
	store.SaveRound(RoundRecord{Playstyle: "single", Score: 50, SecondsAlive: 99})

	top, err := store.TopRounds("single", 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(top))
	}
	if top[0].Score != 50 || top[0].SecondsAlive != 99 {
		t.Errorf("tie should go to the longer round, got %+v", top[0])
	}
	if top[1].Score != 50 || top[2].Score != 40 {
		t.Errorf("Scores not in expected order: %v", top)
	}

	// Default limit
	all, _ := store.TopRounds("single", 0)
	if len(all) != 6 {
		t.Errorf("limit 0 should use the default, got %d rounds", len(all))
	}
}

func TestStoreHighScoreAndSurvival(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("single")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for no rounds, got %d", high)
	}
	secs, err := store.LongestSurvival("single")
	if err != nil || secs != 0 {
		t.Errorf("LongestSurvival() = %v, %v, expected 0", secs, err)
	}

	store.SaveRound(RoundRecord{Playstyle: "single", Score: 10, SecondsAlive: 30})
	store.SaveRound(RoundRecord{Playstyle: "single", Score: 30, SecondsAlive: 12.5})
	store.SaveRound(RoundRecord{Playstyle: "single", Score: 20, SecondsAlive: 45})

	if high, _ = store.HighScore("single"); high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
	if secs, _ = store.LongestSurvival("single"); secs != 45 {
		t.Errorf("Expected longest survival of 45, got %v", secs)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{Playstyle: "single", Score: 1})
	store.SaveRound(RoundRecord{Playstyle: "single", Score: 2})
	store.SaveRound(RoundRecord{Playstyle: "multi", Score: 3})

	if err := store.ClearRounds("single"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	single, _ := store.TopRounds("single", 10)
	if len(single) != 0 {
		t.Errorf("Expected 0 single rounds after clear, got %d", len(single))
	}

	multi, _ := store.TopRounds("multi", 10)
	if len(multi) != 1 {
		t.Errorf("multi rounds should not be affected by clearing single")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("single")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRound(RoundRecord{Playstyle: "single", Score: 10, SecondsAlive: 20})
	store.SaveRound(RoundRecord{Playstyle: "single", Score: 30, SecondsAlive: 5})
	store.SaveRound(RoundRecord{Playstyle: "multi", Score: 7, SecondsAlive: 70})

	st, err := store.Stats("single")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != 2 || st.HighScore != 30 || st.TotalScore != 40 || st.AvgScore != 20 {
		t.Errorf("Stats(single) = %+v", st)
	}
	if st.LongestSurvival != 20 {
		t.Errorf("LongestSurvival = %v, expected 20", st.LongestSurvival)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllStats() has %d playstyles, expected 2", len(all))
	}
	if all["multi"].HighScore != 7 || all["multi"].LongestSurvival != 70 {
		t.Errorf("AllStats()[multi] = %+v", all["multi"])
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.SaveRound(RoundRecord{Playstyle: "single", Score: i}); err != nil {
				t.Errorf("SaveRound(%d) failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	st, _ := store.Stats("single")
	if st.Rounds != 8 {
		t.Errorf("Rounds = %d, expected 8", st.Rounds)
	}
}
