package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/bat-adventure/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(":0", store, nil), store
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["status"] != "ok" {
		t.Errorf("body = %q, expected status ok", rec.Body.String())
	}
}

func TestGetRounds(t *testing.T) {
	s, store := newTestServer(t)
	for _, score := range []int{3, 9, 5} {
		store.SaveRound(storage.RoundRecord{Playstyle: "single", Score: score, Player: "ana"})
	}
	store.SaveRound(storage.RoundRecord{Playstyle: "multi", Score: 40})

	tests := []struct {
		name   string
		path   string
		status int
		scores []int
	}{
		{"single", "/api/rounds/single", http.StatusOK, []int{9, 5, 3}},
		{"alias", "/api/rounds/singleplayer", http.StatusOK, []int{9, 5, 3}},
		{"limit", "/api/rounds/single?limit=2", http.StatusOK, []int{9, 5}},
		{"multi", "/api/rounds/multi", http.StatusOK, []int{40}},
		{"unknown playstyle", "/api/rounds/coop", http.StatusNotFound, nil},
		{"bad limit", "/api/rounds/single?limit=abc", http.StatusBadRequest, nil},
		{"zero limit", "/api/rounds/single?limit=0", http.StatusBadRequest, nil},
		{"huge limit", "/api/rounds/single?limit=1000", http.StatusBadRequest, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, s, tc.path)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, expected %d (%s)", rec.Code, tc.status, rec.Body.String())
			}
			if tc.status != http.StatusOK {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
					t.Errorf("error body = %q", rec.Body.String())
				}
				return
			}

			var rounds []roundJSON
			if err := json.Unmarshal(rec.Body.Bytes(), &rounds); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(rounds) != len(tc.scores) {
				t.Fatalf("got %d rounds, expected %d", len(rounds), len(tc.scores))
			}
			for i, want := range tc.scores {
				if rounds[i].Score != want || rounds[i].Rank != i+1 {
					t.Errorf("rounds[%d] = rank %d score %d, expected rank %d score %d",
						i, rounds[i].Rank, rounds[i].Score, i+1, want)
				}
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	s, store := newTestServer(t)
	store.SaveRound(storage.RoundRecord{Playstyle: "single", Score: 4, SecondsAlive: 10})
	store.SaveRound(storage.RoundRecord{Playstyle: "single", Score: 8, SecondsAlive: 5})

	rec := get(t, s, "/api/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var stats map[string]statsJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	single, ok := stats["single"]
	if !ok {
		t.Fatalf("stats = %v, expected a single entry", stats)
	}
	if single.Rounds != 2 || single.HighScore != 8 || single.LongestSurvival != 10 {
		t.Errorf("single = %+v", single)
	}
	if _, ok := stats["multi"]; ok {
		t.Error("playstyles without rounds should be absent")
	}
}

type failingReader struct{}

func (failingReader) TopRounds(string, int) ([]storage.RoundRecord, error) {
	return nil, errors.New("disk gone")
}

func (failingReader) AllStats() (map[string]*storage.Stats, error) {
	return nil, errors.New("disk gone")
}

func TestStoreErrorsAreHidden(t *testing.T) {
	s := NewServer(":0", failingReader{}, nil)

	for _, path := range []string{"/api/rounds/single", "/api/stats"} {
		rec := get(t, s, path)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s: status = %d, expected 500", path, rec.Code)
		}
		var body map[string]string
		json.Unmarshal(rec.Body.Bytes(), &body)
		if body["error"] == "" || body["error"] == "disk gone" {
			t.Errorf("%s: error body = %q, expected a generic message", path, rec.Body.String())
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/stats", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, expected *", got)
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", defaultLimit, false},
		{"1", 1, false},
		{"100", 100, false},
		{"101", 0, true},
		{"-3", 0, true},
		{"ten", 0, true},
	}

	for _, tc := range tests {
		got, err := parseLimit(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("parseLimit(%q) = %d, %v, expected %d (err %v)", tc.in, got, err, tc.want, tc.wantErr)
		}
	}
}
