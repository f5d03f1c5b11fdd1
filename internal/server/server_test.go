package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"botwars/internal/engine"
	"botwars/internal/game"
)

func testServer() *Server {
	cfg := game.DefaultConfig()
	cfg.PriceSource = game.SourceStatic
	cfg.Engine = engine.Config{TotalRounds: 5, TicksPerRound: 3, Seed: 1}
	return New(":0", game.NewSession(cfg))
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) engine.Snapshot {
	t.Helper()
	var snap engine.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snap
}

func TestTickBeforeNewGameConflicts(t *testing.T) {
	h := testServer().Routes()

	if rec := do(t, h, http.MethodPost, "/api/tick"); rec.Code != http.StatusConflict {
		t.Fatalf("tick status = %d, want 409", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/state"); rec.Code != http.StatusConflict {
		t.Fatalf("state status = %d, want 409", rec.Code)
	}
}

func TestNewGameThenTick(t *testing.T) {
	h := testServer().Routes()

	if rec := do(t, h, http.MethodPost, "/api/new_game"); rec.Code != http.StatusOK {
		t.Fatalf("new_game status = %d, want 200", rec.Code)
	}

	rec := do(t, h, http.MethodPost, "/api/tick")
	if rec.Code != http.StatusOK {
		t.Fatalf("tick status = %d, want 200", rec.Code)
	}
	snap := decodeSnapshot(t, rec)
	if snap.Round != 1 || len(snap.Bots) != 10 {
		t.Fatalf("round=%d bots=%d, want 1 and 10", snap.Round, len(snap.Bots))
	}

	state := decodeSnapshot(t, do(t, h, http.MethodGet, "/api/state"))
	if state.Round != snap.Round || state.SubTick != snap.SubTick {
		t.Fatalf("state %d/%d does not match last tick %d/%d",
			state.Round, state.SubTick, snap.Round, snap.SubTick)
	}
}

func TestMethodsAreEnforced(t *testing.T) {
	h := testServer().Routes()

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/new_game"},
		{http.MethodGet, "/api/tick"},
		{http.MethodPost, "/api/state"},
	}
	for _, tc := range cases {
		if rec := do(t, h, tc.method, tc.path); rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s status = %d, want 405", tc.method, tc.path, rec.Code)
		}
	}
}

func TestHubBroadcastDropsOnFullBuffer(t *testing.T) {
	hb := newHub[int]()
	sub := hb.Subscribe(1)
	defer hb.Unsubscribe(sub)

	hb.Broadcast(1)
	hb.Broadcast(2) // buffer full, dropped rather than blocking

	if got := <-sub.ch; got != 1 {
		t.Fatalf("received %d, want 1", got)
	}
	select {
	case got := <-sub.ch:
		t.Fatalf("received %d, want empty channel", got)
	default:
	}
}
