package session_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"golf-caddy-core/internal/session"
)

func TestSessionWindow(t *testing.T) {
	store := session.NewStore(session.StoreConfig{Capacity: 3})
	s := store.GetOrCreate("abc")

	now := time.Now()
	for i := 0; i < 5; i++ {
		s.Append(session.RoleUser, fmt.Sprintf("turn %d", i), now.Add(time.Duration(i)*time.Second))
	}

	snap := s.Snapshot()
	if len(snap.Turns) != 3 {
		t.Fatalf("turns = %d, want 3", len(snap.Turns))
	}
	if snap.Turns[0].Content != "turn 2" || snap.Turns[2].Content != "turn 4" {
		t.Errorf("oldest turns not evicted first: %+v", snap.Turns)
	}
}

func TestSessionRoundState(t *testing.T) {
	store := session.NewStore(session.StoreConfig{})
	s := store.GetOrCreate("abc")

	s.SetRound("round-1")
	s.SetHole(7)

	snap := s.Snapshot()
	if snap.ActiveRound == nil || *snap.ActiveRound != "round-1" {
		t.Errorf("active round = %v, want round-1", snap.ActiveRound)
	}
	if snap.CurrentHole == nil || *snap.CurrentHole != 7 {
		t.Errorf("current hole = %v, want 7", snap.CurrentHole)
	}

	s.SetRound("")
	snap = s.Snapshot()
	if snap.ActiveRound != nil || snap.CurrentHole != nil {
		t.Errorf("clearing the round should drop the hole too: %+v", snap)
	}
}

func TestStoreReusesLiveSessions(t *testing.T) {
	store := session.NewStore(session.StoreConfig{})

	first := store.GetOrCreate("abc")
	first.Append(session.RoleUser, "hello", time.Now())

	second := store.GetOrCreate("abc")
	if len(second.Snapshot().Turns) != 1 {
		t.Error("expected the same session back for the same ID")
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("Get returned a session that was never created")
	}
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	store := session.NewStore(session.StoreConfig{TTL: 20 * time.Millisecond})
	store.GetOrCreate("abc")

	time.Sleep(50 * time.Millisecond)

	if _, ok := store.Get("abc"); ok {
		t.Error("expected the idle session to expire")
	}
}

func TestSessionConcurrentAppend(t *testing.T) {
	store := session.NewStore(session.StoreConfig{Capacity: 10})
	s := store.GetOrCreate("abc")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(session.RoleUser, fmt.Sprintf("turn %d", i), time.Now())
			s.Snapshot()
		}(i)
	}
	wg.Wait()

	if got := len(s.Snapshot().Turns); got != 10 {
		t.Errorf("turns = %d, want window capacity 10", got)
	}
}
