package gamemode

import "testing"

func TestCanTransition(t *testing.T) {
	valid := map[State][]State{
		Idle:     {Playing},
		Playing:  {GameOver},
		GameOver: {Playing, Idle},
	}
	all := []State{Idle, Playing, GameOver}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, v := range valid[from] {
				if v == to {
					want = true
				}
			}
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestOnlyStartLeavesIdle(t *testing.T) {
	m := NewMachine()
	if m.State() != Idle {
		t.Fatalf("initial state = %s, want idle", m.State())
	}
	if m.Restart() || m.Menu() || m.Miss() {
		t.Fatal("only Start may leave idle")
	}
	if !m.Start() || m.State() != Playing {
		t.Fatalf("Start failed, state = %s", m.State())
	}
	if m.Start() {
		t.Error("Start while playing must be rejected")
	}
}

func TestOnlyMissEndsPlaying(t *testing.T) {
	m := NewMachine()
	m.Start()
	if m.Restart() || m.Menu() {
		t.Fatal("Restart and Menu must be rejected while playing")
	}
	if m.State() != Playing {
		t.Fatalf("state = %s, want playing", m.State())
	}
	if !m.Miss() || m.State() != GameOver {
		t.Fatalf("Miss failed, state = %s", m.State())
	}
}

func TestScoreLifecycle(t *testing.T) {
	m := NewMachine()
	m.AddScore(5)
	if m.Score() != 0 {
		t.Error("score must not change while idle")
	}

	m.Start()
	if m.Score() != 0 {
		t.Fatalf("score = %d right after start", m.Score())
	}
	m.AddScore(1)
	m.AddScore(2)
	m.AddScore(-4)
	if m.Score() != 3 {
		t.Fatalf("score = %d, want 3", m.Score())
	}

	m.Miss()
	if m.LastScore() != 3 {
		t.Errorf("LastScore = %d, want 3", m.LastScore())
	}
	m.AddScore(10)
	if m.Score() != 3 {
		t.Error("score must not change after game over")
	}

	m.Restart()
	if m.Score() != 0 {
		t.Errorf("score = %d right after restart", m.Score())
	}
	if m.LastScore() != 3 {
		t.Error("LastScore must survive a restart")
	}

	m.AddScore(1)
	m.Miss()
	if !m.Menu() || m.State() != Idle {
		t.Fatalf("Menu failed, state = %s", m.State())
	}
	if m.LastScore() != 1 {
		t.Errorf("LastScore = %d, want 1", m.LastScore())
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		Idle:      "idle",
		Playing:   "playing",
		GameOver:  "gameOver",
		State(42): "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("String() = %q, want %q", s.String(), want)
		}
	}
}
