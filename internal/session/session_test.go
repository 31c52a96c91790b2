package session

import "testing"

func TestCredentialsMatch(t *testing.T) {
	creds := Credentials{User: "admin", Password: "secret"}

	if !creds.Match("admin", "secret") {
		t.Fatal("Match = false for correct credentials")
	}
	if creds.Match("admin", "wrong") {
		t.Fatal("Match = true for wrong password")
	}
	if creds.Match("other", "secret") {
		t.Fatal("Match = true for wrong user")
	}
}

func TestCredentialsUnsetPasswordNeverMatches(t *testing.T) {
	creds := Credentials{User: "admin"}
	if creds.Match("admin", "") {
		t.Fatal("Match = true with no configured password")
	}
}

func TestSessionActive(t *testing.T) {
	var s *Session
	if s.Active() {
		t.Fatal("nil session reported active")
	}
	s = New("admin")
	if !s.Active() || s.User != "admin" {
		t.Fatalf("session = %#v, want active for admin", s)
	}
	if s.StartedAt.IsZero() {
		t.Fatal("StartedAt not set")
	}
}
