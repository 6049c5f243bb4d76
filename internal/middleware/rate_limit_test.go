package middleware

import "testing"

func TestRateLimiterAllow(t *testing.T) {
	rl := newRateLimiter(60, 2)

	if !rl.allow("1.2.3.4") || !rl.allow("1.2.3.4") {
		t.Fatal("burst requests should pass")
	}
	if rl.allow("1.2.3.4") {
		t.Error("third immediate request should be limited")
	}

	// Other clients are tracked independently.
	if !rl.allow("5.6.7.8") {
		t.Error("fresh client should pass")
	}
}
