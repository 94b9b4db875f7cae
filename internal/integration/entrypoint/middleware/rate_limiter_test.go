package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Run("allows attempts up to the limit", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Error("attempt over the limit should be denied")
		}
	})

	t.Run("tracks keys independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first key should be allowed")
		}
		if !rl.allow("10.0.0.2") {
			t.Error("second key should not share the first key's budget")
		}
	})

	t.Run("window expiry resets the budget", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first attempt should be allowed")
		}
		if rl.allow("10.0.0.1") {
			t.Fatal("second attempt inside the window should be denied")
		}

		time.Sleep(20 * time.Millisecond)
		if !rl.allow("10.0.0.1") {
			t.Error("attempt after the window should be allowed again")
		}
	})

	t.Run("reset clears a key", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		rl.allow("10.0.0.1")
		rl.Reset()
		if !rl.allow("10.0.0.1") {
			t.Error("reset key should be allowed again")
		}
	})
}
