package middleware

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute, "test-limit")

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.isAllowed("1.2.3.4")
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, count := limiter.isAllowed("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, 4, count)

	// A different IP has its own budget
	allowed, _ = limiter.isAllowed("5.6.7.8")
	assert.True(t, allowed)
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter(1, 20*time.Millisecond, "test-reset")

	allowed, _ := limiter.isAllowed("1.2.3.4")
	assert.True(t, allowed)
	allowed, _ = limiter.isAllowed("1.2.3.4")
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, _ = limiter.isAllowed("1.2.3.4")
	assert.True(t, allowed)
}

// TestRateLimiterConcurrentAccess verifies the rate limiter is safe under
// concurrent access. Run with -race.
func TestRateLimiterConcurrentAccess(t *testing.T) {
	limiter := NewRateLimiter(100, time.Minute, "test-concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				// Mix of same IP and different IPs to stress both paths
				ip := "192.168.1.1"
				if j%3 == 0 {
					ip = "10.0.0." + string(rune('0'+goroutineID%10))
				}
				allowed, count := limiter.isAllowed(ip)
				_ = allowed
				_ = count
			}
		}(i)
	}
	wg.Wait()
}

// TestRateLimiterConcurrentWithCleanup verifies no race between request
// handling and the cleanup goroutine.
func TestRateLimiterConcurrentWithCleanup(t *testing.T) {
	// Short window so cleanup runs during the test
	limiter := NewRateLimiter(5, 50*time.Millisecond, "test-cleanup-race")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ip := "10.0.0." + string(rune('0'+id%10))
				limiter.isAllowed(ip)
				if j%10 == 0 {
					time.Sleep(time.Millisecond)
				}
			}
		}(i)
	}
	wg.Wait()
}
