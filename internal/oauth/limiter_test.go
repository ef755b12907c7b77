package oauth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_AllowsUpToBurst(t *testing.T) {
	limiter := NewClientLimiter(5)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d should be allowed", i)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestClientLimiter_AddressesAreIndependent(t *testing.T) {
	limiter := NewClientLimiter(1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestClientLimiter_ManyAddresses(t *testing.T) {
	limiter := NewClientLimiter(1)

	for i := 0; i < 100; i++ {
		addr := fmt.Sprintf("10.0.0.%d", i)
		assert.True(t, limiter.Allow(addr))
	}
}
