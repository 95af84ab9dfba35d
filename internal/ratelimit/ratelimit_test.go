package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow_BurstThenDeny(t *testing.T) {
	kl := New(0.001, 2)

	assert.True(t, kl.Allow("1.2.3.4"))
	assert.True(t, kl.Allow("1.2.3.4"))
	assert.False(t, kl.Allow("1.2.3.4"), "bucket exhausted")
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	kl := New(0.001, 1)

	assert.True(t, kl.Allow("1.2.3.4"))
	assert.False(t, kl.Allow("1.2.3.4"))
	assert.True(t, kl.Allow("5.6.7.8"), "other keys keep their own bucket")
}

func TestAllow_Concurrent(t *testing.T) {
	kl := New(1000, 1000)

	done := make(chan struct{})
	for range 10 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 50 {
				kl.Allow("shared")
			}
		}()
	}
	for range 10 {
		<-done
	}
}
