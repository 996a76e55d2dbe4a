package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := newKeyedMutex()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(1)
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Empty(t, k.locks)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.Lock(1)
	done := make(chan struct{})
	go func() {
		unlock := k.Lock(2)
		unlock()
		close(done)
	}()
	<-done
	unlockA()

	assert.Empty(t, k.locks)
}
