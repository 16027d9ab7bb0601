package keylock_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Kkzin999/sun/internal/keylock"
	"github.com/stretchr/testify/assert"
)

func TestLocker_SerialisesSameKey(t *testing.T) {
	locker := keylock.New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("guild:user")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locker.Len())
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	locker := keylock.New()

	unlockA := locker.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestLocker_UnlockIsIdempotent(t *testing.T) {
	locker := keylock.New()

	unlock := locker.Lock("a")
	unlock()
	unlock()

	assert.Equal(t, 0, locker.Len())

	relock := locker.Lock("a")
	relock()
}
