package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryHostLockerSerializesPerHost(t *testing.T) {
	locker := NewMemoryHostLocker()

	const workers = 20
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(context.Background(), "host-1")
			if err != nil {
				t.Errorf("Acquire: %v", err)
				return
			}
			// Unsynchronized increment; the lock is the only protection.
			counter++
			release()
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("counter = %d, want %d", counter, workers)
	}
}

func TestMemoryHostLockerIndependentHosts(t *testing.T) {
	locker := NewMemoryHostLocker()

	releaseA, err := locker.Acquire(context.Background(), "host-a")
	if err != nil {
		t.Fatalf("Acquire host-a: %v", err)
	}
	defer releaseA()

	// Holding host-a must not block host-b.
	done := make(chan struct{})
	go func() {
		release, err := locker.Acquire(context.Background(), "host-b")
		if err == nil {
			release()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("acquiring host-b blocked behind host-a's lock")
	}
}

func TestRedisHostLockerLeaseOutlastsProviderCall(t *testing.T) {
	// A lease shorter than the provider timeout can expire mid-booking and
	// let a concurrent instance past the conflict check.
	locker := NewRedisHostLocker(nil)
	providerTimeout := (&DefaultSchedulingEngine{}).providerTimeout()

	if locker.LeaseTTL <= providerTimeout {
		t.Errorf("lease TTL %v must exceed the provider timeout %v",
			locker.LeaseTTL, providerTimeout)
	}
}
