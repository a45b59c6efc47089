package viewport

import "testing"

func TestObserveCreatesWatcherLazily(t *testing.T) {
	host := &TestHost[string]{}
	reg := NewRegistry(host.Factory())

	if host.Created() != 0 {
		t.Fatalf("Created() = %d before first Observe, want 0", host.Created())
	}
	if reg.Active() {
		t.Fatal("Active() = true before first Observe")
	}

	un := reg.Observe("a", func(bool) {})
	defer un()

	if host.Created() != 1 {
		t.Errorf("Created() = %d, want 1", host.Created())
	}
	if !reg.Active() {
		t.Error("Active() = false after Observe")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestUnobserveDisposesWhenEmpty(t *testing.T) {
	host := &TestHost[string]{}
	reg := NewRegistry(host.Factory())

	un := reg.Observe("a", func(bool) {})
	w := host.Current()
	un()

	if reg.Len() != 0 {
		t.Errorf("Len() = %d after unobserve, want 0", reg.Len())
	}
	if reg.Active() {
		t.Error("Active() = true after last element removed")
	}
	if !w.Disconnected() {
		t.Error("native watcher not disconnected after map emptied")
	}

	// A subsequent Observe creates a fresh watcher rather than reusing
	// the disposed one.
	un2 := reg.Observe("b", func(bool) {})
	defer un2()
	if host.Created() != 2 {
		t.Errorf("Created() = %d, want 2 (fresh watcher)", host.Created())
	}
}

func TestUnobserveIdempotent(t *testing.T) {
	host := &TestHost[string]{}
	reg := NewRegistry(host.Factory())

	unA := reg.Observe("a", func(bool) {})
	unB := reg.Observe("b", func(bool) {})

	unA()
	unA() // second call is a no-op

	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
	unB()
	if reg.Active() {
		t.Error("Active() = true after all elements removed")
	}
}

func TestObserveReplacesCallback(t *testing.T) {
	host := &TestHost[string]{}
	reg := NewRegistry(host.Factory())

	var first, second int
	unFirst := reg.Observe("a", func(bool) { first++ })
	unSecond := reg.Observe("a", func(bool) { second++ })
	defer unSecond()

	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (element registered at most once)", reg.Len())
	}
	if host.Current().ObservedCount() != 1 {
		t.Fatalf("ObservedCount() = %d, want 1 (no leaked native observation)", host.Current().ObservedCount())
	}

	host.Current().Enter("a")
	if first != 0 {
		t.Errorf("first callback invoked %d times, want 0", first)
	}
	if second != 1 {
		t.Errorf("second callback invoked %d times, want 1", second)
	}

	// Releasing the superseded registration must not remove the newer one.
	unFirst()
	if reg.Len() != 1 {
		t.Errorf("Len() = %d after stale unobserve, want 1", reg.Len())
	}
}

func TestDeliverOnlyWhileObserved(t *testing.T) {
	host := &TestHost[string]{}
	reg := NewRegistry(host.Factory())

	var fired int
	un := reg.Observe("a", func(visible bool) {
		if visible {
			fired++
		}
	})
	w := host.Current()

	w.Leave("a")
	if fired != 0 {
		t.Errorf("fired = %d on leave, want 0", fired)
	}
	w.Enter("a")
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	// Firing does not auto-unregister; a second event reaches the same
	// callback until the caller releases it.
	w.Enter("a")
	if fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}

	un()
	w.Enter("a")
	if fired != 2 {
		t.Errorf("fired = %d after unobserve, want 2", fired)
	}
}

func TestCallbackMayReleaseItself(t *testing.T) {
	host := &TestHost[string]{}
	reg := NewRegistry(host.Factory())

	var un func()
	fired := 0
	un = reg.Observe("a", func(bool) {
		fired++
		un()
	})

	host.Current().Enter("a")
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if reg.Active() {
		t.Error("Active() = true after callback released itself")
	}
}

func TestNilRegistryInert(t *testing.T) {
	reg := NewRegistry[string](nil)
	if reg != nil {
		t.Fatal("NewRegistry(nil) should yield a nil registry")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d on nil registry, want 0", reg.Len())
	}
	if reg.Active() {
		t.Error("Active() = true on nil registry")
	}

	un := reg.Observe("a", func(bool) {})
	if un == nil {
		t.Fatal("Observe on nil registry must return a release func")
	}
	un()
	if reg.Len() != 0 {
		t.Errorf("Len() = %d after Observe on nil registry, want 0", reg.Len())
	}
}
