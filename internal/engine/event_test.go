package engine

import (
	"errors"
	"testing"
)

func TestEventInvokeOrder(t *testing.T) {
	var e Event[int]
	var got []string

	e.AddListener(func(v int) { got = append(got, "a") })
	e.AddListener(func(v int) { got = append(got, "b") })
	e.AddListener(func(v int) { got = append(got, "c") })

	if err := e.Invoke(1); err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Expected [a b c], got %v", got)
	}
}

func TestEventNoListeners(t *testing.T) {
	var e Event[int]
	if err := e.Invoke(42); err != nil {
		t.Errorf("Invoke with no listeners should not fail: %v", err)
	}
}

func TestEventNilListener(t *testing.T) {
	var e Event[int]
	if id := e.AddListener(nil); id != 0 {
		t.Errorf("nil listener should get id 0, got %d", id)
	}
	if e.GetListenerCount() != 0 {
		t.Errorf("nil listener should not be added")
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event[int]
	calls := 0

	id := e.AddListener(func(int) { calls++ })
	e.AddListener(func(int) { calls += 10 })

	if !e.RemoveListener(id) {
		t.Fatal("RemoveListener should report removal")
	}
	if e.RemoveListener(id) {
		t.Error("Second RemoveListener should report false")
	}

	e.Invoke(0)
	if calls != 10 {
		t.Errorf("Expected only second listener, got calls=%d", calls)
	}
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e Event[int]
	e.AddListener(func(int) {})
	e.AddListener(func(int) {})
	e.RemoveAllListeners()

	if e.GetListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", e.GetListenerCount())
	}
}

func TestEventPanicIsolation(t *testing.T) {
	var e Event[string]
	var got []string

	e.AddNamedListener("first", func(v string) { got = append(got, "first:"+v) })
	badID := e.AddNamedListener("broken", func(string) { panic("boom") })
	e.AddNamedListener("last", func(v string) { got = append(got, "last:"+v) })

	err := e.Invoke("x")
	if err == nil {
		t.Fatal("Expected error from panicking listener")
	}

	var le *ListenerError
	if !errors.As(err, &le) {
		t.Fatalf("Expected ListenerError, got %T", err)
	}
	if le.ID != badID || le.Name != "broken" || le.Value != "boom" {
		t.Errorf("Unexpected ListenerError: %+v", le)
	}

	if len(got) != 2 || got[0] != "first:x" || got[1] != "last:x" {
		t.Errorf("Other listeners should still run, got %v", got)
	}
}

func TestEventAddDuringInvoke(t *testing.T) {
	var e Event[int]
	lateCalls := 0

	e.AddListener(func(int) {
		e.AddListener(func(int) { lateCalls++ })
	})

	e.Invoke(1)
	if lateCalls != 0 {
		t.Errorf("Listener added during Invoke should not run in the same Invoke")
	}

	e.Invoke(2)
	if lateCalls != 1 {
		t.Errorf("Expected late listener to run once, got %d", lateCalls)
	}
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var e Event[int]
	var second ListenerID
	secondCalls := 0

	e.AddListener(func(int) { e.RemoveListener(second) })
	second = e.AddListener(func(int) { secondCalls++ })

	e.Invoke(1)
	e.Invoke(2)

	if secondCalls != 1 {
		t.Errorf("Removed listener should only see the in-flight Invoke, got %d calls", secondCalls)
	}
}
