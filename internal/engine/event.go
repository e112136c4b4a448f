package engine

import (
	"errors"
	"fmt"
)

// ListenerID identifies a listener added to an Event. The zero value is never
// handed out.
type ListenerID uint64

type listener[T any] struct {
	id   ListenerID
	name string
	fn   func(T)
}

// Event is a Unity-style multi-cast event with one argument.
// Listeners run synchronously in the order they were added.
type Event[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

// ListenerError reports a listener that panicked during Invoke.
type ListenerError struct {
	ID    ListenerID
	Name  string
	Value any
}

func (e *ListenerError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("listener %d (%s) panicked: %v", e.ID, e.Name, e.Value)
	}
	return fmt.Sprintf("listener %d panicked: %v", e.ID, e.Value)
}

// AddListener adds a callback to be invoked when the event fires.
// Returns 0 for a nil callback.
func (e *Event[T]) AddListener(callback func(T)) ListenerID {
	return e.AddNamedListener("", callback)
}

// AddNamedListener is AddListener with a name used in ListenerError.
func (e *Event[T]) AddNamedListener(name string, callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, name: name, fn: callback})
	return e.nextID
}

// RemoveListener removes the listener with the given id. It reports whether
// a listener was removed.
func (e *Event[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAllListeners clears all listeners
func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener registered at the time of the call with arg.
// A panicking listener does not stop the others; each panic is returned as a
// *ListenerError, joined.
func (e *Event[T]) Invoke(arg T) error {
	if len(e.listeners) == 0 {
		return nil
	}
	snapshot := make([]listener[T], len(e.listeners))
	copy(snapshot, e.listeners)

	var errs []error
	for _, l := range snapshot {
		if err := l.call(arg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l listener[T]) call(arg T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ListenerError{ID: l.id, Name: l.name, Value: r}
		}
	}()
	l.fn(arg)
	return nil
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event[T]) GetListenerCount() int {
	return len(e.listeners)
}
