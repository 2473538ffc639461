// Package event implements a small in-process event dispatcher. Services
// fire domain events (order created, order status changed, payment
// recorded) and listeners such as the kitchen websocket hub react to them.
package event

import (
	"sync"

	"github.com/shashiranjanraj/verandah/pkg/logger"
)

// Event carries a name and an arbitrary payload.
type Event struct {
	Name    string
	Payload interface{}
}

// Listener handles a fired event.
type Listener func(Event)

var (
	mu        sync.RWMutex
	listeners = map[string][]Listener{}
	wg        sync.WaitGroup
)

// Listen registers a listener for the named event.
func Listen(name string, l Listener) {
	mu.Lock()
	defer mu.Unlock()
	listeners[name] = append(listeners[name], l)
}

// Fire dispatches the event synchronously to all listeners. A panicking
// listener is logged and does not affect the others.
func Fire(name string, payload interface{}) {
	mu.RLock()
	ls := listeners[name]
	mu.RUnlock()

	ev := Event{Name: name, Payload: payload}
	for _, l := range ls {
		safeCall(l, ev)
	}
}

// FireAsync dispatches the event on a separate goroutine per listener.
// Use Flush in tests to wait for async listeners to finish.
func FireAsync(name string, payload interface{}) {
	mu.RLock()
	ls := listeners[name]
	mu.RUnlock()

	ev := Event{Name: name, Payload: payload}
	for _, l := range ls {
		wg.Add(1)
		go func(l Listener) {
			defer wg.Done()
			safeCall(l, ev)
		}(l)
	}
}

// Flush blocks until all async listeners started so far have returned.
func Flush() {
	wg.Wait()
}

// Reset removes all listeners. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	listeners = map[string][]Listener{}
}

func safeCall(l Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event listener panicked", "event", ev.Name, "panic", r)
		}
	}()
	l(ev)
}
