// Package observable provides mutable value cells and derived read-only values.
package observable

// Notifier is the type-erased dependency side of Derive: anything that can
// report "I changed" without exposing its value type.
type Notifier interface {
	Notify(fn func())
}

// Readable is the read-only view of an observable value. The typing core
// only ever hands Readable to callers, so all writes stay internal.
type Readable[T any] interface {
	Get() T
	Watch(fn func(T))
	Notifier
}

// Value is a mutable cell holding a single value.
type Value[T any] struct {
	v        T
	watchers []func(T)
}

// New returns a cell initialized to v.
func New[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (c *Value[T]) Get() T {
	return c.v
}

// Set stores v and notifies watchers in registration order.
func (c *Value[T]) Set(v T) {
	c.v = v
	for _, fn := range c.watchers {
		fn(v)
	}
}

// Watch registers fn to run with the new value after every Set.
func (c *Value[T]) Watch(fn func(T)) {
	c.watchers = append(c.watchers, fn)
}

// Notify implements Notifier.
func (c *Value[T]) Notify(fn func()) {
	c.Watch(func(T) { fn() })
}

// Derived is a read-only value recomputed from its sources. Reads are
// pull-based: Get always recomputes, so a Derived never caches state
// across calls. Source changes only fan out change notifications.
type Derived[T any] struct {
	compute  func() T
	watchers []func(T)
}

// Derive builds a Derived over compute. Each dep's change notification
// triggers the watchers of the result.
func Derive[T any](compute func() T, deps ...Notifier) *Derived[T] {
	d := &Derived[T]{compute: compute}
	for _, dep := range deps {
		dep.Notify(d.notify)
	}
	return d
}

// Get recomputes and returns the current value.
func (d *Derived[T]) Get() T {
	return d.compute()
}

// Watch registers fn to run with the recomputed value after any source changes.
func (d *Derived[T]) Watch(fn func(T)) {
	d.watchers = append(d.watchers, fn)
}

// Notify implements Notifier, so a Derived can feed further derivations.
func (d *Derived[T]) Notify(fn func()) {
	d.Watch(func(T) { fn() })
}

func (d *Derived[T]) notify() {
	if len(d.watchers) == 0 {
		return
	}
	v := d.Get()
	for _, fn := range d.watchers {
		fn(v)
	}
}
