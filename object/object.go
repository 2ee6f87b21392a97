// Package object provides the plugin object base: the inlet/outlet
// registry, the unified dispatch entry point, outlet emission with the
// cross-goroutine deferral queue, worker lifecycle and symbol binding.
//
// A concrete plugin embeds or holds a *Base constructed against its
// registered Class and the embedding host. The goroutine that constructs
// the Base is recorded as its host goroutine for the lifetime of the
// instance: only that goroutine ever reaches the host's direct emission
// primitives, every other goroutine is rerouted through the deferral
// queue.
package object

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/errors"
	"github.com/mipi54/flext/host"
	"github.com/mipi54/flext/method"
	"github.com/mipi54/flext/metric"
	"github.com/mipi54/flext/pkg/fifo"
	"github.com/mipi54/flext/pkg/goid"
	"github.com/mipi54/flext/pkg/lock"
	"github.com/mipi54/flext/symbol"
)

// Class holds the static, class-shared state of a plugin type: its name
// and its method table. A Class is built exactly once, by RegisterClass,
// before any instance exists, and is read-only afterwards, so dispatch
// through it needs no synchronization.
type Class struct {
	Name    string
	Methods *method.Table
}

type classRegistry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

var registry = &classRegistry{classes: make(map[string]*Class)}

// RegisterClass runs the one-time class setup callback: setup populates
// the method table, which is frozen when setup returns. Registering the
// same name twice fails without touching the existing class.
func RegisterClass(name string, setup func(t *method.Table)) (*Class, error) {
	if name == "" {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Class", "RegisterClass", "class name validation")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.classes[name]; exists {
		return nil, errors.WrapInvalid(errors.ErrDuplicateClass, "Class", "RegisterClass", "duplicate class check")
	}

	c := &Class{Name: name, Methods: method.NewTable()}
	if setup != nil {
		setup(c.Methods)
	}
	c.Methods.Freeze()
	registry.classes[name] = c
	return c, nil
}

// LookupClass returns a registered class, or nil.
func LookupClass(name string) *Class {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.classes[name]
}

// UnhandledHandler is the generic unhandled-message hook. A concrete
// plugin implements it to see every message the method table declined;
// returning false drops the message with a non-fatal diagnostic. Plugins
// without the interface get the default (decline everything).
type UnhandledHandler interface {
	MethodDefault(inlet int, sel *symbol.Symbol, args []atom.Atom) bool
}

// HelpProvider is implemented by plugins that post help text on a "help"
// message. Called by host glue, never by the core itself.
type HelpProvider interface {
	Help() string
}

// LoadBanger is implemented by plugins that want the patcher-load
// notification. Called by host glue on patcher load, not on creation.
type LoadBanger interface {
	LoadBang()
}

// Assister is implemented by plugins that provide per-xlet quickhelp
// strings to hosts that ask for them.
type Assister interface {
	Assist(isInlet bool, ix int) string
}

// Base is the per-instance core of a plugin object.
type Base struct {
	id    uuid.UUID
	class *Class
	self  any
	hst   host.Host
	log   *Logger

	// xlet registry; immutable after SetupInOut
	inlist    []xlet
	outlist   []xlet
	setupDone bool
	incnt     int
	outcnt    int
	insigs    int
	outsigs   int
	outlets   []*Outlet
	proxies   []*Proxy
	distmsgs  bool

	// deferral queue
	queue fifo.FIFO[qmsg]

	// reentrant operation lock exposed to plugin logic
	opLock lock.Mutex

	// thread bookkeeping
	hostGID int64
	state   workerState

	limiter *rate.Limiter
	metrics *metric.Metrics
}

// Option configures a Base at construction.
type Option func(*Base)

// WithSelf attaches the concrete plugin value, enabling the optional
// per-plugin interfaces (UnhandledHandler, HelpProvider, ...).
func WithSelf(self any) Option {
	return func(b *Base) { b.self = self }
}

// WithLogger sets the slog backend for the object's structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Base) { b.log.logger = l }
}

// WithMetrics attaches core metrics instrumentation.
func WithMetrics(m *metric.Metrics) Option {
	return func(b *Base) { b.metrics = m }
}

// New constructs an instance of the given class embedded in the given
// host. The calling goroutine is recorded as the instance's host
// goroutine for its entire lifetime.
func New(class *Class, h host.Host, opts ...Option) *Base {
	b := &Base{
		id:      uuid.New(),
		class:   class,
		hst:     h,
		hostGID: goid.Get(),
		// One diagnostic per second with a small burst keeps a hot
		// unmatched inlet from flooding the console.
		limiter: rate.NewLimiter(rate.Limit(1), 5),
	}
	b.log = newLogger(class.Name, b.id.String(), nil, slog.Default())
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the instance's unique identifier.
func (b *Base) ID() string { return b.id.String() }

// Class returns the instance's class.
func (b *Base) Class() *Class { return b.class }

// Logger returns the object-scoped structured logger.
func (b *Base) Logger() *Logger { return b.log }

// SetDist sets list distribution for the primary inlet: when enabled, a
// list message is redistributed element-wise across the declared inlets
// in declaration order instead of being delivered as one list.
func (b *Base) SetDist(d bool) { b.distmsgs = d }

// IsSystemThread reports whether the calling goroutine is the instance's
// recorded host goroutine.
func (b *Base) IsSystemThread() bool { return goid.Get() == b.hostGID }

// Help returns the plugin's help text, or empty when the plugin does not
// provide any. Host glue calls this on a "help" message.
func (b *Base) Help() string {
	if h, ok := b.self.(HelpProvider); ok {
		return h.Help()
	}
	return ""
}

// LoadBang forwards the patcher-load notification to the plugin, if it
// cares.
func (b *Base) LoadBang() {
	if l, ok := b.self.(LoadBanger); ok {
		l.LoadBang()
	}
}

// Assist returns the quickhelp string for an endpoint, falling back to
// its declared description when the plugin provides none.
func (b *Base) Assist(isInlet bool, ix int) string {
	if a, ok := b.self.(Assister); ok {
		if s := a.Assist(isInlet, ix); s != "" {
			return s
		}
	}
	if isInlet {
		if ix >= 0 && ix < len(b.inlist) {
			return b.inlist[ix].desc
		}
		return ""
	}
	if ix >= 0 && ix < len(b.outlist) {
		return b.outlist[ix].desc
	}
	return ""
}

// Push acquires the instance's reentrant operation lock; a goroutine
// already holding it via Push only deepens the hold.
func (b *Base) Push() { b.opLock.Push() }

// Pop releases one hold of the reentrant operation lock.
func (b *Base) Pop() { b.opLock.Pop() }

// Release tears the instance down: the cooperative exit flag is raised,
// teardown blocks until every worker has observed it and exited, then the
// deferral queue is discarded. Pending deferred output is dropped, not
// delivered.
func (b *Base) Release() {
	b.state.exit.Store(true)
	b.state.group.Wait()
	b.UnbindAll()

	if n := b.queue.Drain(func(qmsg) {}); n > 0 {
		b.log.Debug("dropped pending deferred output on teardown")
		if b.metrics != nil {
			b.metrics.RecordDrop(n)
		}
	}
}

type workerState struct {
	exit  atomic.Bool
	count atomic.Int32
	group errgroup.Group
}
