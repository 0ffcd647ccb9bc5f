package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler runs cleanup hooks when the process receives an interrupt or
// termination signal, then exits. An interactive session in raw
// terminal mode never raises SIGINT for ^C, so the handler only fires
// for signals delivered from outside the line editor.
type Handler struct {
	mu    sync.Mutex
	hooks []func()
	done  chan struct{}
	once  sync.Once

	// exit is swappable for tests.
	exit func(code int)
}

// NewHandler creates a new shutdown handler.
func NewHandler() *Handler {
	return &Handler{
		hooks: make([]func(), 0),
		done:  make(chan struct{}),
		exit:  os.Exit,
	}
}

// OnShutdown registers a cleanup hook.
// Hooks are called in reverse order of registration.
func (h *Handler) OnShutdown(hook func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Watch starts listening for SIGINT and SIGTERM in the background.
// On the first signal it runs the hooks and exits with status 0.
func (h *Handler) Watch() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		h.Trigger()
		h.exit(0)
	}()
}

// Trigger runs the hooks once, in reverse order of registration. It is
// called from the signal path and may be called directly when the
// session ends normally; the second caller is a no-op.
func (h *Handler) Trigger() {
	h.once.Do(func() {
		h.mu.Lock()
		hooks := make([]func(), len(h.hooks))
		copy(hooks, h.hooks)
		h.mu.Unlock()

		for i := len(hooks) - 1; i >= 0; i-- {
			hooks[i]()
		}

		close(h.done)
	})
}

// Done returns a channel that closes when the hooks have run.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
