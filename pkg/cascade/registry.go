package cascade

import (
	"errors"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"
)

var (
	ErrUnknownCascade = errors.New("cascade is no longer active")
	ErrNotOwner       = errors.New("only the invoker can press the prime bubble")
)

type waiter struct {
	owner   snowflake.ID
	pressed chan struct{}
}

// Registry tracks cascades waiting for their prime bubble press, keyed by the
// nonce embedded in the button custom id.
type Registry struct {
	mu      sync.Mutex
	pending map[string]*waiter
}

func NewRegistry() *Registry {
	return &Registry{pending: make(map[string]*waiter)}
}

// Register returns a fresh nonce and a channel closed once owner presses the button.
func (r *Registry) Register(owner snowflake.ID) (string, <-chan struct{}) {
	nonce := uuid.NewString()
	w := &waiter{owner: owner, pressed: make(chan struct{})}
	r.mu.Lock()
	r.pending[nonce] = w
	r.mu.Unlock()
	return nonce, w.pressed
}

// Press accepts a press only from the owner and only once.
func (r *Registry) Press(nonce string, userID snowflake.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.pending[nonce]
	if !ok {
		return ErrUnknownCascade
	}
	if w.owner != userID {
		return ErrNotOwner
	}
	delete(r.pending, nonce)
	close(w.pressed)
	return nil
}

// Unregister drops a waiter after a timeout. Unknown nonces are ignored.
func (r *Registry) Unregister(nonce string) {
	r.mu.Lock()
	delete(r.pending, nonce)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
