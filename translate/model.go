package translate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Model completes a prompt.
type Model interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelFunc adapts a function to the Model interface.
type ModelFunc func(ctx context.Context, prompt string) (string, error)

// Complete implements Model.
func (f ModelFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Factory constructs a Model.
type Factory func(ctx context.Context) (Model, error)

// Handle lazily constructs and holds a Model.
//
// Handle is safe for concurrent use; concurrent first calls to Get share a
// single construction.
type Handle struct {
	mu      sync.Mutex
	factory Factory
	model   Model
	logger  *slog.Logger
}

// NewHandle creates a Handle that builds its Model with factory on first
// use. If logger is nil, slog.Default() is used.
func NewHandle(factory Factory, logger *slog.Logger) *Handle {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handle{factory: factory, logger: logger}
}

// StaticHandle returns a Handle already holding m.
func StaticHandle(m Model) *Handle {
	return &Handle{model: m, logger: slog.Default()}
}

// Get returns the Model, constructing it if needed.
func (h *Handle) Get(ctx context.Context) (Model, error) {
	if h == nil {
		return nil, ErrNoModel
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.model != nil {
		return h.model, nil
	}
	if h.factory == nil {
		return nil, ErrNoModel
	}

	h.logger.Info("loading translation model")
	m, err := h.factory(ctx)
	if err != nil {
		h.logger.Error("loading translation model failed", "error", err)
		return nil, fmt.Errorf("load model: %w", err)
	}
	if m == nil {
		return nil, ErrNoModel
	}
	h.model = m
	h.logger.Info("translation model loaded")
	return m, nil
}

// Reset drops the held Model so the next Get constructs a new one. Handles
// created with StaticHandle cannot be rebuilt and are left unchanged.
func (h *Handle) Reset() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.factory != nil {
		h.model = nil
	}
}
