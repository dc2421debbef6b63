package engine

import "github.com/feralgames/go-wolfpack/internal/events"

type Opt func(*Engine)

// WithPublisher attaches a narration publisher.
func WithPublisher(pub Publisher) Opt {
	return func(e *Engine) {
		e.pub = pub
	}
}

// WithGenerator attaches a random event content generator.
func WithGenerator(gen *events.Generator) Opt {
	return func(e *Engine) {
		e.gen = gen
	}
}

// WithSavePath sets the default session save file.
func WithSavePath(path string) Opt {
	return func(e *Engine) {
		e.savePath = path
	}
}
