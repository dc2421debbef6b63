package messaging

import (
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestNewNatsServer_Defaults(t *testing.T) {
	s, err := NewNatsServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "start timeout", s.startTimeout, defaultStartTimeout)
	testutil.AssertEqual(t, "host", s.host, "127.0.0.1")
	testutil.AssertEqual(t, "port", s.port, 0)
}

func TestNewNatsServer_Options(t *testing.T) {
	s, err := NewNatsServer(
		WithStartTimeout(5*time.Second),
		WithHost("localhost"),
		WithPort(14222),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "start timeout", s.startTimeout, 5*time.Second)
	testutil.AssertEqual(t, "host", s.host, "localhost")
	testutil.AssertEqual(t, "port", s.port, 14222)
}

func TestNatsServer_PublishBeforeStart(t *testing.T) {
	s, err := NewNatsServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Publish(NarrationSubject, []byte("too early")); err == nil {
		t.Error("expected error publishing before start")
	}
	if _, err := s.Subscribe(NarrationSubject, func([]byte) {}); err == nil {
		t.Error("expected error subscribing before start")
	}
}
