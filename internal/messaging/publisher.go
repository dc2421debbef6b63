package messaging

// NarrationSubject is where turn narration is published for front ends.
const NarrationSubject = "wolfpack.narration"

// NarrationPublisher delivers engine narration over the embedded NATS
// server. Front ends subscribe to NarrationSubject; the engine never
// learns who, if anyone, is listening.
type NarrationPublisher struct {
	server *NatsServer
}

// NewNarrationPublisher wraps a NatsServer for narration delivery.
func NewNarrationPublisher(server *NatsServer) *NarrationPublisher {
	return &NarrationPublisher{server: server}
}

func (p *NarrationPublisher) PublishNarration(data []byte) error {
	return p.server.Publish(NarrationSubject, data)
}
