package integrations

import "context"

// StatementArchive keeps a copy of every uploaded statement file.
type StatementArchive interface {
	// Archive stores content and returns a URI identifying the copy.
	Archive(ctx context.Context, ownerID, uploadID, filename string, content []byte) (string, error)
}

// EventTracker records product analytics events. Delivery is best effort.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
