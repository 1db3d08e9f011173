package relay

import (
	"context"

	"github.com/MKhiriev/flashcard-bridge/models"
)

// Channel is the transport endpoint of an attached embedded application.
type Channel interface {
	// ID identifies the endpoint. Events whose Source differs are not from
	// the attached application and are discarded.
	ID() string

	// Post delivers one message to the embedded application.
	Post(ctx context.Context, msg models.Outbound) error
}

// Event is one frame received from a channel endpoint.
type Event struct {
	Source string
	Data   []byte
}
