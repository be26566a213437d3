package eventpublisher

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"context"
	"encoding/json"
	"time"

	"github.com/r3labs/sse/v2"
)

const STREAM_ID = "accounts"

const (
	EVENT_ACCOUNT_CREATED = "account-created"
	EVENT_ACCOUNT_DELETED = "account-deleted"
)

// SSEPublisher fans account lifecycle events out to stream subscribers.
// Publishing never blocks request handling, a broken subscriber only
// loses its own events.
type SSEPublisher struct {
	sseServer *sse.Server
	log       logging.Logger
	now       func() time.Time
}

func NewSSEPublisher(sseServer *sse.Server, log logging.Logger, now func() time.Time) *SSEPublisher {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	sseServer.CreateStream(STREAM_ID)
	return &SSEPublisher{sseServer: sseServer, log: log, now: now}
}

func (p *SSEPublisher) PublishAccountCreated(ctx context.Context, a account.Account) {
	p.publish(ctx, EVENT_ACCOUNT_CREATED, accountCreatedEvent{
		PublicID:  string(a.PublicID),
		Email:     string(a.Email),
		Timestamp: p.now().Format(time.RFC3339),
	})
}

func (p *SSEPublisher) PublishAccountDeleted(ctx context.Context, publicID account.PublicID) {
	p.publish(ctx, EVENT_ACCOUNT_DELETED, accountDeletedEvent{
		PublicID:  string(publicID),
		Timestamp: p.now().Format(time.RFC3339),
	})
}

func (p *SSEPublisher) publish(ctx context.Context, eventType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.log.Error(ctx, "Could not encode account event.", logging.Entry("err", err))
		return
	}
	p.sseServer.Publish(STREAM_ID, &sse.Event{
		Event: []byte(eventType),
		Data:  data,
	})
}

type accountCreatedEvent struct {
	PublicID  string `json:"publicId"`
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
}

type accountDeletedEvent struct {
	PublicID  string `json:"publicId"`
	Timestamp string `json:"timestamp"`
}
