package messages

import (
	"context"

	"max.ks1230/finance-assistant/internal/model/export"
)

// documentSink delivers exports as Telegram documents.
type documentSink struct {
	sender messageSender
	userID int64
}

func (s documentSink) Deliver(ctx context.Context, d export.Download) error {
	return s.sender.SendDocument(ctx, s.userID, d)
}
