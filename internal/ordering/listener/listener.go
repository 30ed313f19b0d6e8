package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

const (
	EventProductDeleted     = "ProductDeleted"
	EventCategoryDeleted    = "CategoryDeleted"
	EventContentItemDeleted = "ContentItemDeleted"
)

// CatalogListener compacts sibling groups after catalog rows are deleted by
// other services, so orders stay 1..N.
type CatalogListener struct {
	reader       MessageReader
	uc           ordering.UseCase
	logger       logger.ZapLogger
	retryBackoff time.Duration
}

func NewCatalogListener(reader MessageReader, uc ordering.UseCase, log logger.ZapLogger) *CatalogListener {
	return &CatalogListener{
		reader:       reader,
		uc:           uc,
		logger:       log,
		retryBackoff: time.Second,
	}
}

func (l *CatalogListener) Start(ctx context.Context) {
	l.logger.Info("Starting catalog events listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping catalog events listener")
			return
		default:
			msg, err := l.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.retryBackoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type CatalogEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Payload   CatalogPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type CatalogPayload struct {
	ID        string  `json:"id"`
	StoreID   string  `json:"store_id"`
	ProductID string  `json:"product_id"`
	ParentID  *string `json:"parent_id"`
}

// groupOf maps an event to the group that lost a member. ok is false for
// events this listener ignores or cannot place.
func groupOf(event CatalogEvent) (g ordering.Group, ok bool) {
	p := event.Payload
	if p.StoreID == "" {
		return g, false
	}
	switch event.EventType {
	case EventProductDeleted:
		return ordering.Group{Kind: ordering.KindProduct, StoreID: p.StoreID}, true
	case EventCategoryDeleted:
		return ordering.Group{Kind: ordering.KindCategory, StoreID: p.StoreID}, true
	case EventContentItemDeleted:
		if p.ProductID == "" {
			return g, false
		}
		return ordering.Group{
			Kind:      ordering.KindContentItem,
			StoreID:   p.StoreID,
			ProductID: p.ProductID,
			ParentID:  p.ParentID,
		}, true
	}
	return g, false
}

func (l *CatalogListener) processMessage(ctx context.Context, value []byte) {
	var event CatalogEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	g, ok := groupOf(event)
	if !ok {
		return
	}

	l.logger.Info("Compacting group after delete",
		zap.String("event_type", event.EventType),
		zap.String("store_id", g.StoreID),
		zap.String("id", event.Payload.ID),
	)
	if err := l.uc.Compact(ctx, g); err != nil {
		l.logger.Error("Failed to compact group",
			zap.String("event_type", event.EventType),
			zap.String("store_id", g.StoreID),
			zap.Error(err),
		)
	}
}
