package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"notedesk/internal/dto"
	"notedesk/internal/repository/specification"
	"notedesk/internal/repository/unitofwork"
	"notedesk/internal/websocket"
	"notedesk/pkg/events"
	"notedesk/pkg/render"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// previewSurfaceWidth and previewSurfaceHeight approximate the preview
// pane of the desktop client; the export page is sized to this surface.
const (
	previewSurfaceWidth  = 600.0
	previewSurfaceHeight = 800.0
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	renderer   *render.Renderer
	previews   *render.PreviewCache
	hub        *websocket.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	renderer *render.Renderer,
	previews *render.PreviewCache,
	hub *websocket.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		renderer:   renderer,
		previews:   previews,
		hub:        hub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishRenderMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: payload.NoteId})
	if err != nil {
		log.Printf("[ERROR] Failed to get note %s: %v", payload.NoteId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if note == nil {
		// Note deleted before the render ran. Ack and move on.
		msg.Ack()
		return
	}

	html, err := cs.renderer.Render(note.Content)
	if err != nil {
		log.Printf("[ERROR] Failed to render note %s: %v", note.Id, err)
		msg.Ack()
		return
	}

	preview := &render.Preview{
		NoteID:     note.Id,
		HTML:       html,
		Width:      previewSurfaceWidth,
		Height:     previewSurfaceHeight,
		RenderedAt: time.Now(),
	}
	cs.previews.Put(preview)

	cs.hub.Broadcast(events.BaseEvent{
		Type: "PREVIEW_UPDATED",
		Data: map[string]interface{}{
			"note_id": note.Id,
			"html":    html,
		},
		OccurredAt: preview.RenderedAt,
	})

	msg.Ack()
}
