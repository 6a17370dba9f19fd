package kafka

import (
	"context"
	"log"
	"strings"

	"blogbot/workflow"
)

// NewRequestConsumer consumes blog-generation requests from a Kafka topic
// and runs them headless: streamed chunks are discarded and the finished
// post lands in the stage store (and archive, when configured).
//
// Generation failures are not retried through redelivery; a failed run is
// marked so a poisonous topic cannot wedge the partition.
func NewRequestConsumer(brokers []string, topic, groupID string, gen *workflow.Generator) (*Consumer, error) {
	handler := &TypedMessageHandler[workflow.Request]{
		Validate: func(req *workflow.Request) bool {
			return strings.TrimSpace(req.Topic) != ""
		},
		Process: func(ctx context.Context, req *workflow.Request) error {
			log.Printf("Processing queued generation request for topic: %s", req.Topic)
			res, err := gen.Generate(ctx, *req, nil)
			if err != nil {
				log.Printf("Error: queued generation failed for topic %q: %v", req.Topic, err)
				return nil
			}
			if res.NotFound {
				log.Printf("Queued request found no sources for topic: %s", req.Topic)
			}
			return nil
		},
		AlwaysMark: true,
	}

	return NewConsumer(ConsumerConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
		Handler: handler,
	})
}
