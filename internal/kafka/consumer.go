// Package kafka содержит консьюмер массового импорта товаров.
package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/RoGogDBD/items/internal/config"
	"github.com/RoGogDBD/items/internal/models"
	"github.com/RoGogDBD/items/internal/repository"
	"github.com/RoGogDBD/items/internal/retry"
	"github.com/RoGogDBD/items/internal/validation"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// RunConsumer читает JSON-формы товаров из топика, валидирует и
// сохраняет их. Невалидные сообщения и неудавшиеся после повторов
// вставки уходят в DLQ-топик.
func RunConsumer(ctx context.Context, cfg config.KafkaConfig, store repository.ItemStore, mem repository.Cache) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("kafka reader close error: %v", err)
		}
	}()

	var dlq *kafka.Writer
	if cfg.DLQTopic != "" {
		dlq = &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.DLQTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer func() {
			if err := dlq.Close(); err != nil {
				log.Printf("kafka dlq writer close error: %v", err)
			}
		}()
	}

	backoff := retry.NewBackoff(cfg.DLQBackoff, cfg.DLQBackoffCap, cfg.DLQBackoffJitter)
	validate := validation.New()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			log.Printf("kafka read error: %v", err)
			return
		}

		var form models.ItemForm
		if err := json.Unmarshal(m.Value, &form); err != nil {
			log.Printf("invalid message: %v", err)
			sendToDLQ(ctx, dlq, m, "unmarshal: "+err.Error())
			continue
		}

		if err := validate.Struct(&form); err != nil {
			log.Printf("validation failed for item: %v", err)
			sendToDLQ(ctx, dlq, m, "validation: "+err.Error())
			continue
		}

		item, err := insertWithRetries(ctx, store, &form, backoff, cfg.DLQMaxRetries)
		if err != nil {
			log.Printf("failed to save item to DB: %v", err)
			sendToDLQ(ctx, dlq, m, "insert: "+err.Error())
			continue
		}

		mem.Save(item)

		log.Printf("successfully imported item %d", item.ID)
	}
}

func insertWithRetries(ctx context.Context, store repository.ItemStore, form *models.ItemForm, backoff *retry.Backoff, maxRetries int) (*models.Item, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := backoff.Wait(ctx, attempt-1); err != nil {
				return nil, err
			}
		}

		item, err := store.InsertItem(ctx, form)
		if err == nil {
			return item, nil
		}
		lastErr = err
		log.Printf("insert attempt %d/%d failed: %v", attempt+1, maxRetries+1, err)
	}
	return nil, lastErr
}

func sendToDLQ(ctx context.Context, dlq *kafka.Writer, m kafka.Message, reason string) {
	if dlq == nil {
		return
	}

	err := dlq.WriteMessages(ctx, kafka.Message{
		Key:   []byte(uuid.NewString()),
		Value: m.Value,
		Headers: []kafka.Header{
			{Key: "error", Value: []byte(reason)},
		},
	})
	if err != nil {
		log.Printf("failed to write message to DLQ: %v", err)
	}
}
