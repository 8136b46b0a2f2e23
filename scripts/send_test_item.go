package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/RoGogDBD/items/internal/config"
	"github.com/RoGogDBD/items/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func main() {
	count := flag.Int("count", 1, "Number of test items to send")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
		log.Fatal("Kafka brokers or topic not configured")
	}

	w := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    cfg.Kafka.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("kafka writer close error: %v", err)
		}
	}()

	for i := 0; i < *count; i++ {
		key := uuid.New().String()
		name := fmt.Sprintf("Test Item %s", key[:8])
		description := "Imported test item"
		price := 199.99

		form := models.ItemForm{
			Name:        &name,
			Description: &description,
			Price:       &price,
		}

		formJSON, err := json.Marshal(form)
		if err != nil {
			log.Fatalf("Failed to marshal item: %v", err)
		}

		err = w.WriteMessages(context.Background(),
			kafka.Message{
				Key:   []byte(key),
				Value: formJSON,
			},
		)
		if err != nil {
			log.Fatalf("Failed to send message: %v", err)
		}

		log.Printf("Message %d sent successfully with name: %s", i+1, name)
	}
}
