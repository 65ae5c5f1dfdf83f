package event_indexer

import (
	"RBR_Server_Side/internal/event-indexer/repository"
	"RBR_Server_Side/internal/server-service/model"
	"RBR_Server_Side/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

type EventIndexer interface {
	Start()
	Stop()
}

type eventIndexer struct {
	kafkaReader infra.KafkaReader
	eventRepo   repository.EventRepository
	logger      *zap.Logger
}

func (e *eventIndexer) Start() {
	go func() {
		for {
			m, err := e.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("eventIndexer.Start: %w", err)
				e.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err = e.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("eventIndexer.Start: %w", err)
					e.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			var event model.ServerEvent
			if err = json.Unmarshal(m.Value, &event); err != nil {
				err = fmt.Errorf("eventIndexer.Start: %w", err)
				e.logger.Log(zap.ErrorLevel, "failed to unmarshal message", zap.Error(err))
				err = e.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("eventIndexer.Start: %w", err)
					e.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			err = e.eventRepo.IndexServerEvent(ctx, event)
			if err != nil {
				cancel()
				err = fmt.Errorf("eventIndexer.Start: %w", err)
				e.logger.Log(zap.ErrorLevel, "failed to index server event", zap.Error(err))
				continue
			}
			err = e.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("eventIndexer.Start: %w", err)
				e.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
		}
	}()
}

func (e *eventIndexer) Stop() {
	e.kafkaReader.Close()
}

func NewEventIndexer(reader infra.KafkaReader, eventRepo repository.EventRepository, logger *zap.Logger) EventIndexer {
	return &eventIndexer{
		kafkaReader: reader,
		eventRepo:   eventRepo,
		logger:      logger,
	}
}
