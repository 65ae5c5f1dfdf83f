package repository

import (
	apperrors "RBR_Server_Side/internal/server-service/errors"
	"RBR_Server_Side/internal/server-service/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
)

type EventRepository interface {
	IndexServerEvent(ctx context.Context, event model.ServerEvent) error
}

const esServerEventIndexName = "server-events"

type eventRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

// IndexServerEvent stores the event under its event id, so redelivered
// messages overwrite the same document instead of duplicating it.
func (e *eventRepository) IndexServerEvent(ctx context.Context, event model.ServerEvent) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(event); err != nil {
		return fmt.Errorf("EventRepository.IndexServerEvent encode event: %w", err)
	}
	res, err := e.es.Index(
		esServerEventIndexName,
		&buf,
		e.es.Index.WithDocumentID(event.EventID),
		e.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("EventRepository.IndexServerEvent: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var esErr esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&esErr); err != nil {
			return fmt.Errorf("EventRepository.IndexServerEvent decode err response: %w", err)
		}
		return fmt.Errorf("EventRepository.IndexServerEvent: %w", apperrors.NewElasticSearchError(res.StatusCode, esErr.Error.Type, esErr.Error.Reason))
	}
	return nil
}

func NewEventRepository(esClient *elasticsearch.Client) EventRepository {
	return &eventRepository{
		es: esClient,
	}
}
