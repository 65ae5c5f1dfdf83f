package repository

import (
	apperrors "RBR_Server_Side/internal/server-service/errors"
	"RBR_Server_Side/internal/server-service/model"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoundTripper struct {
	Request  *http.Request
	Response *http.Response
	Err      error
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Request = req
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func newMockEsClient(statusCode int, body string, err error) (*elasticsearch.Client, *mockRoundTripper, error) {
	if err != nil {
		rt := &mockRoundTripper{Err: err}
		client, e := elasticsearch.NewClient(elasticsearch.Config{
			Transport: rt,
		})
		return client, rt, e
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")

	rt := &mockRoundTripper{
		Response: &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     header,
		},
	}
	client, e := elasticsearch.NewClient(elasticsearch.Config{
		Transport: rt,
	})
	return client, rt, e
}

func TestEventRepository_IndexServerEvent(t *testing.T) {
	serverEvent := model.ServerEvent{
		EventID:        "event-123",
		Type:           model.ServerEventUpdated,
		ServerID:       8,
		Name:           "web-08",
		IPAddress:      "10.0.0.8",
		ServerIsActive: true,
		Timestamp:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	successBody := `{"_id": "event-123", "result": "created"}`
	esErrorBody := `{
		"error": {
			"type": "mapper_parsing_exception",
			"reason": "failed to parse field"
		}
	}`

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		expectErr      bool
		checkErr       func(t *testing.T, err error)
	}{
		{
			name:           "Success Event indexed under its event id",
			mockStatusCode: http.StatusCreated,
			mockBody:       successBody,
			expectErr:      false,
		},
		{
			name:           "Error Elasticsearch rejects the document",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       esErrorBody,
			expectErr:      true,
			checkErr: func(t *testing.T, err error) {
				var esErr *apperrors.ElasticSearchError
				require.True(t, errors.As(err, &esErr))
				assert.Equal(t, http.StatusBadRequest, esErr.StatusCode)
				assert.Equal(t, "mapper_parsing_exception", esErr.Type)
			},
		},
		{
			name:      "Error Transport failure",
			mockErr:   errors.New("connection refused"),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			esClient, rt, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewEventRepository(esClient)

			err = repo.IndexServerEvent(context.Background(), serverEvent)

			if tc.expectErr {
				require.Error(t, err)
				if tc.checkErr != nil {
					tc.checkErr(t, err)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, rt.Request)
				assert.Contains(t, rt.Request.URL.Path, "/server-events/_doc/event-123")
			}
		})
	}
}
