package service

import (
	apperrors "RBR_Server_Side/internal/server-service/errors"
	mockevent "RBR_Server_Side/internal/server-service/mocks/event"
	mockrepository "RBR_Server_Side/internal/server-service/mocks/repository"
	"RBR_Server_Side/internal/server-service/model"
	"RBR_Server_Side/internal/server-service/repository"
	mockmail "RBR_Server_Side/pkg/mail"

	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestServerService_CreateServer(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		input      model.Server
		setupMocks func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer)
		expectErr  bool
	}{
		{
			name: "Success Defaults applied",
			input: model.Server{
				Name: "web-01",
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					CreateServer(ctx, model.Server{
						Name:        "web-01",
						IPAddress:   model.DefaultIPAddress,
						Description: model.DefaultDescription,
					}).
					Return(model.Server{
						ID:          1,
						Name:        "web-01",
						IPAddress:   model.DefaultIPAddress,
						Description: model.DefaultDescription,
					}, nil)

				producer.EXPECT().
					PublishServerEvent(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, e model.ServerEvent) error {
						assert.Equal(t, model.ServerEventCreated, e.Type)
						assert.Equal(t, 1, e.ServerID)
						assert.NotEmpty(t, e.EventID)
						return nil
					})
			},
			expectErr: false,
		},
		{
			name: "Success Explicit fields kept",
			input: model.Server{
				Name:           "web-02",
				IPAddress:      "10.0.0.2",
				Description:    "edge node",
				ServerIsActive: true,
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					CreateServer(ctx, model.Server{
						Name:           "web-02",
						IPAddress:      "10.0.0.2",
						Description:    "edge node",
						ServerIsActive: true,
					}).
					Return(model.Server{ID: 2, Name: "web-02", IPAddress: "10.0.0.2", Description: "edge node", ServerIsActive: true}, nil)

				producer.EXPECT().
					PublishServerEvent(ctx, gomock.Any()).
					Return(nil)
			},
			expectErr: false,
		},
		{
			name: "Success Publish failure does not fail the create",
			input: model.Server{
				Name: "web-03",
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					CreateServer(ctx, gomock.Any()).
					Return(model.Server{ID: 3, Name: "web-03"}, nil)

				producer.EXPECT().
					PublishServerEvent(ctx, gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			expectErr: false,
		},
		{
			name: "Error Repository returns an error",
			input: model.Server{
				Name: "web-04",
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					CreateServer(ctx, gomock.Any()).
					Return(model.Server{}, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockServerRepo := mockrepository.NewMockServerRepository(ctrl)
			mockProducer := mockevent.NewMockProducer(ctrl)
			tc.setupMocks(mockServerRepo, mockProducer)

			service := NewServerService(mockServerRepo, mockProducer, nil, zap.NewNop())

			got, err := service.CreateServer(ctx, tc.input)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, got.ID)
			}
		})
	}
}

func TestServerService_GetServerById(t *testing.T) {
	ctx := context.Background()
	server := model.Server{ID: 10, Name: "db-01"}

	testCases := []struct {
		name        string
		setupMocks  func(serverRepo *mockrepository.MockServerRepository)
		expectedErr error
	}{
		{
			name: "Success",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository) {
				serverRepo.EXPECT().
					GetServerById(ctx, 10).
					Return(server, nil)
			},
			expectedErr: nil,
		},
		{
			name: "Error Not found",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository) {
				serverRepo.EXPECT().
					GetServerById(ctx, 10).
					Return(model.Server{}, apperrors.ErrServerNotFound)
			},
			expectedErr: apperrors.ErrServerNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockServerRepo := mockrepository.NewMockServerRepository(ctrl)
			tc.setupMocks(mockServerRepo)

			service := NewServerService(mockServerRepo, nil, nil, zap.NewNop())

			got, err := service.GetServerById(ctx, 10)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, server, got)
			}
		})
	}
}

func TestServerService_GetServers(t *testing.T) {
	ctx := context.Background()
	servers := []model.Server{
		{ID: 1, Name: "web-01"},
		{ID: 2, Name: "web-02"},
	}

	testCases := []struct {
		name       string
		setupMocks func(serverRepo *mockrepository.MockServerRepository)
		expectErr  bool
	}{
		{
			name: "Success",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository) {
				serverRepo.EXPECT().
					GetServers(ctx, "web", gomock.Nil(), "created_at", "asc", 10, 0).
					Return(servers, nil)
			},
			expectErr: false,
		},
		{
			name: "Error Repository returns an error",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository) {
				serverRepo.EXPECT().
					GetServers(ctx, "web", gomock.Nil(), "created_at", "asc", 10, 0).
					Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockServerRepo := mockrepository.NewMockServerRepository(ctrl)
			tc.setupMocks(mockServerRepo)

			service := NewServerService(mockServerRepo, nil, nil, zap.NewNop())

			got, err := service.GetServers(ctx, "web", nil, "created_at", "asc", 10, 0)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, servers, got)
			}
		})
	}
}

func TestServerService_UpdateServer(t *testing.T) {
	ctx := context.Background()
	newName := "renamed"
	updatedServer := model.Server{ID: 5, Name: newName}

	testCases := []struct {
		name        string
		updates     model.ServerUpdate
		setupMocks  func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer)
		expectedErr error
	}{
		{
			name:    "Success",
			updates: model.ServerUpdate{Name: &newName},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					UpdateServer(ctx, 5, model.ServerUpdate{Name: &newName}).
					Return(updatedServer, nil)

				producer.EXPECT().
					PublishServerEvent(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, e model.ServerEvent) error {
						assert.Equal(t, model.ServerEventUpdated, e.Type)
						assert.Equal(t, 5, e.ServerID)
						return nil
					})
			},
			expectedErr: nil,
		},
		{
			name:    "Success Empty patch reads current record",
			updates: model.ServerUpdate{},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					GetServerById(ctx, 5).
					Return(updatedServer, nil)
			},
			expectedErr: nil,
		},
		{
			name:    "Error Not found",
			updates: model.ServerUpdate{Name: &newName},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					UpdateServer(ctx, 5, gomock.Any()).
					Return(model.Server{}, apperrors.ErrServerNotFound)
			},
			expectedErr: apperrors.ErrServerNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockServerRepo := mockrepository.NewMockServerRepository(ctrl)
			mockProducer := mockevent.NewMockProducer(ctrl)
			tc.setupMocks(mockServerRepo, mockProducer)

			service := NewServerService(mockServerRepo, mockProducer, nil, zap.NewNop())

			got, err := service.UpdateServer(ctx, 5, tc.updates)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, updatedServer, got)
			}
		})
	}
}

func TestServerService_DeleteServer(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMocks  func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer)
		expectedErr error
	}{
		{
			name: "Success",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					DeleteServerById(ctx, 6).
					Return(nil)

				producer.EXPECT().
					PublishServerEvent(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, e model.ServerEvent) error {
						assert.Equal(t, model.ServerEventDeleted, e.Type)
						assert.Equal(t, 6, e.ServerID)
						return nil
					})
			},
			expectedErr: nil,
		},
		{
			name: "Error Not found",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, producer *mockevent.MockProducer) {
				serverRepo.EXPECT().
					DeleteServerById(ctx, 6).
					Return(apperrors.ErrServerNotFound)
			},
			expectedErr: apperrors.ErrServerNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockServerRepo := mockrepository.NewMockServerRepository(ctrl)
			mockProducer := mockevent.NewMockProducer(ctrl)
			tc.setupMocks(mockServerRepo, mockProducer)

			service := NewServerService(mockServerRepo, mockProducer, nil, zap.NewNop())

			err := service.DeleteServer(ctx, 6)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerService_GetServersStatus(t *testing.T) {
	ctx := context.Background()
	statuses := []model.ServerStatus{
		{IPAddress: "10.0.0.1", ServerIsActive: true},
		{IPAddress: "10.0.0.2", ServerIsActive: false},
	}

	testCases := []struct {
		name       string
		setupMocks func(serverRepo *mockrepository.MockServerRepository)
		expectErr  bool
	}{
		{
			name: "Success",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository) {
				serverRepo.EXPECT().
					GetServersStatus(ctx).
					Return(statuses, nil)
			},
			expectErr: false,
		},
		{
			name: "Error Repository returns an error",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository) {
				serverRepo.EXPECT().
					GetServersStatus(ctx).
					Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockServerRepo := mockrepository.NewMockServerRepository(ctrl)
			tc.setupMocks(mockServerRepo)

			service := NewServerService(mockServerRepo, nil, nil, zap.NewNop())

			got, err := service.GetServersStatus(ctx)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, statuses, got)
			}
		})
	}
}

func TestServerService_ReportServersActivity(t *testing.T) {
	ctx := context.Background()
	recipientMail := "admin@example.com"

	summary := repository.ServersActivitySummary{
		TotalServersCnt:    10,
		ActiveServersCnt:   7,
		InactiveServersCnt: 3,
	}

	testCases := []struct {
		name       string
		setupMocks func(serverRepo *mockrepository.MockServerRepository, mailSender *mockmail.MockSender)
		expectErr  bool
	}{
		{
			name: "Success Report sent successfully",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, mailSender *mockmail.MockSender) {
				serverRepo.EXPECT().
					CountServersByActivity(ctx).
					Return(summary, nil)

				mailSender.EXPECT().
					SendMail([]string{recipientMail}, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectErr: false,
		},
		{
			name: "Error Repository returns an error",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, mailSender *mockmail.MockSender) {
				serverRepo.EXPECT().
					CountServersByActivity(ctx).
					Return(repository.ServersActivitySummary{}, errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Error Mail sender returns an error",
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, mailSender *mockmail.MockSender) {
				serverRepo.EXPECT().
					CountServersByActivity(ctx).
					Return(summary, nil)

				mailSender.EXPECT().
					SendMail([]string{recipientMail}, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockServerRepo := mockrepository.NewMockServerRepository(ctrl)
			mockMailSender := mockmail.NewMockSender(ctrl)
			tc.setupMocks(mockServerRepo, mockMailSender)

			service := NewServerService(mockServerRepo, nil, mockMailSender, zap.NewNop())

			err := service.ReportServersActivity(ctx, recipientMail)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
