package service

import (
	"RBR_Server_Side/internal/server-service/event"
	"RBR_Server_Side/internal/server-service/model"
	"RBR_Server_Side/internal/server-service/repository"
	"RBR_Server_Side/pkg/mail"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ServerService interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	GetServerById(ctx context.Context, id int) (model.Server, error)
	GetServers(ctx context.Context, name string, isActive *bool, sortBy string, sortOrder string, limit int, offset int) ([]model.Server, error)
	UpdateServer(ctx context.Context, id int, updates model.ServerUpdate) (model.Server, error)
	DeleteServer(ctx context.Context, id int) error
	GetServersStatus(ctx context.Context) ([]model.ServerStatus, error)
	ReportServersActivity(ctx context.Context, recipient string) error
}

type serverService struct {
	serverRepository repository.ServerRepository
	eventProducer    event.Producer
	mailSender       mail.Sender
	logger           *zap.Logger
}

func (s *serverService) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	if server.IPAddress == "" {
		server.IPAddress = model.DefaultIPAddress
	}
	if server.Description == "" {
		server.Description = model.DefaultDescription
	}
	createdServer, err := s.serverRepository.CreateServer(ctx, server)
	if err != nil {
		return server, fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	s.publishServerEvent(ctx, model.ServerEventCreated, createdServer)
	return createdServer, nil
}

func (s *serverService) GetServerById(ctx context.Context, id int) (model.Server, error) {
	server, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.GetServerById: %w", err)
	}
	return server, nil
}

func (s *serverService) GetServers(ctx context.Context, name string, isActive *bool, sortBy string, sortOrder string, limit int, offset int) ([]model.Server, error) {
	servers, err := s.serverRepository.GetServers(ctx, name, isActive, sortBy, sortOrder, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServers: %w", err)
	}
	return servers, nil
}

func (s *serverService) UpdateServer(ctx context.Context, id int, updates model.ServerUpdate) (model.Server, error) {
	// an empty patch mutates nothing, return the current record
	if updates.IsEmpty() {
		server, err := s.serverRepository.GetServerById(ctx, id)
		if err != nil {
			return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
		}
		return server, nil
	}
	updatedServer, err := s.serverRepository.UpdateServer(ctx, id, updates)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	s.publishServerEvent(ctx, model.ServerEventUpdated, updatedServer)
	return updatedServer, nil
}

func (s *serverService) DeleteServer(ctx context.Context, id int) error {
	err := s.serverRepository.DeleteServerById(ctx, id)
	if err != nil {
		return fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	s.publishServerEvent(ctx, model.ServerEventDeleted, model.Server{ID: id})
	return nil
}

func (s *serverService) GetServersStatus(ctx context.Context) ([]model.ServerStatus, error) {
	statuses, err := s.serverRepository.GetServersStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServersStatus: %w", err)
	}
	return statuses, nil
}

func (s *serverService) ReportServersActivity(ctx context.Context, recipient string) error {
	summary, err := s.serverRepository.CountServersByActivity(ctx)
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersActivity: %w", err)
	}
	subject := fmt.Sprintf("Servers Activity Report %s", time.Now().Format("2006-01-02"))
	err = s.mailSender.SendMail([]string{recipient}, subject, generateHTMLMailBody(summary), generateTextMailBody(summary))
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersActivity: %w", err)
	}
	return nil
}

// publishServerEvent is best effort: a broker outage must not fail the CRUD
// operation that triggered the event.
func (s *serverService) publishServerEvent(ctx context.Context, eventType string, server model.Server) {
	e := model.ServerEvent{
		EventID:        uuid.NewString(),
		Type:           eventType,
		ServerID:       server.ID,
		Name:           server.Name,
		IPAddress:      server.IPAddress,
		ServerIsActive: server.ServerIsActive,
		Timestamp:      time.Now(),
	}
	if err := s.eventProducer.PublishServerEvent(ctx, e); err != nil {
		s.logger.Warn("failed to publish server event",
			zap.String("event_type", eventType),
			zap.Int("server_id", server.ID),
			zap.Error(err))
	}
}

func generateTextMailBody(summary repository.ServersActivitySummary) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Servers: %d\n"+
			"Active: %d\n"+
			"Inactive: %d",
		summary.TotalServersCnt,
		summary.ActiveServersCnt,
		summary.InactiveServersCnt,
	)
}

func generateHTMLMailBody(summary repository.ServersActivitySummary) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Active Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Inactive Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		summary.TotalServersCnt,
		summary.ActiveServersCnt,
		summary.InactiveServersCnt,
	)
}

func NewServerService(serverRepository repository.ServerRepository, eventProducer event.Producer, mailSender mail.Sender, logger *zap.Logger) ServerService {
	return &serverService{
		serverRepository: serverRepository,
		eventProducer:    eventProducer,
		mailSender:       mailSender,
		logger:           logger,
	}
}
