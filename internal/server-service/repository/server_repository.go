package repository

import (
	apperrors "RBR_Server_Side/internal/server-service/errors"
	"RBR_Server_Side/internal/server-service/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServersActivitySummary struct {
	TotalServersCnt    int64
	ActiveServersCnt   int64
	InactiveServersCnt int64
}

type ServerRepository interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	GetServerById(ctx context.Context, serverId int) (model.Server, error)
	GetServers(ctx context.Context, name string, isActive *bool, sortBy string, sortOrder string, limit int, offset int) ([]model.Server, error)
	UpdateServer(ctx context.Context, serverId int, updates model.ServerUpdate) (model.Server, error)
	DeleteServerById(ctx context.Context, serverId int) error
	GetServersStatus(ctx context.Context) ([]model.ServerStatus, error)
	CountServersByActivity(ctx context.Context) (ServersActivitySummary, error)
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	result := s.db.WithContext(ctx).Create(&server)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.StringDataRightTruncationDataException {
			return server, fmt.Errorf("ServerRepository.CreateServer: %w", apperrors.ErrValueTooLong)
		}
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServerById(ctx context.Context, serverId int) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).First(&server, "id = ?", serverId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerById: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerById: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServers(ctx context.Context, name string, isActive *bool, sortBy string, sortOrder string, limit int, offset int) ([]model.Server, error) {
	query := s.db.WithContext(ctx)
	if name != "" {
		query = query.Where("name LIKE ?", name+"%")
	}
	if isActive != nil {
		query = query.Where("server_is_active = ?", *isActive)
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var servers []model.Server
	result := query.Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServers: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) UpdateServer(ctx context.Context, serverId int, updates model.ServerUpdate) (model.Server, error) {
	values := map[string]interface{}{}
	if updates.Name != nil {
		values["name"] = *updates.Name
	}
	if updates.IPAddress != nil {
		values["ip_address"] = *updates.IPAddress
	}
	if updates.Description != nil {
		values["description"] = *updates.Description
	}
	if updates.ServerIsActive != nil {
		values["server_is_active"] = *updates.ServerIsActive
	}
	var server model.Server
	result := s.db.WithContext(ctx).Model(&server).Clauses(clause.Returning{}).Where("id = ?", serverId).Updates(values)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.StringDataRightTruncationDataException {
			return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrValueTooLong)
		}
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrServerNotFound)
	}
	return server, nil
}

func (s *serverRepository) DeleteServerById(ctx context.Context, serverId int) error {
	result := s.db.WithContext(ctx).Where("id = ?", serverId).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) GetServersStatus(ctx context.Context) ([]model.ServerStatus, error) {
	var statuses []model.ServerStatus
	result := s.db.WithContext(ctx).Model(&model.Server{}).Select("ip_address", "server_is_active").Find(&statuses)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServersStatus: %w", result.Error)
	}
	return statuses, nil
}

func (s *serverRepository) CountServersByActivity(ctx context.Context) (ServersActivitySummary, error) {
	var summary ServersActivitySummary
	result := s.db.WithContext(ctx).Model(&model.Server{}).Count(&summary.TotalServersCnt)
	if result.Error != nil {
		return summary, fmt.Errorf("ServerRepository.CountServersByActivity: %w", result.Error)
	}
	result = s.db.WithContext(ctx).Model(&model.Server{}).Where("server_is_active = ?", true).Count(&summary.ActiveServersCnt)
	if result.Error != nil {
		return summary, fmt.Errorf("ServerRepository.CountServersByActivity: %w", result.Error)
	}
	summary.InactiveServersCnt = summary.TotalServersCnt - summary.ActiveServersCnt
	return summary, nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
