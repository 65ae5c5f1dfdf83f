package handler

import (
	"RBR_Server_Side/internal/server-service/api/dto/request"
	"RBR_Server_Side/internal/server-service/api/dto/response"
	apperrors "RBR_Server_Side/internal/server-service/errors"
	"RBR_Server_Side/internal/server-service/model"
	"RBR_Server_Side/internal/server-service/service"
	"RBR_Server_Side/pkg/middleware"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ServerHandler interface {
	CreateServer() gin.HandlerFunc
	GetServers() gin.HandlerFunc
	GetServerById() gin.HandlerFunc
	UpdateServer() gin.HandlerFunc
	PartialUpdateServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	GetServersStatus() gin.HandlerFunc
	ExportServersToExcelFile() gin.HandlerFunc
	ReportServersActivity() gin.HandlerFunc
}

type serverHandler struct {
	logger        *zap.Logger
	serverService service.ServerService
}

func (*serverHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "ip":
		return fmt.Sprintf("The %s field is not a valid ip address", err.Field())
	case "min":
		return fmt.Sprintf("The %s field must not be blank", err.Field())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s characters", err.Field(), err.Param())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (s *serverHandler) bindingErrorResponse(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: s.formatValidationError(validatorError[0]),
		})
	} else {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid request body",
		})
	}
}

// parseServerID reads the :id path parameter. A non-numeric id can never
// match a record, so it is reported as not found rather than bad request.
func (s *serverHandler) parseServerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Server not found",
		})
		return 0, false
	}
	return id, true
}

type listQuery struct {
	name      string
	isActive  *bool
	sortBy    string
	sortOrder string
	limit     int
	offset    int
}

func (s *serverHandler) parseListQuery(c *gin.Context, defaultSortOrder string) (listQuery, bool) {
	var q listQuery
	q.name = c.Query("name")
	offset := c.DefaultQuery("offset", "0")
	o, err := strconv.Atoi(offset)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Offset must be an integer",
		})
		return q, false
	}
	// limit 0 means no limit so a bare list request returns every record
	limit := c.DefaultQuery("limit", "0")
	l, err := strconv.Atoi(limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Limit must be an integer",
		})
		return q, false
	}
	if o < 0 {
		o = 0
	}
	if l < 0 {
		l = 0
	}
	if isActive := c.Query("is_active"); isActive != "" {
		b, e := strconv.ParseBool(isActive)
		if e != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid is_active",
			})
			return q, false
		}
		q.isActive = &b
	}
	q.sortBy = c.DefaultQuery("sort_by", "created_at")
	if q.sortBy != "name" && q.sortBy != "created_at" {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid sort by",
		})
		return q, false
	}
	q.sortOrder = c.DefaultQuery("sort_order", defaultSortOrder)
	if q.sortOrder != "asc" && q.sortOrder != "desc" {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid sort order",
		})
		return q, false
	}
	q.limit = l
	q.offset = o
	return q, true
}

func toServerInfoResponse(server model.Server) response.ServerInfoResponse {
	return response.ServerInfoResponse{
		ID:             server.ID,
		Name:           server.Name,
		IPAddress:      server.IPAddress,
		Description:    server.Description,
		ServerIsActive: server.ServerIsActive,
		CreatedAt:      server.CreatedAt,
		UpdatedAt:      server.UpdatedAt,
	}
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingErrorResponse(c, err)
			return
		}
		newServer := model.Server{
			Name:           req.Name,
			IPAddress:      req.IPAddress,
			Description:    req.Description,
			ServerIsActive: req.ServerIsActive != nil && *req.ServerIsActive,
		}
		res, err := s.serverService.CreateServer(c, newServer)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrValueTooLong):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Field value too long",
				})
			default:
				err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
				s.loggingError(c, err, "failed to create server", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, toServerInfoResponse(res))
	}
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := s.parseListQuery(c, "asc")
		if !ok {
			return
		}
		servers, err := s.serverService.GetServers(c, q.name, q.isActive, q.sortBy, q.sortOrder, q.limit, q.offset)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServers: %w", err)
			s.loggingError(c, err, "failed to get servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		serversRes := make([]response.ServerInfoResponse, 0, len(servers))
		for _, server := range servers {
			serversRes = append(serversRes, toServerInfoResponse(server))
		}
		c.JSON(http.StatusOK, serversRes)
	}
}

func (s *serverHandler) GetServerById() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := s.parseServerID(c)
		if !ok {
			return
		}
		server, err := s.serverService.GetServerById(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			default:
				err = fmt.Errorf("ServerHandler.GetServerById: %w", err)
				s.loggingError(c, err, fmt.Sprintf("failed to get server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, toServerInfoResponse(server))
	}
}

// UpdateServer handles PUT: the whole record is replaced, omitted optional
// fields revert to their defaults.
func (s *serverHandler) UpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := s.parseServerID(c)
		if !ok {
			return
		}
		var req request.ServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingErrorResponse(c, err)
			return
		}
		ip := req.IPAddress
		if ip == "" {
			ip = model.DefaultIPAddress
		}
		description := req.Description
		if description == "" {
			description = model.DefaultDescription
		}
		active := req.ServerIsActive != nil && *req.ServerIsActive
		updates := model.ServerUpdate{
			Name:           &req.Name,
			IPAddress:      &ip,
			Description:    &description,
			ServerIsActive: &active,
		}
		s.applyUpdate(c, id, updates, "ServerHandler.UpdateServer")
	}
}

// PartialUpdateServer handles PATCH: only the provided fields mutate.
func (s *serverHandler) PartialUpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := s.parseServerID(c)
		if !ok {
			return
		}
		// a zero-byte body is the same no-op as {}
		var req request.UpdateServerRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			s.bindingErrorResponse(c, err)
			return
		}
		updates := model.ServerUpdate{
			Name:           req.Name,
			IPAddress:      req.IPAddress,
			Description:    req.Description,
			ServerIsActive: req.ServerIsActive,
		}
		s.applyUpdate(c, id, updates, "ServerHandler.PartialUpdateServer")
	}
}

func (s *serverHandler) applyUpdate(c *gin.Context, id int, updates model.ServerUpdate, caller string) {
	updatedServer, err := s.serverService.UpdateServer(c, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrServerNotFound):
			c.JSON(http.StatusNotFound, response.Response{
				Message: "Server not found",
			})
		case errors.Is(err, apperrors.ErrValueTooLong):
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Field value too long",
			})
		default:
			err = fmt.Errorf("%s: %w", caller, err)
			s.loggingError(c, err, fmt.Sprintf("failed to update server %d", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, toServerInfoResponse(updatedServer))
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := s.parseServerID(c)
		if !ok {
			return
		}
		err := s.serverService.DeleteServer(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			default:
				err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
				s.loggingError(c, err, fmt.Sprintf("failed to delete server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *serverHandler) GetServersStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		statuses, err := s.serverService.GetServersStatus(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServersStatus: %w", err)
			s.loggingError(c, err, "failed to get servers status", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		statusesRes := make([]response.ServerStatusResponse, 0, len(statuses))
		for _, status := range statuses {
			statusesRes = append(statusesRes, response.ServerStatusResponse{
				IPAddress:      status.IPAddress,
				ServerIsActive: status.ServerIsActive,
			})
		}
		c.JSON(http.StatusOK, statusesRes)
	}
}

func (s *serverHandler) ExportServersToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := s.parseListQuery(c, "desc")
		if !ok {
			return
		}
		servers, err := s.serverService.GetServers(c, q.name, q.isActive, q.sortBy, q.sortOrder, q.limit, q.offset)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := s.generateExcelFile(servers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("servers-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (s *serverHandler) generateExcelFile(servers []model.Server) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Servers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "name", "ip_address", "description", "server_is_active", "created_at", "updated_at"}
	if err = f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, server := range servers {
		rowData := []interface{}{
			server.ID,
			server.Name,
			server.IPAddress,
			server.Description,
			server.ServerIsActive,
			server.CreatedAt.Format("2006-01-02 15:04:05"),
			server.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		startCell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(sheetName, startCell, &rowData); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (s *serverHandler) ReportServersActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingErrorResponse(c, err)
			return
		}
		if err := s.serverService.ReportServersActivity(c, req.Email); err != nil {
			err = fmt.Errorf("ServerHandler.ReportServersActivity: %w", err)
			s.loggingError(c, err, "failed to send servers report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func (s *serverHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	data := []zapcore.Field{
		zap.Error(err),
		zap.String("http_method", c.Request.Method),
		zap.String("http_path", c.Request.URL.Path),
	}
	if requestID := c.GetString(middleware.RequestIDKey); requestID != "" {
		data = append(data, zap.String("request_id", requestID))
	}
	s.logger.Log(logLevel, errDescription, data...)
}

func NewServerHandler(logger *zap.Logger, serverService service.ServerService) ServerHandler {
	return &serverHandler{
		logger:        logger,
		serverService: serverService,
	}
}
