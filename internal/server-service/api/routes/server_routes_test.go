package routes

import (
	mockhandler "RBR_Server_Side/internal/server-service/mocks/api/handler"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpServerRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockServerHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}

	mockHandler.EXPECT().CreateServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetServers().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetServerById().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().UpdateServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().PartialUpdateServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().DeleteServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetServersStatus().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ExportServersToExcelFile().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ReportServersActivity().Return(emptySuccessHandler).AnyTimes()

	SetUpServerRoutes(r, mockHandler)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Get Servers Route",
			method:         http.MethodGet,
			path:           "/api/servers/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Create Server Route",
			method:         http.MethodPost,
			path:           "/api/servers/add",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Server By Id Route",
			method:         http.MethodGet,
			path:           "/api/servers/12",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update Server Route",
			method:         http.MethodPut,
			path:           "/api/servers/12",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Partial Update Server Route",
			method:         http.MethodPatch,
			path:           "/api/servers/12",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Delete Server Route",
			method:         http.MethodDelete,
			path:           "/api/servers/12",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Servers Status Route",
			method:         http.MethodGet,
			path:           "/api/servers/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Export Servers Route",
			method:         http.MethodGet,
			path:           "/api/servers/export",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Report Servers Route",
			method:         http.MethodPost,
			path:           "/api/servers/reports",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
