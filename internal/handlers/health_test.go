package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatusChecker struct {
	status string
	err    error
}

func (f *fakeStatusChecker) EndpointStatus(context.Context) (string, error) {
	return f.status, f.err
}

func (f *fakeStatusChecker) EndpointName() string { return "income-model" }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		checker        EndpointStatusChecker
		statusCode     int
		status         string
		endpointStatus string
	}{
		{"in service", &fakeStatusChecker{status: "InService"}, http.StatusOK, "healthy", "InService"},
		{"updating", &fakeStatusChecker{status: "Updating"}, http.StatusServiceUnavailable, "degraded", "Updating"},
		{"describe fails", &fakeStatusChecker{err: errors.New("access denied")}, http.StatusServiceUnavailable, "degraded", "unreachable"},
		{"no checker", nil, http.StatusOK, "healthy", "not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandlerWithChecker(tt.checker, "test", "1.2.3")

			resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, resp.StatusCode)

			var body HealthResponse
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.endpointStatus, body.EndpointStatus)
			assert.Equal(t, "income-eligibility", body.Service)
			assert.Equal(t, "test", body.Stage)
			assert.Equal(t, "1.2.3", body.Version)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}
