package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"income-eligibility/internal/models"
)

func TestHTTPAdapter_Eligibility(t *testing.T) {
	scorer := &fakeScorer{score: 0.5}
	server := httptest.NewServer(HTTPAdapter(NewEligibilityHandlerWithScorer(scorer).Handle))
	defer server.Close()

	resp, err := http.Post(server.URL+"/", "application/x-www-form-urlencoded", strings.NewReader("age=34&income=52000"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var message string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&message))
	assert.Equal(t, string(models.VerdictEligible), message)
	assert.Equal(t, []string{"34.0,52000.0\r\n"}, scorer.rows)
}

func TestHTTPAdapter_PassesRequestDetails(t *testing.T) {
	var got events.APIGatewayProxyRequest
	handler := func(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		got = request
		return events.APIGatewayProxyResponse{StatusCode: http.StatusAccepted, Body: "ok"}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/score?debug=1", strings.NewReader("x=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	HTTPAdapter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, http.MethodPost, got.HTTPMethod)
	assert.Equal(t, "/score", got.Path)
	assert.Equal(t, "x=1", got.Body)
	assert.Equal(t, "1", got.QueryStringParameters["debug"])
	assert.Equal(t, "application/x-www-form-urlencoded", got.Headers["Content-Type"])
	assert.NotEmpty(t, got.RequestContext.RequestID)
}

func TestHTTPAdapter_HandlerError(t *testing.T) {
	handler := func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, errors.New("boom")
	}

	rec := httptest.NewRecorder()
	HTTPAdapter(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
