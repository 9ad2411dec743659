package handlers

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"income-eligibility/internal/utils"
)

// maxLocalBodyBytes caps request bodies read by the local adapter.
const maxLocalBodyBytes = 1 << 20

// HTTPAdapter serves a Lambda proxy handler over plain net/http so the
// functions can run locally without API Gateway.
func HTTPAdapter(h ProxyHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLocalBodyBytes))
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusRequestEntityTooLarge)
			return
		}

		request := toProxyRequest(r, body)
		response, err := h(r.Context(), request)
		if err != nil {
			utils.RequestLogger(request.RequestContext.RequestID).Error("Handler returned error", utils.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		writeProxyResponse(w, response)
	})
}

// toProxyRequest builds the proxy event API Gateway would have sent for r.
func toProxyRequest(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	query := r.URL.Query()
	params := make(map[string]string, len(query))
	for k, v := range query {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	id := uuid.New().String()
	return events.APIGatewayProxyRequest{
		Resource:                        r.URL.Path,
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               r.Header,
		QueryStringParameters:           params,
		MultiValueQueryStringParameters: query,
		Body:                            string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  id,
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Stage:      "local",
		},
	}
}

func writeProxyResponse(w http.ResponseWriter, response events.APIGatewayProxyResponse) {
	for k, v := range response.Headers {
		w.Header().Set(k, v)
	}
	for k, values := range response.MultiValueHeaders {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}

	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	body := []byte(response.Body)
	if response.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(response.Body)
		if err != nil {
			http.Error(w, "invalid base64 response body", http.StatusInternalServerError)
			return
		}
		body = decoded
	}

	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
