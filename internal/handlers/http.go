package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const allowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"

func corsHeaders(origin, methods string) map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Headers": allowHeaders,
		"Access-Control-Allow-Methods": methods,
	}
}

type messageBody struct {
	Message       string `json:"message"`
	TransactionID string `json:"transactionID,omitempty"`
	ProductNumber string `json:"productNumber,omitempty"`
}

func jsonResponse(status int, headers map[string]string, body any) events.APIGatewayProxyResponse {
	b, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		b = []byte(`{"message":"internal error"}`)
	}

	h := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		h[k] = v
	}

	return events.APIGatewayProxyResponse{StatusCode: status, Headers: h, Body: string(b)}
}

// header looks a request header up case-insensitively; API Gateway passes
// them through as the client sent them.
func header(req events.APIGatewayProxyRequest, name string) string {
	if v, ok := req.Headers[name]; ok {
		return v
	}
	canonical := http.CanonicalHeaderKey(name)
	for k, v := range req.Headers {
		if http.CanonicalHeaderKey(k) == canonical {
			return v
		}
	}
	return ""
}
