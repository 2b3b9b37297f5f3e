package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
)

type DownloadLinker interface {
	DownloadURL(ctx context.Context, transactionID, productNumber string) (string, error)
}

// RetrieveHandler redirects a certificate link to a short-lived signed URL.
type RetrieveHandler struct {
	linker        DownloadLinker
	allowedOrigin string
	logger        logging.Logger
}

func NewRetrieveHandler(l DownloadLinker, allowedOrigin string, logger logging.Logger) *RetrieveHandler {
	return &RetrieveHandler{linker: l, allowedOrigin: allowedOrigin, logger: logger}
}

func (h *RetrieveHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	transactionID := req.QueryStringParameters["transactionID"]
	productNumber := req.QueryStringParameters["productNumber"]

	url, err := h.linker.DownloadURL(ctx, transactionID, productNumber)
	switch {
	case errors.Is(err, common.ErrValidation):
		return jsonResponse(http.StatusBadRequest, nil, messageBody{Message: "TransactionIDとProductNumberの取得に失敗しました。"}), nil
	case errors.Is(err, common.ErrNotFound):
		return jsonResponse(http.StatusNotFound, nil, messageBody{Message: "オブジェクトURLが確認できませんでした。"}), nil
	case errors.Is(err, common.ErrPresign):
		return jsonResponse(http.StatusInternalServerError, nil, messageBody{Message: "署名付きURLの生成に失敗しました。"}), nil
	case err != nil:
		return jsonResponse(http.StatusInternalServerError, nil, messageBody{Message: "DynamoDBからデータを取得できませんでした。"}), nil
	}

	headers := corsHeaders(h.allowedOrigin, "GET,OPTIONS")
	headers["Cache-Control"] = "no-cache, no-store, must-revalidate"
	headers["Pragma"] = "no-cache"
	headers["Expires"] = "0"
	headers["Location"] = url

	h.logger.Debug(ctx, "redirecting to signed url", common.LogKeyTransactionID, transactionID)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusMovedPermanently, Headers: headers}, nil
}
