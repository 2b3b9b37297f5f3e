package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/models"
	"github.com/dmitrijs2005/warrantycert/internal/services"
)

type Registrar interface {
	Register(ctx context.Context, reg services.Registration, meta services.RequestMeta) (*models.WarrantyRecord, error)
}

// IntakeHandler accepts the registration form posted through API Gateway.
type IntakeHandler struct {
	registrar     Registrar
	allowedOrigin string
	logger        logging.Logger
}

func NewIntakeHandler(r Registrar, allowedOrigin string, logger logging.Logger) *IntakeHandler {
	return &IntakeHandler{registrar: r, allowedOrigin: allowedOrigin, logger: logger}
}

func (h *IntakeHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	cors := corsHeaders(h.allowedOrigin, "OPTIONS,POST")

	var reg services.Registration
	if err := json.Unmarshal([]byte(req.Body), &reg); err != nil {
		h.logger.Warn(ctx, "malformed registration body", "error", err)
		return jsonResponse(http.StatusBadRequest, cors, messageBody{Message: "リクエストの形式が正しくありません。"}), nil
	}

	meta := services.RequestMeta{
		UserAgent: header(req, "User-Agent"),
		SourceIP:  req.RequestContext.Identity.SourceIP,
	}

	rec, err := h.registrar.Register(ctx, reg, meta)
	switch {
	case errors.Is(err, common.ErrValidation):
		h.logger.Warn(ctx, "registration rejected", "error", err)
		return jsonResponse(http.StatusBadRequest, cors, messageBody{Message: "入力内容に誤りがあります。"}), nil
	case err != nil:
		return jsonResponse(http.StatusInternalServerError, cors, messageBody{Message: "データの登録に失敗しました。"}), nil
	}

	return jsonResponse(http.StatusOK, cors, messageBody{
		Message:       "データが正常に登録されました。",
		TransactionID: rec.TransactionID,
		ProductNumber: rec.ProductNumber,
	}), nil
}
