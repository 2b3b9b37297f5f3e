// Package handlers adapts Lambda trigger payloads to the warranty services.
//
// Stream handlers return an error so the whole batch is retried by the
// event source; HTTP handlers always answer with a status code instead.
package handlers

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/models"
)

// ChangesFromEvent converts a stream batch into domain changes, keeping
// batch order.
func ChangesFromEvent(e events.DynamoDBEvent) ([]models.Change, error) {
	changes := make([]models.Change, 0, len(e.Records))
	for i, r := range e.Records {
		old, err := imageToRecord(r.Change.OldImage)
		if err != nil {
			return nil, fmt.Errorf("record %d old image: %w", i, err)
		}
		cur, err := imageToRecord(r.Change.NewImage)
		if err != nil {
			return nil, fmt.Errorf("record %d new image: %w", i, err)
		}
		changes = append(changes, models.Change{Kind: r.EventName, OldImage: old, NewImage: cur})
	}
	return changes, nil
}

func imageToRecord(image map[string]events.DynamoDBAttributeValue) (*models.WarrantyRecord, error) {
	if len(image) == 0 {
		return nil, nil
	}

	item := make(map[string]types.AttributeValue, len(image))
	for k, v := range image {
		item[k] = toAttributeValue(v)
	}

	var rec models.WarrantyRecord
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidRecord, err)
	}
	return &rec, nil
}

// toAttributeValue maps the stream's attribute representation onto the SDK
// one so the record can be decoded with its dynamodbav tags.
func toAttributeValue(v events.DynamoDBAttributeValue) types.AttributeValue {
	switch v.DataType() {
	case events.DataTypeString:
		return &types.AttributeValueMemberS{Value: v.String()}
	case events.DataTypeNumber:
		return &types.AttributeValueMemberN{Value: v.Number()}
	case events.DataTypeBoolean:
		return &types.AttributeValueMemberBOOL{Value: v.Boolean()}
	case events.DataTypeBinary:
		return &types.AttributeValueMemberB{Value: v.Binary()}
	case events.DataTypeStringSet:
		return &types.AttributeValueMemberSS{Value: v.StringSet()}
	case events.DataTypeNumberSet:
		return &types.AttributeValueMemberNS{Value: v.NumberSet()}
	case events.DataTypeBinarySet:
		return &types.AttributeValueMemberBS{Value: v.BinarySet()}
	case events.DataTypeList:
		list := v.List()
		out := make([]types.AttributeValue, len(list))
		for i, e := range list {
			out[i] = toAttributeValue(e)
		}
		return &types.AttributeValueMemberL{Value: out}
	case events.DataTypeMap:
		m := v.Map()
		out := make(map[string]types.AttributeValue, len(m))
		for k, e := range m {
			out[k] = toAttributeValue(e)
		}
		return &types.AttributeValueMemberM{Value: out}
	default:
		return &types.AttributeValueMemberNULL{Value: true}
	}
}

type ChangeProcessor interface {
	HandleChanges(ctx context.Context, changes []models.Change) error
}

type ChangeCounter interface {
	HandleChanges(ctx context.Context, changes []models.Change) (int, error)
}

// GenerateHandler feeds stream batches to the certificate generator.
type GenerateHandler struct {
	processor ChangeProcessor
	logger    logging.Logger
}

func NewGenerateHandler(p ChangeProcessor, logger logging.Logger) *GenerateHandler {
	return &GenerateHandler{processor: p, logger: logger}
}

func (h *GenerateHandler) Handle(ctx context.Context, e events.DynamoDBEvent) error {
	changes, err := ChangesFromEvent(e)
	if err != nil {
		h.logger.Error(ctx, "stream decode failed", "error", err)
		return err
	}

	h.logger.Info(ctx, "stream batch received", "records", len(changes))
	return h.processor.HandleChanges(ctx, changes)
}

// CountingHandler serves the stream consumers that report how many
// changes they acted on.
type CountingHandler struct {
	name      string
	processor ChangeCounter
	logger    logging.Logger
}

func NewCountingHandler(name string, p ChangeCounter, logger logging.Logger) *CountingHandler {
	return &CountingHandler{name: name, processor: p, logger: logger}
}

func (h *CountingHandler) Handle(ctx context.Context, e events.DynamoDBEvent) error {
	changes, err := ChangesFromEvent(e)
	if err != nil {
		h.logger.Error(ctx, "stream decode failed", "consumer", h.name, "error", err)
		return err
	}

	n, err := h.processor.HandleChanges(ctx, changes)
	if err != nil {
		return fmt.Errorf("%s: %w", h.name, err)
	}

	h.logger.Info(ctx, "stream batch handled", "consumer", h.name, "records", len(changes), "handled", n)
	return nil
}
