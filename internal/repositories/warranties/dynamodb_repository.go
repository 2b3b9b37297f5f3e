package warranties

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/models"
)

const (
	attrTransactionID = "transactionID"
	attrProductNumber = "productNumber"
	attrObjectURL     = "objectUrl"
)

// DynamoAPI is the subset of *dynamodb.Client used here.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type DynamoDBRepository struct {
	client DynamoAPI
	table  string
}

func NewDynamoDBRepository(client DynamoAPI, table string) *DynamoDBRepository {
	return &DynamoDBRepository{client: client, table: table}
}

func compositeKey(transactionID, productNumber string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrTransactionID: &types.AttributeValueMemberS{Value: transactionID},
		attrProductNumber: &types.AttributeValueMemberS{Value: productNumber},
	}
}

func (r *DynamoDBRepository) Create(ctx context.Context, rec *models.WarrantyRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	cond, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(attrTransactionID))).
		Build()
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     item,
		ConditionExpression:      cond.Condition(),
		ExpressionAttributeNames: cond.Names(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("put record: %w", err)
	}
	return nil
}

func (r *DynamoDBRepository) Get(ctx context.Context, transactionID, productNumber string) (*models.WarrantyRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       compositeKey(transactionID, productNumber),
	})
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, common.ErrNotFound
	}

	var rec models.WarrantyRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &rec, nil
}

// SetObjectURL is a targeted update conditional on the item existing, so it
// neither clobbers intake fields nor creates a stray item.
func (r *DynamoDBRepository) SetObjectURL(ctx context.Context, transactionID, productNumber, url string) error {
	expr, err := expression.NewBuilder().
		WithUpdate(expression.Set(expression.Name(attrObjectURL), expression.Value(url))).
		WithCondition(expression.AttributeExists(expression.Name(attrTransactionID))).
		Build()
	if err != nil {
		return err
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       compositeKey(transactionID, productNumber),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return common.ErrNotFound
		}
		return fmt.Errorf("update objectUrl: %w", err)
	}
	return nil
}
