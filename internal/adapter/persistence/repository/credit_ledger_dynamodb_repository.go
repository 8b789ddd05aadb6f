package repository

import (
	"context"
	"errors"
	"time"

	"studio_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDiscountCreditsTableName = "discount_credits"

// CreditLedgerDynamoRepository records one row per credited work order.
//
// Table requirements:
//   - PK: work_order_id (string)
//
// The conditional put is what makes accrual idempotent across retries,
// duplicate deliveries and process restarts: the second put for the same
// work order fails its condition and reports "already credited".

type CreditLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditLedger = (*CreditLedgerDynamoRepository)(nil)

func NewCreditLedgerDynamoRepository(ddb *dynamodb.Client) *CreditLedgerDynamoRepository {
	return &CreditLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISCOUNT_CREDITS_TABLE", defaultDiscountCreditsTableName),
	}
}

func (r *CreditLedgerDynamoRepository) Credit(ctx context.Context, workOrderID string) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"work_order_id": &types.AttributeValueMemberS{Value: workOrderID},
			"credited_at":   &types.AttributeValueMemberS{Value: now},
		},
		ConditionExpression: aws.String("attribute_not_exists(#work_order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#work_order_id": "work_order_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
