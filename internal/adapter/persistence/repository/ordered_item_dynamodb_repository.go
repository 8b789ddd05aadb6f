package repository

import (
	"context"
	"strconv"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrderedItemsTableName = "ordered_items"

type orderedItemItem struct {
	GroupKey   string `dynamodbav:"group_key"`
	ID         string `dynamodbav:"id"`
	Label      string `dynamodbav:"label"`
	OrderIndex int    `dynamodbav:"order_index"`
}

// OrderedItemDynamoRepository persists reorderable group members in DynamoDB.
//
// Table requirements:
//   - PK: group_key (string)
//   - SK: id (string)
//
// WriteOrderBatch issues one UpdateItem per member and aggregates per-id
// outcomes; there is no transactional commit. Writing the same (id, index)
// pair twice is a no-op at the storage level, which keeps retries safe.

type OrderedItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderedItemRepository = (*OrderedItemDynamoRepository)(nil)

func NewOrderedItemDynamoRepository(ddb *dynamodb.Client) *OrderedItemDynamoRepository {
	return &OrderedItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERED_ITEMS_TABLE", defaultOrderedItemsTableName),
	}
}

func (r *OrderedItemDynamoRepository) ReadGroup(ctx context.Context, groupKey string) ([]entities.OrderedItem, error) {
	var out []entities.OrderedItem
	var startKey map[string]types.AttributeValue
	for {
		res, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#group_key = :group_key"),
			ExpressionAttributeNames: map[string]string{
				"#group_key": "group_key",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":group_key": &types.AttributeValueMemberS{Value: groupKey},
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []orderedItemItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, entities.OrderedItem{
				ID:         it.ID,
				GroupKey:   it.GroupKey,
				Label:      it.Label,
				OrderIndex: it.OrderIndex,
			})
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *OrderedItemDynamoRepository) WriteOrderBatch(ctx context.Context, groupKey string, writes []entities.OrderWrite) ([]entities.OrderWriteOutcome, error) {
	outcomes := make([]entities.OrderWriteOutcome, 0, len(writes))
	for _, w := range writes {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"group_key": &types.AttributeValueMemberS{Value: groupKey},
				"id":        &types.AttributeValueMemberS{Value: w.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #order_index = :order_index"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":order_index": &types.AttributeValueMemberN{Value: strconv.Itoa(w.Index)},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":          "id",
				"#order_index": "order_index",
			},
		})
		outcomes = append(outcomes, entities.OrderWriteOutcome{
			ID:    w.ID,
			Index: w.Index,
			OK:    err == nil,
			Err:   err,
		})
	}
	return outcomes, nil
}
