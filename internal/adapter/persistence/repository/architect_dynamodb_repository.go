package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultArchitectsTableName = "architects"

type architectItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Discount  float64 `dynamodbav:"discount"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// ArchitectDynamoRepository persists Architect entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ArchitectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IArchitectRepository = (*ArchitectDynamoRepository)(nil)

func NewArchitectDynamoRepository(ddb *dynamodb.Client) *ArchitectDynamoRepository {
	return &ArchitectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ARCHITECTS_TABLE", defaultArchitectsTableName),
	}
}

func (r *ArchitectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Architect, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Architect{}, err
	}
	if len(out.Item) == 0 {
		return entities.Architect{}, nil
	}

	var it architectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Architect{}, err
	}
	return fromArchitectItem(it), nil
}

func (r *ArchitectDynamoRepository) UpdateDiscount(ctx context.Context, id string, newValue float64) (entities.Architect, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #discount = :discount, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":discount":   &types.AttributeValueMemberN{Value: strconv.FormatFloat(newValue, 'f', -1, 64)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#discount":   "discount",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Architect{}, nil
		}
		return entities.Architect{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Architect{}, nil
	}
	var it architectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Architect{}, err
	}
	return fromArchitectItem(it), nil
}

func fromArchitectItem(it architectItem) entities.Architect {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Architect{
		ID:        it.ID,
		Name:      it.Name,
		Discount:  it.Discount,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
