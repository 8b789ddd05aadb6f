package repository

import (
	"context"
	"errors"
	"time"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTicketsTableName = "tickets"

type ticketItem struct {
	ID            string `dynamodbav:"id"`
	Title         string `dynamodbav:"title"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	ScheduledDate string `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime string `dynamodbav:"scheduled_time,omitempty"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) List(ctx context.Context) ([]entities.Ticket, error) {
	var out []entities.Ticket
	var startKey map[string]types.AttributeValue
	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []ticketItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromTicketItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Ticket{}, nil
	}
	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func fromTicketItem(it ticketItem) entities.Ticket {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	t := entities.Ticket{
		ID:        it.ID,
		Title:     it.Title,
		Status:    entities.TicketStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.ScheduledDate != "" {
		if d, err := time.Parse(time.RFC3339Nano, it.ScheduledDate); err == nil {
			t.ScheduledDate = &d
		}
	}
	if it.ScheduledTime != "" {
		if h, err := time.Parse(time.RFC3339Nano, it.ScheduledTime); err == nil {
			t.ScheduledTime = &h
		}
	}
	return t
}
