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

const defaultWorkOrdersTableName = "work_orders"

type checklistEntryItem struct {
	Text string `dynamodbav:"text"`
	Done bool   `dynamodbav:"done"`
}

type workOrderItem struct {
	ID            string                        `dynamodbav:"id"`
	Title         string                        `dynamodbav:"title"`
	Status        string                        `dynamodbav:"status"`
	ArchitectID   string                        `dynamodbav:"architect_id,omitempty"`
	Checklist     map[string]checklistEntryItem `dynamodbav:"checklist"`
	ChecklistJSON string                        `dynamodbav:"checklist_json"`
	CreatedAt     string                        `dynamodbav:"created_at"`
	UpdatedAt     string                        `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The checklist lives in two attributes: the canonical map and the
// checklist_json snapshot. UpdateChecklist rewrites both in one UpdateItem so
// a reader can never observe them out of sync.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder, snapshot string) (entities.WorkOrder, error) {
	it := toWorkOrderItem(wo, snapshot)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) UpdateChecklist(ctx context.Context, id string, checklist entities.Checklist, snapshot string) (entities.WorkOrder, error) {
	checklistAV, err := attributevalue.Marshal(toChecklistItems(checklist))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #checklist = :checklist, #checklist_json = :checklist_json, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":checklist":      checklistAV,
			":checklist_json": &types.AttributeValueMemberS{Value: snapshot},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#checklist":      "checklist",
			"#checklist_json": "checklist_json",
			"#updated_at":     "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func toWorkOrderItem(wo entities.WorkOrder, snapshot string) workOrderItem {
	return workOrderItem{
		ID:            wo.ID,
		Title:         wo.Title,
		Status:        string(wo.Status),
		ArchitectID:   wo.ArchitectID,
		Checklist:     toChecklistItems(wo.Checklist),
		ChecklistJSON: snapshot,
		CreatedAt:     wo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     wo.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	cl := make(entities.Checklist, len(it.Checklist))
	for k, v := range it.Checklist {
		cl[k] = entities.ChecklistItem{Text: v.Text, Done: v.Done}
	}
	return entities.WorkOrder{
		ID:          it.ID,
		Title:       it.Title,
		Status:      entities.WorkOrderStatus(it.Status),
		ArchitectID: it.ArchitectID,
		Checklist:   cl,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func toChecklistItems(cl entities.Checklist) map[string]checklistEntryItem {
	out := make(map[string]checklistEntryItem, len(cl))
	for k, v := range cl {
		out[k] = checklistEntryItem{Text: v.Text, Done: v.Done}
	}
	return out
}
