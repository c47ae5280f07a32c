package repository

import (
	"context"
	"errors"
	"fmt"

	"workorder_rollup/internal/adapter/persistence/dynamoattr"
	"workorder_rollup/internal/domain/entities"
	"workorder_rollup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultWorkOrdersTableName = "work_orders"

// workOrderAPI is the subset of the DynamoDB client used for work orders.
type workOrderAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type workOrderItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name,omitempty"`
}

// WorkOrderDynamoRepository persists work order rollups in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Rollups are written with UpdateItem so attributes outside the written triad are
// never touched. The work order must already exist.
type WorkOrderDynamoRepository struct {
	ddb       workOrderAPI
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb workOrderAPI) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) ApplyRollup(ctx context.Context, workOrderID string, kind entities.LineKind, totals entities.RollupTotals) error {
	desc, ok := kind.Descriptor()
	if !ok {
		return fmt.Errorf("unknown line kind %q", kind)
	}

	return r.update(ctx, workOrderID, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #cost = :cost, #price = :price, #upsold = :upsold"
		vals := map[string]types.AttributeValue{
			":cost":   dynamoattr.Number(totals.TotalCost),
			":price":  dynamoattr.Number(totals.TotalPrice),
			":upsold": dynamoattr.Number(totals.UpsoldTotal),
		}
		names := map[string]string{
			"#cost":   desc.Rollup.TotalCost,
			"#price":  desc.Rollup.TotalPrice,
			"#upsold": desc.Rollup.UpsoldTotal,
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) error {
	updateExpr, values, names := build()

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueNone,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("%w: id=%s", interfaces.ErrWorkOrderNotFound, id)
		}
		return err
	}
	return nil
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
	wo := entities.WorkOrder{ID: it.ID, Name: it.Name}
	wo.Services = readTotals(out.Item, entities.LineKindService)
	wo.Products = readTotals(out.Item, entities.LineKindProduct)
	return wo, nil
}

func readTotals(item map[string]types.AttributeValue, kind entities.LineKind) entities.RollupTotals {
	desc, _ := kind.Descriptor()
	return entities.RollupTotals{
		TotalCost:   dynamoattr.Decimal(item, desc.Rollup.TotalCost).OrElse(decimal.Zero),
		TotalPrice:  dynamoattr.Decimal(item, desc.Rollup.TotalPrice).OrElse(decimal.Zero),
		UpsoldTotal: dynamoattr.Decimal(item, desc.Rollup.UpsoldTotal).OrElse(decimal.Zero),
	}
}
