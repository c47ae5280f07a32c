package repository

import (
	"context"
	"fmt"
	"strings"

	"workorder_rollup/internal/adapter/persistence/dynamoattr"
	"workorder_rollup/internal/domain/entities"
	"workorder_rollup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceLinesTableName = "work_order_services"
	defaultProductLinesTableName = "work_order_products"
	defaultLinesWorkOrderIndex   = "work_order_id-index"
)

// LineDynamoRepository reads service and product lines from DynamoDB.
//
// Table requirements (one table per line kind):
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
//
// The active-record filter is applied server side; it is a coarse pre-filter only and
// says nothing about line status.
type LineDynamoRepository struct {
	ddb    dynamodb.QueryAPIClient
	tables map[entities.LineKind]string
	index  string
}

var _ interfaces.ILineRepository = (*LineDynamoRepository)(nil)

func NewLineDynamoRepository(ddb dynamodb.QueryAPIClient) *LineDynamoRepository {
	return &LineDynamoRepository{
		ddb: ddb,
		tables: map[entities.LineKind]string{
			entities.LineKindService: getenvDefault("SERVICE_LINES_TABLE", defaultServiceLinesTableName),
			entities.LineKindProduct: getenvDefault("PRODUCT_LINES_TABLE", defaultProductLinesTableName),
		},
		index: getenvDefault("LINES_WORK_ORDER_INDEX", defaultLinesWorkOrderIndex),
	}
}

func (r *LineDynamoRepository) ListActiveByWorkOrder(ctx context.Context, kind entities.LineKind, workOrderID string) ([]entities.Line, error) {
	desc, ok := kind.Descriptor()
	if !ok {
		return nil, fmt.Errorf("unknown line kind %q", kind)
	}

	names, byAttr := placeholders(desc.Projection())
	projection := make([]string, 0, len(byAttr))
	for _, attr := range desc.Projection() {
		projection = append(projection, byAttr[attr])
	}

	input := &dynamodb.QueryInput{
		TableName:                aws.String(r.tables[kind]),
		IndexName:                aws.String(r.index),
		KeyConditionExpression:   aws.String(byAttr[entities.AttrWorkOrderID] + " = :wo"),
		FilterExpression:         aws.String(byAttr[entities.AttrRecordState] + " = :active"),
		ProjectionExpression:     aws.String(strings.Join(projection, ", ")),
		ExpressionAttributeNames: names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wo":     &types.AttributeValueMemberS{Value: workOrderID},
			":active": &types.AttributeValueMemberS{Value: string(entities.RecordStateActive)},
		},
	}

	lines := make([]entities.Line, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			lines = append(lines, dynamoattr.Line(raw, kind))
		}
	}
	return lines, nil
}
