package repository

import (
	"context"
	"errors"
	"testing"

	"workorder_rollup/internal/domain/entities"
	"workorder_rollup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkOrderClient struct {
	updates   []*dynamodb.UpdateItemInput
	updateErr error
	item      map[string]types.AttributeValue
	getErr    error
}

func (f *fakeWorkOrderClient) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeWorkOrderClient) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func TestWorkOrderDynamoRepository_ApplyRollup(t *testing.T) {
	totals := entities.RollupTotals{
		TotalCost:   decimal.NewFromInt(50),
		TotalPrice:  decimal.NewFromInt(150),
		UpsoldTotal: decimal.RequireFromString("50.25"),
	}

	t.Run("service rollup writes only the service triad", func(t *testing.T) {
		client := &fakeWorkOrderClient{}
		repo := NewWorkOrderDynamoRepository(client)

		require.NoError(t, repo.ApplyRollup(context.Background(), "W1", entities.LineKindService, totals))
		require.Len(t, client.updates, 1)
		in := client.updates[0]

		assert.Equal(t, "work_orders", aws.ToString(in.TableName))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "W1"}, in.Key["id"])
		assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))

		written := map[string]bool{}
		for placeholder, attr := range in.ExpressionAttributeNames {
			if placeholder != "#id" {
				written[attr] = true
			}
		}
		assert.Equal(t, map[string]bool{
			"service_total_cost":    true,
			"service_total_price":   true,
			"upsold_services_total": true,
		}, written)

		assert.Equal(t, &types.AttributeValueMemberN{Value: "150"}, in.ExpressionAttributeValues[":price"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "50"}, in.ExpressionAttributeValues[":cost"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "50.25"}, in.ExpressionAttributeValues[":upsold"])
	})

	t.Run("product rollup writes only the product triad", func(t *testing.T) {
		client := &fakeWorkOrderClient{}
		repo := NewWorkOrderDynamoRepository(client)

		require.NoError(t, repo.ApplyRollup(context.Background(), "W1", entities.LineKindProduct, entities.RollupTotals{}))
		in := client.updates[0]
		assert.Equal(t, "product_total_cost", in.ExpressionAttributeNames["#cost"])
		assert.Equal(t, "product_total_price", in.ExpressionAttributeNames["#price"])
		assert.Equal(t, "upsold_products_total", in.ExpressionAttributeNames["#upsold"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "0"}, in.ExpressionAttributeValues[":upsold"])
	})

	t.Run("missing work order", func(t *testing.T) {
		client := &fakeWorkOrderClient{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}}
		repo := NewWorkOrderDynamoRepository(client)

		err := repo.ApplyRollup(context.Background(), "W404", entities.LineKindService, totals)
		assert.True(t, errors.Is(err, interfaces.ErrWorkOrderNotFound), "got %v", err)
	})

	t.Run("store error is returned as is", func(t *testing.T) {
		storeErr := errors.New("validation")
		repo := NewWorkOrderDynamoRepository(&fakeWorkOrderClient{updateErr: storeErr})

		err := repo.ApplyRollup(context.Background(), "W1", entities.LineKindService, totals)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestWorkOrderDynamoRepository_GetByID(t *testing.T) {
	t.Run("not found returns empty", func(t *testing.T) {
		repo := NewWorkOrderDynamoRepository(&fakeWorkOrderClient{})
		wo, err := repo.GetByID(context.Background(), "W1")
		require.NoError(t, err)
		assert.Empty(t, wo.ID)
	})

	t.Run("reads both triads", func(t *testing.T) {
		repo := NewWorkOrderDynamoRepository(&fakeWorkOrderClient{item: map[string]types.AttributeValue{
			"id":                  &types.AttributeValueMemberS{Value: "W1"},
			"name":                &types.AttributeValueMemberS{Value: "Brake job"},
			"service_total_price": &types.AttributeValueMemberN{Value: "150"},
			"service_total_cost":  &types.AttributeValueMemberN{Value: "50"},
			"product_total_price": &types.AttributeValueMemberN{Value: "12.5"},
		}})

		wo, err := repo.GetByID(context.Background(), "W1")
		require.NoError(t, err)
		assert.Equal(t, "W1", wo.ID)
		assert.Equal(t, "Brake job", wo.Name)
		assert.True(t, wo.Services.TotalPrice.Equal(decimal.NewFromInt(150)))
		assert.True(t, wo.Services.UpsoldTotal.IsZero())
		assert.True(t, wo.Products.TotalPrice.Equal(decimal.RequireFromString("12.5")))
	})
}
