package dynamoattr

import (
	"testing"

	"workorder_rollup/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	item := Item{
		"amount": &types.AttributeValueMemberN{Value: "12.50"},
		"text":   &types.AttributeValueMemberS{Value: " 3 "},
		"null":   &types.AttributeValueMemberNULL{Value: true},
		"bad":    &types.AttributeValueMemberS{Value: "twelve"},
		"bool":   &types.AttributeValueMemberBOOL{Value: true},
	}

	v, ok := Decimal(item, "amount").Get()
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.RequireFromString("12.5")))

	v, ok = Decimal(item, "text").Get()
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(3)))

	assert.True(t, Decimal(item, "null").IsNull())
	assert.True(t, Decimal(item, "bad").IsNull())
	assert.True(t, Decimal(item, "bool").IsNull())
	assert.False(t, Decimal(item, "missing").Present())
}

func TestStatus(t *testing.T) {
	item := Item{
		"code": &types.AttributeValueMemberN{Value: "690970001"},
		"name": &types.AttributeValueMemberS{Value: "Completed"},
		"odd":  &types.AttributeValueMemberS{Value: "archived"},
		"null": &types.AttributeValueMemberNULL{Value: true},
	}

	assert.Equal(t, entities.LineStatusUsed, Status(item, "code").OrElse(""))
	assert.Equal(t, entities.LineStatusCompleted, Status(item, "name").OrElse(""))

	odd, ok := Status(item, "odd").Get()
	assert.True(t, ok)
	assert.False(t, odd.Valid())

	assert.True(t, Status(item, "null").IsNull())
	assert.False(t, Status(item, "missing").Present())
}

func TestLine_UsesKindSpecificUpsoldFlag(t *testing.T) {
	item := Item{
		"id":                &types.AttributeValueMemberS{Value: "l1"},
		"work_order_id":     &types.AttributeValueMemberS{Value: "W1"},
		"line_status":       &types.AttributeValueMemberS{Value: "used"},
		"state_code":        &types.AttributeValueMemberS{Value: "active"},
		"total_amount":      &types.AttributeValueMemberN{Value: "50"},
		"is_upsold_service": &types.AttributeValueMemberBOOL{Value: true},
		"is_upsold_product": &types.AttributeValueMemberBOOL{Value: false},
	}

	svc := Line(item, entities.LineKindService)
	assert.Equal(t, "l1", svc.ID)
	assert.Equal(t, "W1", svc.WorkOrderID)
	assert.Equal(t, entities.RecordStateActive, svc.State)
	assert.True(t, svc.Upsold)
	assert.False(t, svc.TotalCost.Present())

	prd := Line(item, entities.LineKindProduct)
	assert.False(t, prd.Upsold)
}

func TestString_And_Bool(t *testing.T) {
	item := Item{
		"ref":    &types.AttributeValueMemberS{Value: "W1"},
		"num":    &types.AttributeValueMemberN{Value: "42"},
		"null":   &types.AttributeValueMemberNULL{Value: true},
		"flag":   &types.AttributeValueMemberBOOL{Value: true},
		"list":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		"strflg": &types.AttributeValueMemberS{Value: "true"},
	}

	assert.Equal(t, "W1", String(item, "ref").OrElse(""))
	assert.Equal(t, "42", String(item, "num").OrElse(""))
	assert.True(t, String(item, "null").IsNull())
	assert.True(t, String(item, "flag").IsNull())
	assert.True(t, String(item, "list").IsNull())
	assert.False(t, String(item, "missing").Present())

	assert.Equal(t, true, Bool(item, "flag").OrElse(false))
	assert.True(t, Bool(item, "null").IsNull())
	assert.True(t, Bool(item, "strflg").IsNull())
	assert.False(t, Bool(item, "missing").Present())
}
