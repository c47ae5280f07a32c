package stream

import (
	"time"

	"workorder_rollup/internal/adapter/persistence/dynamoattr"
	"workorder_rollup/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

// MapRecord turns a stream record of a line table into a change notification.
//
// INSERT and MODIFY carry the post-image, REMOVE carries the pre-image. Records without the
// needed image (KEYS_ONLY view, for instance) are not mapped.
func MapRecord(kind entities.LineKind, rec types.Record) (entities.ChangeEvent, bool) {
	desc, ok := kind.Descriptor()
	if !ok || rec.Dynamodb == nil {
		return entities.ChangeEvent{}, false
	}

	var (
		op    entities.ChangeOperation
		image map[string]types.AttributeValue
	)
	switch rec.EventName {
	case types.OperationTypeInsert:
		op, image = entities.ChangeOperationCreate, rec.Dynamodb.NewImage
	case types.OperationTypeModify:
		op, image = entities.ChangeOperationUpdate, rec.Dynamodb.NewImage
	case types.OperationTypeRemove:
		op, image = entities.ChangeOperationDelete, rec.Dynamodb.OldImage
	default:
		return entities.ChangeEvent{}, false
	}
	if image == nil {
		return entities.ChangeEvent{}, false
	}

	item, err := attributevalue.FromDynamoDBStreamsMap(image)
	if err != nil {
		return entities.ChangeEvent{}, false
	}

	occurredAt := time.Now().UTC()
	if rec.Dynamodb.ApproximateCreationDateTime != nil {
		occurredAt = rec.Dynamodb.ApproximateCreationDateTime.UTC()
	}

	return entities.ChangeEvent{
		ID:         aws.ToString(rec.EventID),
		Entity:     desc.EntityName,
		Operation:  op,
		Snapshot:   dynamoattr.LineSnapshot(item, kind),
		OccurredAt: occurredAt,
	}, true
}
