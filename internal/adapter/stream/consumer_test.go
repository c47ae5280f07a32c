package stream

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"workorder_rollup/internal/domain/entities"
	"workorder_rollup/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShard struct {
	id      string
	records []types.Record
	closed  bool
}

// fakeStreams serves iterators of the form "<shard>:<offset>".
type fakeStreams struct {
	shards       []*fakeShard
	describeErr  error
	expireNext   bool
	iteratorReqs []*dynamodbstreams.GetShardIteratorInput
}

func (f *fakeStreams) shard(id string) *fakeShard {
	for _, s := range f.shards {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (f *fakeStreams) DescribeStream(_ context.Context, _ *dynamodbstreams.DescribeStreamInput, _ ...func(*dynamodbstreams.Options)) (*dynamodbstreams.DescribeStreamOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	desc := &types.StreamDescription{}
	for _, s := range f.shards {
		desc.Shards = append(desc.Shards, types.Shard{ShardId: aws.String(s.id)})
	}
	return &dynamodbstreams.DescribeStreamOutput{StreamDescription: desc}, nil
}

func (f *fakeStreams) GetShardIterator(_ context.Context, in *dynamodbstreams.GetShardIteratorInput, _ ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetShardIteratorOutput, error) {
	f.iteratorReqs = append(f.iteratorReqs, in)
	s := f.shard(aws.ToString(in.ShardId))
	if s == nil {
		return nil, &types.ResourceNotFoundException{Message: aws.String("no shard")}
	}

	offset := 0
	switch in.ShardIteratorType {
	case types.ShardIteratorTypeLatest:
		offset = len(s.records)
	case types.ShardIteratorTypeAtSequenceNumber, types.ShardIteratorTypeAfterSequenceNumber:
		for i, r := range s.records {
			if aws.ToString(r.Dynamodb.SequenceNumber) == aws.ToString(in.SequenceNumber) {
				offset = i
				if in.ShardIteratorType == types.ShardIteratorTypeAfterSequenceNumber {
					offset++
				}
			}
		}
	}
	return &dynamodbstreams.GetShardIteratorOutput{ShardIterator: aws.String(fmt.Sprintf("%s:%d", s.id, offset))}, nil
}

func (f *fakeStreams) GetRecords(_ context.Context, in *dynamodbstreams.GetRecordsInput, _ ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetRecordsOutput, error) {
	if f.expireNext {
		f.expireNext = false
		return nil, &types.ExpiredIteratorException{Message: aws.String("expired")}
	}
	shardID, rawOffset, _ := strings.Cut(aws.ToString(in.ShardIterator), ":")
	offset, _ := strconv.Atoi(rawOffset)
	s := f.shard(shardID)

	end := offset + int(aws.ToInt32(in.Limit))
	if end > len(s.records) {
		end = len(s.records)
	}
	out := &dynamodbstreams.GetRecordsOutput{Records: s.records[offset:end]}
	if !(s.closed && end == len(s.records)) {
		out.NextShardIterator = aws.String(fmt.Sprintf("%s:%d", s.id, end))
	}
	return out, nil
}

type fakeHandler struct {
	seen   []string
	failOn map[string]int
}

func (h *fakeHandler) HandleChange(_ context.Context, ev entities.ChangeEvent) (usecase.RollupResult, error) {
	h.seen = append(h.seen, ev.ID)
	if h.failOn[ev.ID] > 0 {
		h.failOn[ev.ID]--
		return usecase.RollupResult{}, usecase.ErrWorkOrderWriteFailed
	}
	return usecase.RollupResult{Qualified: true, WorkOrderID: "W1", Kind: entities.LineKindService}, nil
}

func record(id, seq string) types.Record {
	return types.Record{
		EventID:   aws.String(id),
		EventName: types.OperationTypeModify,
		Dynamodb: &types.StreamRecord{
			SequenceNumber: aws.String(seq),
			NewImage:       serviceImage("used", "10"),
		},
	}
}

func newTestConsumer(api StreamsAPI, h ChangeHandler, start types.ShardIteratorType) *Consumer {
	return NewConsumer(api, h, Config{
		Sources:       []Source{{Kind: entities.LineKindService, StreamArn: "arn:services"}},
		BatchSize:     10,
		StartPosition: start,
	}, nil)
}

func TestConsumer_PollOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers records in shard order and keeps its place", func(t *testing.T) {
		api := &fakeStreams{shards: []*fakeShard{
			{id: "s1", records: []types.Record{record("e1", "1"), record("e2", "2")}, closed: true},
			{id: "s2", records: []types.Record{record("e3", "3")}},
		}}
		h := &fakeHandler{}
		c := newTestConsumer(api, h, types.ShardIteratorTypeTrimHorizon)

		require.NoError(t, c.PollOnce(ctx))
		assert.Equal(t, []string{"e1", "e2", "e3"}, h.seen)

		api.shards[1].records = append(api.shards[1].records, record("e4", "4"))
		require.NoError(t, c.PollOnce(ctx))
		assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, h.seen)
		assert.Len(t, api.iteratorReqs, 2, "closed shard is not reopened, open shard keeps its iterator")
	})

	t.Run("latest skips existing records", func(t *testing.T) {
		api := &fakeStreams{shards: []*fakeShard{{id: "s1", records: []types.Record{record("e1", "1")}}}}
		h := &fakeHandler{}
		c := newTestConsumer(api, h, types.ShardIteratorTypeLatest)

		require.NoError(t, c.PollOnce(ctx))
		assert.Empty(t, h.seen)

		api.shards[0].records = append(api.shards[0].records, record("e2", "2"))
		require.NoError(t, c.PollOnce(ctx))
		assert.Equal(t, []string{"e2"}, h.seen)
	})

	t.Run("shards opened later are read from their start", func(t *testing.T) {
		api := &fakeStreams{shards: []*fakeShard{{id: "s1"}}}
		h := &fakeHandler{}
		c := newTestConsumer(api, h, types.ShardIteratorTypeLatest)
		require.NoError(t, c.PollOnce(ctx))

		api.shards = append(api.shards, &fakeShard{id: "s2", records: []types.Record{record("e1", "1")}})
		require.NoError(t, c.PollOnce(ctx))
		assert.Equal(t, []string{"e1"}, h.seen)
	})

	t.Run("failed record is redelivered on the next poll", func(t *testing.T) {
		api := &fakeStreams{shards: []*fakeShard{
			{id: "s1", records: []types.Record{record("e1", "1"), record("e2", "2"), record("e3", "3")}},
		}}
		h := &fakeHandler{failOn: map[string]int{"e2": 1}}
		c := newTestConsumer(api, h, types.ShardIteratorTypeTrimHorizon)

		err := c.PollOnce(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrWorkOrderWriteFailed)
		assert.Equal(t, []string{"e1", "e2"}, h.seen)

		require.NoError(t, c.PollOnce(ctx))
		assert.Equal(t, []string{"e1", "e2", "e2", "e3"}, h.seen)

		last := api.iteratorReqs[len(api.iteratorReqs)-1]
		assert.Equal(t, types.ShardIteratorTypeAtSequenceNumber, last.ShardIteratorType)
		assert.Equal(t, "2", aws.ToString(last.SequenceNumber))
	})

	t.Run("expired iterator resumes after the checkpoint", func(t *testing.T) {
		api := &fakeStreams{shards: []*fakeShard{{id: "s1", records: []types.Record{record("e1", "1")}}}}
		h := &fakeHandler{}
		c := newTestConsumer(api, h, types.ShardIteratorTypeTrimHorizon)
		require.NoError(t, c.PollOnce(ctx))

		api.expireNext = true
		require.NoError(t, c.PollOnce(ctx))

		api.shards[0].records = append(api.shards[0].records, record("e2", "2"))
		require.NoError(t, c.PollOnce(ctx))
		assert.Equal(t, []string{"e1", "e2"}, h.seen)

		last := api.iteratorReqs[len(api.iteratorReqs)-1]
		assert.Equal(t, types.ShardIteratorTypeAfterSequenceNumber, last.ShardIteratorType)
		assert.Equal(t, "1", aws.ToString(last.SequenceNumber))
	})

	t.Run("unmappable records are skipped", func(t *testing.T) {
		api := &fakeStreams{shards: []*fakeShard{{id: "s1", records: []types.Record{
			{EventID: aws.String("keys-only"), EventName: types.OperationTypeRemove, Dynamodb: &types.StreamRecord{SequenceNumber: aws.String("1")}},
			record("e2", "2"),
		}}}}
		h := &fakeHandler{}
		c := newTestConsumer(api, h, types.ShardIteratorTypeTrimHorizon)

		require.NoError(t, c.PollOnce(ctx))
		assert.Equal(t, []string{"e2"}, h.seen)
	})

	t.Run("describe failure is reported", func(t *testing.T) {
		api := &fakeStreams{describeErr: errors.New("throttled")}
		c := newTestConsumer(api, &fakeHandler{}, types.ShardIteratorTypeTrimHorizon)
		assert.ErrorContains(t, c.PollOnce(ctx), "throttled")
	})
}

func TestConsumer_RunStopsOnCancel(t *testing.T) {
	api := &fakeStreams{shards: []*fakeShard{{id: "s1", records: []types.Record{record("e1", "1")}}}}
	h := &fakeHandler{}
	c := newTestConsumer(api, h, types.ShardIteratorTypeTrimHorizon)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, c.Run(ctx))
}
