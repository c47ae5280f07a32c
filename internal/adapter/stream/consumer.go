package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"workorder_rollup/internal/domain/entities"
	"workorder_rollup/internal/infrastructure/logger"
	"workorder_rollup/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

// StreamsAPI is the subset of the DynamoDB Streams client the consumer needs.
type StreamsAPI interface {
	DescribeStream(ctx context.Context, params *dynamodbstreams.DescribeStreamInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.DescribeStreamOutput, error)
	GetShardIterator(ctx context.Context, params *dynamodbstreams.GetShardIteratorInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetShardIteratorOutput, error)
	GetRecords(ctx context.Context, params *dynamodbstreams.GetRecordsInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetRecordsOutput, error)
}

// ChangeHandler receives every mapped stream record.
type ChangeHandler interface {
	HandleChange(ctx context.Context, event entities.ChangeEvent) (usecase.RollupResult, error)
}

var _ ChangeHandler = (usecase.IRollupUseCase)(nil)

type shardKey struct {
	arn   string
	shard string
}

// shardState is the in-memory checkpoint of one shard.
type shardState struct {
	iterator string
	seq      string
	// retry resumes AT seq instead of AFTER it: the record at seq failed.
	retry  bool
	closed bool
}

// Consumer polls the line table streams and feeds every record to the rollup.
//
// Shards are read one after the other and records in shard order. A record whose handling
// fails stops its shard for the current poll and is read again on the next one.
// Checkpoints live in memory only.
type Consumer struct {
	api     StreamsAPI
	handler ChangeHandler
	cfg     Config
	log     *logger.Logger

	mu      sync.Mutex
	shards  map[shardKey]*shardState
	started map[string]bool
}

func NewConsumer(api StreamsAPI, handler ChangeHandler, cfg Config, log *logger.Logger) *Consumer {
	if log == nil {
		log = logger.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.StartPosition == "" {
		cfg.StartPosition = types.ShardIteratorTypeLatest
	}
	return &Consumer{
		api:     api,
		handler: handler,
		cfg:     cfg,
		log:     log.Component("rollup.stream"),
		shards:  map[shardKey]*shardState{},
		started: map[string]bool{},
	}
}

// Run polls until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	c.log.Info("stream consumer started", "streams", len(c.cfg.Sources), "interval", c.cfg.PollInterval.String())
	for {
		if err := c.PollOnce(ctx); err != nil && ctx.Err() == nil {
			c.log.Error("stream poll failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			c.log.Info("stream consumer stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// PollOnce reads one batch from every open shard of every configured stream.
func (c *Consumer) PollOnce(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for _, src := range c.cfg.Sources {
		shardIDs, err := c.listShards(ctx, src.StreamArn)
		if err != nil {
			errs = append(errs, fmt.Errorf("describe stream %s: %w", src.StreamArn, err))
			continue
		}
		c.forgetMissingShards(src.StreamArn, shardIDs)

		// Shards opened after the first poll are read from their start.
		start := c.cfg.StartPosition
		if c.started[src.StreamArn] {
			start = types.ShardIteratorTypeTrimHorizon
		}
		for _, shardID := range shardIDs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.pollShard(ctx, src, shardID, start); err != nil {
				errs = append(errs, err)
			}
		}
		c.started[src.StreamArn] = true
	}
	return errors.Join(errs...)
}

func (c *Consumer) listShards(ctx context.Context, arn string) ([]string, error) {
	var (
		ids       []string
		lastShard *string
	)
	for {
		out, err := c.api.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{
			StreamArn:             aws.String(arn),
			ExclusiveStartShardId: lastShard,
		})
		if err != nil {
			return nil, err
		}
		if out.StreamDescription == nil {
			return ids, nil
		}
		for _, s := range out.StreamDescription.Shards {
			if id := aws.ToString(s.ShardId); id != "" {
				ids = append(ids, id)
			}
		}
		lastShard = out.StreamDescription.LastEvaluatedShardId
		if lastShard == nil {
			return ids, nil
		}
	}
}

// forgetMissingShards drops checkpoints of shards trimmed from the stream.
func (c *Consumer) forgetMissingShards(arn string, shardIDs []string) {
	live := make(map[string]struct{}, len(shardIDs))
	for _, id := range shardIDs {
		live[id] = struct{}{}
	}
	for key := range c.shards {
		if key.arn != arn {
			continue
		}
		if _, ok := live[key.shard]; !ok {
			delete(c.shards, key)
		}
	}
}

func (c *Consumer) pollShard(ctx context.Context, src Source, shardID string, start types.ShardIteratorType) error {
	key := shardKey{arn: src.StreamArn, shard: shardID}
	st, ok := c.shards[key]
	if !ok {
		st = &shardState{}
		c.shards[key] = st
	}
	if st.closed {
		return nil
	}

	if st.iterator == "" {
		it, err := c.shardIterator(ctx, key, st, start)
		if err != nil {
			return fmt.Errorf("shard iterator %s: %w", shardID, err)
		}
		st.iterator = it
	}

	out, err := c.api.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{
		ShardIterator: aws.String(st.iterator),
		Limit:         aws.Int32(c.cfg.BatchSize),
	})
	if err != nil {
		var expired *types.ExpiredIteratorException
		if errors.As(err, &expired) {
			// Rebuilt from the checkpoint on the next poll.
			st.iterator = ""
			return nil
		}
		return fmt.Errorf("get records %s: %w", shardID, err)
	}

	for _, rec := range out.Records {
		seq := sequenceNumber(rec)
		if err := c.handleRecord(ctx, src.Kind, rec); err != nil {
			st.iterator, st.seq, st.retry = "", seq, true
			c.log.Warn("stream record failed, will be redelivered",
				"shard", shardID, "sequence_number", seq, "event_id", aws.ToString(rec.EventID), "error", err.Error())
			return fmt.Errorf("shard %s record %s: %w", shardID, seq, err)
		}
		if seq != "" {
			st.seq, st.retry = seq, false
		}
	}

	if out.NextShardIterator == nil {
		st.iterator, st.closed = "", true
		c.log.Debug("stream shard closed", "shard", shardID)
		return nil
	}
	st.iterator = aws.ToString(out.NextShardIterator)
	return nil
}

func (c *Consumer) shardIterator(ctx context.Context, key shardKey, st *shardState, start types.ShardIteratorType) (string, error) {
	in := &dynamodbstreams.GetShardIteratorInput{
		StreamArn:         aws.String(key.arn),
		ShardId:           aws.String(key.shard),
		ShardIteratorType: start,
	}
	if st.seq != "" {
		in.SequenceNumber = aws.String(st.seq)
		in.ShardIteratorType = types.ShardIteratorTypeAfterSequenceNumber
		if st.retry {
			in.ShardIteratorType = types.ShardIteratorTypeAtSequenceNumber
		}
	}

	out, err := c.api.GetShardIterator(ctx, in)
	if err != nil {
		return "", err
	}
	if out.ShardIterator == nil {
		return "", errors.New("empty shard iterator")
	}
	return *out.ShardIterator, nil
}

func (c *Consumer) handleRecord(ctx context.Context, kind entities.LineKind, rec types.Record) error {
	event, ok := MapRecord(kind, rec)
	if !ok {
		c.log.Debug("stream record skipped", "event_id", aws.ToString(rec.EventID), "event_name", string(rec.EventName))
		return nil
	}

	result, err := c.handler.HandleChange(ctx, event)
	if err != nil {
		return err
	}
	if result.Qualified {
		c.log.Debug("stream record applied", "event_id", event.ID, "work_order_id", result.WorkOrderID)
	}
	return nil
}

func sequenceNumber(rec types.Record) string {
	if rec.Dynamodb == nil {
		return ""
	}
	return aws.ToString(rec.Dynamodb.SequenceNumber)
}
