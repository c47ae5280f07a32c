package stream

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"workorder_rollup/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

const (
	defaultPollInterval = time.Second
	defaultBatchSize    = 100
)

// Source is one line table stream.
type Source struct {
	Kind      entities.LineKind
	StreamArn string
}

type Config struct {
	Sources      []Source
	PollInterval time.Duration
	BatchSize    int32
	// StartPosition applies to shards without a checkpoint.
	StartPosition types.ShardIteratorType
}

// ConfigFromEnv reads:
//   - SERVICE_LINES_STREAM_ARN, PRODUCT_LINES_STREAM_ARN (at least one)
//   - STREAM_POLL_INTERVAL (default: 1s)
//   - STREAM_BATCH_SIZE (default: 100)
//   - STREAM_START (LATEST | TRIM_HORIZON, default: LATEST)
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		PollInterval:  defaultPollInterval,
		BatchSize:     defaultBatchSize,
		StartPosition: types.ShardIteratorTypeLatest,
	}

	if arn := strings.TrimSpace(os.Getenv("SERVICE_LINES_STREAM_ARN")); arn != "" {
		cfg.Sources = append(cfg.Sources, Source{Kind: entities.LineKindService, StreamArn: arn})
	}
	if arn := strings.TrimSpace(os.Getenv("PRODUCT_LINES_STREAM_ARN")); arn != "" {
		cfg.Sources = append(cfg.Sources, Source{Kind: entities.LineKindProduct, StreamArn: arn})
	}
	if len(cfg.Sources) == 0 {
		return Config{}, fmt.Errorf("no stream configured: set SERVICE_LINES_STREAM_ARN and/or PRODUCT_LINES_STREAM_ARN")
	}

	if v := os.Getenv("STREAM_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid STREAM_POLL_INTERVAL %q", v)
		}
		cfg.PollInterval = d
	}
	if v := os.Getenv("STREAM_BATCH_SIZE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 || n > 1000 {
			return Config{}, fmt.Errorf("invalid STREAM_BATCH_SIZE %q", v)
		}
		cfg.BatchSize = int32(n)
	}
	switch start := strings.ToUpper(strings.TrimSpace(os.Getenv("STREAM_START"))); start {
	case "", string(types.ShardIteratorTypeLatest):
	case string(types.ShardIteratorTypeTrimHorizon):
		cfg.StartPosition = types.ShardIteratorTypeTrimHorizon
	default:
		return Config{}, fmt.Errorf("invalid STREAM_START %q", start)
	}

	return cfg, nil
}
