package gridmap

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	defaultTick          time.Duration = time.Millisecond
	defaultPartitions                  = PartitionsSingle
	defaultWaitSampleCap               = 1024
)

var ErrInvalidConfig = errors.New("grid config is invalid")

type Config struct {
	Rows       int // Number of rows, at least 1.
	Columns    int // Number of columns, at least 1.
	Partitions int // Number of lock partitions: 1, 2 or 3.

	// First row of the expansion channel group. Rows at or beyond it map to
	// partition 2. Required when Partitions is 3, ignored otherwise.
	ExpansionRow int

	// Duration of one timeout tick. Accessor timeouts are expressed in ticks
	// so the infinite sentinel of the underlying primitive stays addressable.
	Tick time.Duration

	// Arena places the backing buffer in an anonymous mmap region instead of
	// the Go heap. The cell type must not contain pointers.
	Arena bool

	// Logger receives the acquire/timeout/release observation events.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// NewMutex builds one partition mutex. Defaults to the tick-based
	// channel mutex; tests inject recording mutexes here.
	NewMutex func() PartitionMutex

	WaitSampleCap int // Max retained acquire-wait samples, default 1024.
}

func DefaultConfig(rows, columns int) Config {
	return Config{
		Rows:          rows,
		Columns:       columns,
		Partitions:    defaultPartitions,
		Tick:          defaultTick,
		WaitSampleCap: defaultWaitSampleCap,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Rows < 1 {
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidConfig, cfg.Rows)
	}
	if cfg.Columns < 1 {
		return fmt.Errorf("%w: columns must be at least 1, got %d", ErrInvalidConfig, cfg.Columns)
	}
	switch cfg.Partitions {
	case PartitionsSingle, PartitionsDual:
	case PartitionsTriple:
		if cfg.ExpansionRow < 1 || cfg.ExpansionRow > cfg.Rows {
			return fmt.Errorf("%w: expansion row %d out of range [1, %d]",
				ErrInvalidConfig, cfg.ExpansionRow, cfg.Rows)
		}
	default:
		return fmt.Errorf("%w: partitions must be 1, 2 or 3, got %d", ErrInvalidConfig, cfg.Partitions)
	}
	if cfg.Tick < 0 {
		return fmt.Errorf("%w: tick must not be negative", ErrInvalidConfig)
	}
	return nil
}
