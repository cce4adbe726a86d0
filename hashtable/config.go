package hashtable

import (
	"fmt"
	"math"
)

const (
	// DefaultLoadFactor is the ratio of entries to buckets at which the
	// table grows.
	DefaultLoadFactor = 0.7
	// DefaultBucketIncrement is the number of buckets a new table starts
	// with, and the number of buckets added with every growth step.
	DefaultBucketIncrement = 32
)

// Config configures a hash table. The zero value selects the defaults.
type Config struct {
	// LoadFactor triggers a rehash as soon as
	//
	//	entries > ⌊buckets / LoadFactor⌋
	LoadFactor float64
	// BucketIncrement is the initial bucket count and the growth step.
	BucketIncrement int
}

func (cfg Config) normalized() Config {
	if cfg.LoadFactor == 0 {
		cfg.LoadFactor = DefaultLoadFactor
	}
	if cfg.BucketIncrement == 0 {
		cfg.BucketIncrement = DefaultBucketIncrement
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.LoadFactor < 0 || math.IsNaN(cfg.LoadFactor) || math.IsInf(cfg.LoadFactor, 0) {
		return fmt.Errorf("%w: load factor must be positive and finite, is %g", ErrInvalidConfig, cfg.LoadFactor)
	}
	if cfg.BucketIncrement < 0 {
		return fmt.Errorf("%w: bucket increment must be positive, is %d", ErrInvalidConfig, cfg.BucketIncrement)
	}
	return nil
}
