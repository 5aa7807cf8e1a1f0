// Package bucket spreads validated questions across study-plan days.
package bucket

import (
	"errors"
	"fmt"

	"dailyq/internal/question"
)

// DefaultCount is the number of study-plan days.
const DefaultCount = 45

// ErrInvalidBucketCount indicates a bucket count below 1.
var ErrInvalidBucketCount = errors.New("bucket count must be at least 1")

// Set is an immutable assignment of records to buckets 1..Count.
type Set struct {
	buckets [][]question.Record
}

// Allocate assigns the k-th record to bucket (k mod bucketCount)+1 and gives
// it the id q_{bucket}_{k}. The input slice is not modified.
func Allocate(records []question.Record, bucketCount int) (Set, error) {
	if bucketCount < 1 {
		return Set{}, fmt.Errorf("allocate %d buckets: %w", bucketCount, ErrInvalidBucketCount)
	}
	buckets := make([][]question.Record, bucketCount)
	perBucket := len(records)/bucketCount + 1
	for i := range buckets {
		buckets[i] = make([]question.Record, 0, perBucket)
	}
	for k, record := range records {
		slot := k % bucketCount
		placed := record
		placed.Options = append([]string(nil), record.Options...)
		placed.Bucket = slot + 1
		placed.ID = fmt.Sprintf("q_%d_%d", placed.Bucket, k)
		buckets[slot] = append(buckets[slot], placed)
	}
	return Set{buckets: buckets}, nil
}

// Count returns the number of buckets, empty ones included.
func (s Set) Count() int {
	return len(s.buckets)
}

// Len returns the total number of placed records.
func (s Set) Len() int {
	total := 0
	for _, records := range s.buckets {
		total += len(records)
	}
	return total
}

// Bucket returns a copy of the records in bucket index (1-based), in
// allocation order. Unknown indexes return nil.
func (s Set) Bucket(index int) []question.Record {
	if index < 1 || index > len(s.buckets) {
		return nil
	}
	records := s.buckets[index-1]
	out := make([]question.Record, len(records))
	for i, record := range records {
		record.Options = append([]string(nil), record.Options...)
		out[i] = record
	}
	return out
}

// Indexes returns the non-empty bucket indexes in ascending order.
func (s Set) Indexes() []int {
	indexes := make([]int, 0, len(s.buckets))
	for i, records := range s.buckets {
		if len(records) > 0 {
			indexes = append(indexes, i+1)
		}
	}
	return indexes
}

// Sizes returns the record count of every bucket, index 0 for bucket 1.
func (s Set) Sizes() []int {
	sizes := make([]int, len(s.buckets))
	for i, records := range s.buckets {
		sizes[i] = len(records)
	}
	return sizes
}

// Balance returns the smallest and largest bucket sizes across all buckets.
func (s Set) Balance() (lo, hi int) {
	for i, records := range s.buckets {
		n := len(records)
		if i == 0 || n < lo {
			lo = n
		}
		if i == 0 || n > hi {
			hi = n
		}
	}
	return lo, hi
}
