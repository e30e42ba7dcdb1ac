package dynafix

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// Lifecycle is the fixture lifecycle contract: bulk insert and track rows before
// a test run, remove every tracked row afterwards.
type Lifecycle interface {
	// Provision inserts every item in order and tracks each for later cleanup
	Provision(items []interface{}) ([]*dynamodb.PutItemOutput, error)

	// Cleanup removes every tracked item and clears tracking
	Cleanup() error

	// AddData appends an item to the tracked data and returns the new length
	AddData(item interface{}) int

	// TrackedData returns a snapshot of the tracked items in insertion order
	TrackedData() []interface{}
}

var _ Lifecycle = &Fixture{}

// tracker holds the ordered items recorded for cleanup. Insert, Remove and Get
// never touch it.
type tracker struct {
	mu   sync.Mutex
	data []interface{}
}

// AddData appends an item to the tracked data and returns the new length.
func (tr *tracker) AddData(item interface{}) int {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.data = append(tr.data, item)

	return len(tr.data)
}

// TrackedData returns a snapshot of the tracked items in insertion order.
func (tr *tracker) TrackedData() []interface{} {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	snapshot := make([]interface{}, len(tr.data))
	copy(snapshot, tr.data)

	return snapshot
}

// Provision inserts every item in order and tracks each for later cleanup.
func (f *Fixture) Provision(items []interface{}) ([]*dynamodb.PutItemOutput, error) {
	return f.ProvisionWithContext(context.Background(), items)
}

// Provision inserts every item in order and tracks each for later cleanup.
//
// An item is tracked once its insert succeeded, so a failure part way through
// leaves the already inserted items tracked and removable by Cleanup. The error
// from the failing insert is returned unchanged.
func (f *Fixture) ProvisionWithContext(ctx context.Context, items []interface{}) ([]*dynamodb.PutItemOutput, error) {
	results := make([]*dynamodb.PutItemOutput, 0, len(items))

	for _, item := range items {
		res, err := f.InsertWithContext(ctx, item)
		if err != nil {
			return results, err
		}

		results = append(results, res)
		f.AddData(item)
	}

	return results, nil
}

// Cleanup removes every tracked item and clears tracking.
func (f *Fixture) Cleanup() error {
	return f.CleanupWithContext(context.Background())
}

// Cleanup removes every tracked item and clears tracking.
//
// Items are removed in reverse insertion order. Removing a row another actor
// already deleted is a storage level no-op, so cleanup is idempotent. On a
// storage error the remaining items stay tracked and the error is returned
// unchanged.
func (f *Fixture) CleanupWithContext(ctx context.Context) error {
	f.mu.Lock()
	pending := f.data
	f.data = nil
	f.mu.Unlock()

	for i := len(pending) - 1; i >= 0; i-- {
		if _, err := f.RemoveWithContext(ctx, pending[i]); err != nil {
			f.mu.Lock()
			f.data = append(pending[:i+1:i+1], f.data...)
			f.mu.Unlock()

			return err
		}
	}

	return nil
}
