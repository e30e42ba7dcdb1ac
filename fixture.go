package dynafix

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

type contextKey int

const (
	OperationNameKey contextKey = 1 + iota
)

// Fixture provisions rows in a single DynamoDB table and tracks them for
// removal after the test run. Insert, Remove and Get are stateless pass-through
// calls to the storage client; only AddData, Provision and Cleanup touch the
// tracked data.
type Fixture struct {
	session   *DynaSession
	tableName string

	tracker
}

func (f *Fixture) GetTableName() string {
	return f.tableName
}

// Insert create or fully overwrite the row addressed by the item's key attributes
func (f *Fixture) Insert(item interface{}) (*dynamodb.PutItemOutput, error) {
	return f.InsertWithContext(context.Background(), item)
}

// Insert create or fully overwrite the row addressed by the item's key attributes
//
// The item is passed to the storage client unvalidated and the client result is
// returned as-is. Any storage error propagates unchanged.
func (f *Fixture) InsertWithContext(ctx context.Context, item interface{}) (*dynamodb.PutItemOutput, error) {
	av, err := MarshalItem(item)
	if err != nil {
		return nil, err
	}

	ctx = setOperationName(ctx, "Insert")

	putItem := &dynamodb.PutItemInput{
		TableName: aws.String(f.GetTableName()),
		Item:      av,
	}

	ctx = f.session.storeHooks.RequestBuilt(ctx, putItem)

	return f.session.PutItemWithContext(ctx, putItem)
}

// Remove delete the row identified by the given key or item
func (f *Fixture) Remove(keyOrItem interface{}) (*dynamodb.DeleteItemOutput, error) {
	return f.RemoveWithContext(context.Background(), keyOrItem)
}

// Remove delete the row identified by the given key or item
//
// A full item may be passed, the key attributes are extracted before the delete
// is issued. Deleting an absent row is not an error.
func (f *Fixture) RemoveWithContext(ctx context.Context, keyOrItem interface{}) (*dynamodb.DeleteItemOutput, error) {
	av, err := MarshalItem(keyOrItem)
	if err != nil {
		return nil, err
	}

	ctx = setOperationName(ctx, "Remove")

	deleteItem := &dynamodb.DeleteItemInput{
		TableName: aws.String(f.GetTableName()),
		Key:       Key(av),
	}

	ctx = f.session.storeHooks.RequestBuilt(ctx, deleteItem)

	return f.session.DeleteItemWithContext(ctx, deleteItem)
}

// Get retrieve the row identified by the given key or item
func (f *Fixture) Get(keyOrItem interface{}, options ...ReadOption) (Item, error) {
	return f.GetWithContext(context.Background(), keyOrItem, options...)
}

// Get retrieve the row identified by the given key or item
//
// A nil Item with a nil error is returned when the row is absent, absence is a
// result shape rather than an error.
func (f *Fixture) GetWithContext(ctx context.Context, keyOrItem interface{}, options ...ReadOption) (Item, error) {
	readOptions := NewReadOptions(options...)

	av, err := MarshalItem(keyOrItem)
	if err != nil {
		return nil, err
	}

	ctx = setOperationName(ctx, "Get")

	getItem := &dynamodb.GetItemInput{
		TableName:      aws.String(f.GetTableName()),
		Key:            Key(av),
		ConsistentRead: aws.Bool(readOptions.consistent),
	}

	ctx = f.session.storeHooks.RequestBuilt(ctx, getItem)

	res, err := f.session.GetItemWithContext(ctx, getItem)
	if err != nil {
		return nil, err
	}

	return res.Item, nil
}

// Exists reports whether a row identified by the given key or item is present
func (f *Fixture) Exists(keyOrItem interface{}, options ...ReadOption) (bool, error) {
	return f.ExistsWithContext(context.Background(), keyOrItem, options...)
}

// Exists reports whether a row identified by the given key or item is present
func (f *Fixture) ExistsWithContext(ctx context.Context, keyOrItem interface{}, options ...ReadOption) (bool, error) {
	item, err := f.GetWithContext(ctx, keyOrItem, options...)
	if err != nil {
		return false, err
	}

	return item != nil, nil
}
