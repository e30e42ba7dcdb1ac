package dynafix

import (
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// Item represents a raw DynamoDB row as an attribute value map.
type Item = map[string]*dynamodb.AttributeValue

const (
	// AttrID identifies rows in simple key tables
	AttrID = "id"

	// AttrPartitionKey identifies the hash key attribute in composite key tables
	AttrPartitionKey = "partitionKey"

	// AttrSortKey identifies the range key attribute in composite key tables
	AttrSortKey = "sortKey"
)

// KeyKind classifies the key shape inferred from an item's attributes.
type KeyKind int

const (
	// KeyKindOpaque neither known key shape matched, the item is assumed to
	// already be a valid key
	KeyKindOpaque KeyKind = iota

	// KeyKindSimple the item carries an "id" attribute
	KeyKindSimple

	// KeyKindComposite the item carries both "partitionKey" and "sortKey" attributes
	KeyKindComposite
)

func (k KeyKind) String() string {
	switch k {
	case KeyKindSimple:
		return "simple"
	case KeyKindComposite:
		return "composite"
	default:
		return "opaque"
	}
}

// ClassifyKey infers the key shape of an item by attribute presence. A composite
// key wins over a simple key when both shapes are present.
func ClassifyKey(item Item) KeyKind {
	_, hasPartition := item[AttrPartitionKey]
	_, hasSort := item[AttrSortKey]

	if hasPartition && hasSort {
		return KeyKindComposite
	}

	if _, ok := item[AttrID]; ok {
		return KeyKindSimple
	}

	return KeyKindOpaque
}

// Key extracts the key attributes from an item, returning a new map containing
// only the attributes which identify the row. Items matching neither known key
// shape are returned unchanged, on the assumption the caller already supplied a
// valid key. The input is never mutated.
func Key(item Item) Item {
	switch ClassifyKey(item) {
	case KeyKindComposite:
		return Item{
			AttrPartitionKey: item[AttrPartitionKey],
			AttrSortKey:      item[AttrSortKey],
		}
	case KeyKindSimple:
		return Item{
			AttrID: item[AttrID],
		}
	default:
		return item
	}
}

// MarshalItem converts a Go value into an attribute value map using
// dynamodbattribute. A value which is already an Item passes through untouched.
func MarshalItem(v interface{}) (Item, error) {
	if item, ok := v.(Item); ok {
		return item, nil
	}

	return dynamodbattribute.MarshalMap(v)
}

// UnmarshalItem decodes an attribute value map into the supplied Go value using
// dynamodbattribute.
func UnmarshalItem(item Item, out interface{}) error {
	return dynamodbattribute.UnmarshalMap(item, out)
}
