package dynafix

import (
	"context"
	"crypto/rand"

	"github.com/mr-tron/base58"
)

// OperationName extracts the name of the operation being handled in the given
// context. If it is not known, it returns ("").
func OperationName(ctx context.Context) string {
	name, _ := ctx.Value(OperationNameKey).(string)
	return name
}

func setOperationName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, OperationNameKey, name)
}

// UniqueSuffix returns a short random base58 string, useful for isolating table
// or item names between concurrent test runs.
func UniqueSuffix() string {
	buf := make([]byte, 8)

	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}

	return base58.Encode(buf)
}
