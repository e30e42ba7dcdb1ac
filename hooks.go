package dynafix

import (
	"context"

	"github.com/rs/zerolog"
)

// StoreHooks is a container for callbacks which observe fixture operations.
type StoreHooks struct {
	// RequestBuilt is invoked after an operation's request parameters are
	// assembled, just before the call to DynamoDB. The returned context is
	// passed to the storage client.
	RequestBuilt func(ctx context.Context, params interface{}) context.Context
}

var defaultHooks = &StoreHooks{
	RequestBuilt: func(ctx context.Context, params interface{}) context.Context {
		return ctx
	},
}

// NewLoggingHooks returns hooks which log the operation name, table and request
// type of each built request at debug level.
func NewLoggingHooks(log zerolog.Logger) *StoreHooks {
	return &StoreHooks{
		RequestBuilt: func(ctx context.Context, params interface{}) context.Context {
			log.Debug().
				Str("operation", OperationName(ctx)).
				Type("params", params).
				Msg("request built")

			return ctx
		},
	}
}
