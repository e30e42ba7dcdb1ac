package dynafix

import (
	"github.com/rs/zerolog"
)

// SessionOption assign various settings to the session options
type SessionOption func(opts *SessionOptions)

// SessionOptions contains optional session parameters
type SessionOptions struct {
	storeHooks *StoreHooks
}

// NewSessionOptions create session options, assign defaults then accept overrides
func NewSessionOptions(opts ...SessionOption) *SessionOptions {
	sessionOpts := &SessionOptions{
		storeHooks: defaultHooks,
	}

	for _, opt := range opts {
		opt(sessionOpts)
	}

	return sessionOpts
}

// WithHooks assign hooks which observe each request before it is sent
func WithHooks(hooks *StoreHooks) SessionOption {
	return func(opts *SessionOptions) {
		if hooks != nil {
			opts.storeHooks = hooks
		}
	}
}

// WithLogger log each built request at debug level using the supplied logger
func WithLogger(log zerolog.Logger) SessionOption {
	return func(opts *SessionOptions) {
		opts.storeHooks = NewLoggingHooks(log)
	}
}

// ReadOption assign various settings to the read options
type ReadOption func(opts *ReadOptions)

// ReadOptions contains optional request parameters
type ReadOptions struct {
	consistent bool
}

// Append append more options which supports conditional addition
func (ro *ReadOptions) Append(opts ...ReadOption) {
	for _, opt := range opts {
		opt(ro)
	}
}

// NewReadOptions create read options, assign defaults then accept overrides
// enable the read consistent flag by default
func NewReadOptions(opts ...ReadOption) *ReadOptions {
	readOpts := &ReadOptions{
		consistent: true,
	}

	for _, opt := range opts {
		opt(readOpts)
	}

	return readOpts
}

// ReadConsistentDisable disable consistent reads
func ReadConsistentDisable() ReadOption {
	return func(opts *ReadOptions) {
		opts.consistent = false
	}
}
