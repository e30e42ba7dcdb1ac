package dynafix

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// DynamoDBAPI is the subset of the DynamoDB client used by fixtures. Any client
// which can put, get and delete single items can back a session, including test
// doubles.
type DynamoDBAPI interface {
	PutItemWithContext(ctx aws.Context, input *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error)
	GetItemWithContext(ctx aws.Context, input *dynamodb.GetItemInput, opts ...request.Option) (*dynamodb.GetItemOutput, error)
	DeleteItemWithContext(ctx aws.Context, input *dynamodb.DeleteItemInput, opts ...request.Option) (*dynamodb.DeleteItemOutput, error)
}

var _ DynamoDBAPI = &dynamodb.DynamoDB{}

type DynaSession struct {
	DynamoDBAPI
	storeHooks *StoreHooks
}

// Fixture binds a table name to the session, all operations on the returned
// fixture address that table.
func (ds *DynaSession) Fixture(tableName string) *Fixture {
	return &Fixture{session: ds, tableName: tableName}
}

// New construct a DynamoDB backed fixture session with default session / service.
// The supplied configs are passed verbatim to the AWS SDK, no validation is
// performed and no connection is opened until the first operation.
func New(cfgs ...*aws.Config) *DynaSession {
	sess := session.Must(session.NewSession(cfgs...))
	dynamoSvc := dynamodb.New(sess)

	return &DynaSession{
		dynamoSvc, defaultHooks,
	}
}

// NewWithOptions construct a DynamoDB backed fixture session with the provided
// session options.
func NewWithOptions(awscfg *aws.Config, options ...SessionOption) *DynaSession {
	sessionOptions := NewSessionOptions(options...)

	sess := session.Must(session.NewSession(awscfg))
	dynamoSvc := dynamodb.New(sess)

	return &DynaSession{
		dynamoSvc,
		sessionOptions.storeHooks,
	}
}

// NewWithClient construct a fixture session using an existing DynamoDB client,
// typically a pre-configured service client or a test double.
func NewWithClient(dynamoSvc DynamoDBAPI, options ...SessionOption) *DynaSession {
	sessionOptions := NewSessionOptions(options...)

	return &DynaSession{
		dynamoSvc,
		sessionOptions.storeHooks,
	}
}
