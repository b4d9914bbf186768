package structs

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/convox/events/pkg/record"
)

// ErrUnexpectedResponse is returned when the store answers without the data it must carry
var ErrUnexpectedResponse = fmt.Errorf("unexpected response from store")

type Provider interface {
	Initialize(opts ProviderOptions) error
	WithContext(ctx context.Context) Provider

	EventQuery(partitionKey string) ([]record.Item, error)
	EventUpdate(key EventKey, column string, value *dynamodb.AttributeValue, opts EventUpdateOptions) error

	ObjectStore(key string, r io.Reader, opts ObjectStoreOptions) (*Object, error)
}

type ProviderOptions struct {
	Logs io.Writer
}

type EventUpdateOptions struct {
	// add members to a set instead of replacing the attribute
	Append *bool
}

type Object struct {
	Key string `json:"key"`
	Url string `json:"url"`
}

type ObjectStoreOptions struct {
	ContentType *string
}
