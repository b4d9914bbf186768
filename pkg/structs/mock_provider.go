package structs

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/convox/events/pkg/record"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a testify mock of Provider
type MockProvider struct {
	mock.Mock
}

func (_m *MockProvider) Initialize(opts ProviderOptions) error {
	ret := _m.Called(opts)

	var r0 error
	if rf, ok := ret.Get(0).(func(ProviderOptions) error); ok {
		r0 = rf(opts)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// WithContext returns the mock itself so expectations carry across contexts
func (_m *MockProvider) WithContext(ctx context.Context) Provider {
	return _m
}

func (_m *MockProvider) EventQuery(partitionKey string) ([]record.Item, error) {
	ret := _m.Called(partitionKey)

	var r0 []record.Item
	if rf, ok := ret.Get(0).(func(string) []record.Item); ok {
		r0 = rf(partitionKey)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]record.Item)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(partitionKey)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockProvider) EventUpdate(key EventKey, column string, value *dynamodb.AttributeValue, opts EventUpdateOptions) error {
	ret := _m.Called(key, column, value, opts)

	var r0 error
	if rf, ok := ret.Get(0).(func(EventKey, string, *dynamodb.AttributeValue, EventUpdateOptions) error); ok {
		r0 = rf(key, column, value, opts)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockProvider) ObjectStore(key string, r io.Reader, opts ObjectStoreOptions) (*Object, error) {
	ret := _m.Called(key, r, opts)

	var r0 *Object
	if rf, ok := ret.Get(0).(func(string, io.Reader, ObjectStoreOptions) *Object); ok {
		r0 = rf(key, r, opts)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Object)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string, io.Reader, ObjectStoreOptions) error); ok {
		r1 = rf(key, r, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
