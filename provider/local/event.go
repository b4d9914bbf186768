package local

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/convox/events/pkg/options"
	"github.com/convox/events/pkg/record"
	"github.com/convox/events/pkg/structs"
)

func (p *Provider) EventQuery(pk string) ([]record.Item, error) {
	log := p.logger.At("EventQuery").Namespace("pk=%q", pk).Start()

	values, err := p.storageValues(path.Join(bucketEvents, pk))
	if err != nil {
		return nil, log.Error(err)
	}

	items := make([]record.Item, 0, len(values))

	for _, v := range values {
		var item record.Item

		if err := json.Unmarshal(v, &item); err != nil {
			return nil, log.Error(err)
		}

		items = append(items, item)
	}

	log.Successf("items=%d", len(items))

	return items, nil
}

// EventPut stores a raw record under its PK and SK attributes, replacing any existing one
func (p *Provider) EventPut(item record.Item) error {
	pk, sk, err := itemKey(item)
	if err != nil {
		return err
	}

	log := p.logger.At("EventPut").Namespace("pk=%q", pk).Start()

	data, err := json.Marshal(item)
	if err != nil {
		return log.Error(err)
	}

	if err := p.storageStore(path.Join(bucketEvents, pk, sk), data); err != nil {
		return log.Error(err)
	}

	return log.Success()
}

func (p *Provider) EventUpdate(key structs.EventKey, column string, value *dynamodb.AttributeValue, opts structs.EventUpdateOptions) error {
	log := p.logger.At("EventUpdate").Namespace("pk=%q column=%s", key.PartitionKey, column).Start()

	if value == nil {
		return log.Error(fmt.Errorf("value required"))
	}

	data, err := p.storageRead(path.Join(bucketEvents, key.PartitionKey, key.SortKey))
	if err != nil {
		return log.Error(fmt.Errorf("no such event record: %s", key.PartitionKey))
	}

	var item record.Item

	if err := json.Unmarshal(data, &item); err != nil {
		return log.Error(err)
	}

	if options.True(opts.Append) {
		merged, err := appendSet(item[column], value)
		if err != nil {
			return log.Error(err)
		}
		value = merged
	}

	item[column] = value

	if err := p.EventPut(item); err != nil {
		return log.Error(err)
	}

	return log.Success()
}

// appendSet adds the members of value to the set in current, skipping duplicates
func appendSet(current, value *dynamodb.AttributeValue) (*dynamodb.AttributeValue, error) {
	if value.SS == nil {
		return nil, fmt.Errorf("can only append string sets")
	}

	if current == nil {
		return value, nil
	}

	if current.SS == nil {
		return nil, fmt.Errorf("existing value is not a string set")
	}

	seen := map[string]bool{}
	merged := []string{}

	for _, s := range append(aws.StringValueSlice(current.SS), aws.StringValueSlice(value.SS)...) {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}

	return &dynamodb.AttributeValue{SS: aws.StringSlice(merged)}, nil
}

func itemKey(item record.Item) (string, string, error) {
	pk, ok := item["PK"]
	if !ok || pk.S == nil || *pk.S == "" {
		return "", "", fmt.Errorf("item requires a PK string")
	}

	sk, ok := item["SK"]
	if !ok || sk.S == nil || *sk.S == "" {
		return "", "", fmt.Errorf("item requires a SK string")
	}

	return *pk.S, *sk.S, nil
}
