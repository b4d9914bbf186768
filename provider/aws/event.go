package aws

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/convox/events/pkg/helpers"
	"github.com/convox/events/pkg/options"
	"github.com/convox/events/pkg/record"
	"github.com/convox/events/pkg/structs"
	"github.com/pkg/errors"
)

const (
	keyPartition = "PK"
	keySort      = "SK"
)

func (p *Provider) EventQuery(pk string) ([]record.Item, error) {
	log := p.log().At("EventQuery").Namespace("pk=%q", pk).Start()

	req := &dynamodb.QueryInput{
		TableName:              aws.String(p.Table),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]*string{
			"#pk": aws.String(keyPartition),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk": {S: aws.String(pk)},
		},
	}

	var res *dynamodb.QueryOutput

	err := helpers.Retry(p.Retries, p.RetryInterval, helpers.AwsThrottled, func() error {
		r, err := p.DynamoDB.QueryWithContext(p.Context(), req)
		if err != nil {
			log.Logf("code=%s", helpers.AwsErrorCode(err))
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, log.Error(errors.WithStack(err))
	}

	if res.Items == nil {
		return nil, log.Error(structs.ErrUnexpectedResponse)
	}

	items := make([]record.Item, len(res.Items))

	for i, item := range res.Items {
		items[i] = record.Item(item)
	}

	log.Successf("items=%d", len(items))

	return items, nil
}

func (p *Provider) EventUpdate(key structs.EventKey, column string, value *dynamodb.AttributeValue, opts structs.EventUpdateOptions) error {
	log := p.log().At("EventUpdate").Namespace("pk=%q column=%s", key.PartitionKey, column).Start()

	expr := "SET #c = :v"

	if options.True(opts.Append) {
		expr = "ADD #c :v"
	}

	req := &dynamodb.UpdateItemInput{
		TableName: aws.String(p.Table),
		Key: map[string]*dynamodb.AttributeValue{
			keyPartition: {S: aws.String(key.PartitionKey)},
			keySort:      {S: aws.String(key.SortKey)},
		},
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: map[string]*string{
			"#pk": aws.String(keyPartition),
			"#c":  aws.String(column),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":v": value,
		},
	}

	err := helpers.Retry(p.Retries, p.RetryInterval, helpers.AwsThrottled, func() error {
		_, err := p.DynamoDB.UpdateItemWithContext(p.Context(), req)
		if err != nil {
			log.Logf("code=%s", helpers.AwsErrorCode(err))
		}
		return err
	})
	if err != nil {
		return log.Error(errors.WithStack(err))
	}

	return log.Success()
}
