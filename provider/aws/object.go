package aws

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/convox/events/pkg/helpers"
	"github.com/convox/events/pkg/structs"
	"github.com/pkg/errors"
)

func (p *Provider) ObjectStore(key string, r io.Reader, opts structs.ObjectStoreOptions) (*structs.Object, error) {
	log := p.log().At("ObjectStore").Namespace("bucket=%s key=%q", p.Bucket, key).Start()

	if key == "" {
		return nil, log.Error(fmt.Errorf("key must not be blank"))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, log.Error(errors.WithStack(err))
	}

	err = helpers.Retry(p.Retries, p.RetryInterval, helpers.AwsThrottled, func() error {
		req := &s3.PutObjectInput{
			Body:          bytes.NewReader(data),
			Bucket:        aws.String(p.Bucket),
			ContentLength: aws.Int64(int64(len(data))),
			ContentType:   opts.ContentType,
			Key:           aws.String(key),
		}

		if _, err := p.S3.PutObjectWithContext(p.Context(), req); err != nil {
			log.Logf("code=%s", helpers.AwsErrorCode(err))
			return err
		}

		return nil
	})
	if err != nil {
		return nil, log.Error(errors.WithStack(err))
	}

	log.Successf("bytes=%d", len(data))

	return &structs.Object{Key: key, Url: fmt.Sprintf("s3://%s/%s", p.Bucket, key)}, nil
}
