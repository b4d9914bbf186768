package aws

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/convox/events/pkg/config"
	"github.com/convox/events/pkg/structs"
	"github.com/convox/logger"
)

type Provider struct {
	Region   string
	Endpoint string
	Table    string
	Bucket   string

	Retries       int
	RetryInterval time.Duration

	DynamoDB dynamodbiface.DynamoDBAPI
	S3       s3iface.S3API

	ctx    context.Context
	logger *logger.Logger
}

func FromConfig(c *config.Config) *Provider {
	return &Provider{
		Region:        c.Region,
		Endpoint:      c.Endpoint,
		Table:         c.Table,
		Bucket:        c.Bucket,
		Retries:       3,
		RetryInterval: 100 * time.Millisecond,
	}
}

func (p *Provider) Initialize(opts structs.ProviderOptions) error {
	var w io.Writer = os.Stdout

	if opts.Logs != nil {
		w = opts.Logs
	}

	p.logger = logger.NewWriter("ns=aws", w)

	s, err := session.NewSession(p.config())
	if err != nil {
		return err
	}

	if p.DynamoDB == nil {
		p.DynamoDB = dynamodb.New(s)
	}

	// path style (http://s3.amazonaws.com/bucket/key) is easier to stub
	if p.S3 == nil {
		p.S3 = s3.New(s, &aws.Config{S3ForcePathStyle: aws.Bool(true)})
	}

	return nil
}

func (p *Provider) WithContext(ctx context.Context) structs.Provider {
	pp := *p
	pp.ctx = ctx
	return &pp
}

func (p *Provider) Context() context.Context {
	if p.ctx == nil {
		return context.Background()
	}

	return p.ctx
}

func (p *Provider) config() *aws.Config {
	config := &aws.Config{
		// retries go through helpers.Retry so they are visible in the logs
		MaxRetries: aws.Int(0),
	}

	if p.Region != "" {
		config.Region = aws.String(p.Region)
	}

	if p.Endpoint != "" {
		config.Endpoint = aws.String(p.Endpoint)
	}

	if os.Getenv("DEBUG") != "" {
		config.WithLogLevel(aws.LogDebugWithHTTPBody)
	}

	return config
}

func (p *Provider) log() *logger.Logger {
	if p.logger == nil {
		p.logger = logger.New("ns=aws")
	}

	return p.logger
}
