package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/convox/events/pkg/api"
	"github.com/convox/events/pkg/config"
	"github.com/convox/events/pkg/helpers"
	"github.com/convox/events/pkg/lambda"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	c, err := config.FromEnv(".env")
	if err != nil {
		return err
	}

	helpers.InitReporting(c.Environment, c.RollbarToken, c.SegmentKey)
	defer helpers.FlushReporting()

	s, err := api.New(c)
	if err != nil {
		return err
	}

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		h := lambda.New(s)

		// the sandbox freezes between invocations so reports are flushed per request
		awslambda.Start(func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
			defer helpers.FlushInvocation()
			return h.Serve(ctx, req)
		})

		return nil
	}

	return s.Listen("http", fmt.Sprintf(":%s", c.Port))
}
