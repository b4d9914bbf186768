package helpers

import (
	"os"

	"github.com/convox/logger"
	"github.com/segmentio/analytics-go"
	"github.com/stvp/rollbar"
)

// Segment is nil unless a write key was configured
var Segment *analytics.Client

var segmentKey, segmentEnvironment string

func InitReporting(environment, rollbarToken, key string) {
	rollbar.Token = rollbarToken
	rollbar.Environment = environment

	segmentKey, segmentEnvironment = key, environment
	Segment = nil

	if key != "" {
		Segment = newSegment("")
	}
}

func newSegment(endpoint string) *analytics.Client {
	c := analytics.New(segmentKey)

	if segmentEnvironment == "development" {
		c.Size = 1
	}

	if endpoint != "" {
		c.Endpoint = endpoint
	}

	return c
}

// Error logs err and reports it to rollbar when a token is configured
func Error(log *logger.Logger, err error) {
	if log != nil {
		log.Error(err)
	}

	if rollbar.Token != "" {
		extra := map[string]string{
			"AWS_REGION":  os.Getenv("AWS_REGION"),
			"ENVIRONMENT": rollbar.Environment,
			"FUNCTION":    os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		}

		rollbar.Error(rollbar.ERR, err, &rollbar.Field{Name: "env", Data: extra})
	}
}

func TrackEvent(event, user string, properties map[string]interface{}) {
	if Segment == nil {
		return
	}

	Segment.Track(&analytics.Track{
		Event:      event,
		UserId:     user,
		Properties: properties,
	})
}

// FlushReporting blocks until queued reports are sent
func FlushReporting() {
	rollbar.Wait()

	if Segment != nil {
		Segment.Close()
	}
}

// FlushInvocation sends every report queued while serving one request. A
// closed segment client cannot be reused so a fresh one replaces it.
func FlushInvocation() {
	rollbar.Wait()

	if Segment == nil {
		return
	}

	endpoint := Segment.Endpoint

	Segment.Close()

	Segment = newSegment(endpoint)
}
