package helpers

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/pkg/errors"
)

func AwsErrorCode(err error) string {
	if ae, ok := errors.Cause(err).(awserr.Error); ok {
		return ae.Code()
	}

	return ""
}

// AwsThrottled is true for errors worth retrying after a pause
func AwsThrottled(err error) bool {
	switch AwsErrorCode(err) {
	case "ProvisionedThroughputExceededException", "ThrottlingException", "RequestLimitExceeded", "SlowDown":
		return true
	default:
		return false
	}
}
