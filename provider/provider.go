package provider

import (
	"fmt"

	"github.com/convox/events/pkg/config"
	"github.com/convox/events/pkg/structs"
	"github.com/convox/events/provider/aws"
	"github.com/convox/events/provider/local"
)

func FromConfig(c *config.Config) (structs.Provider, error) {
	switch c.Provider {
	case "aws":
		return aws.FromConfig(c), nil
	case "local":
		return local.FromConfig(c), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", c.Provider)
	}
}
