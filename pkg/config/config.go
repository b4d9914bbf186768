package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/convox/events/pkg/helpers"
	"github.com/joho/godotenv"
)

type Config struct {
	Provider string

	Table        string
	Bucket       string
	BucketPrefix string
	Region       string
	Endpoint     string

	ContentCreatorsGroup string

	LocalDatabase string

	Environment  string
	RollbarToken string
	SegmentKey   string

	Port string
}

// FromEnv reads configuration from the environment after loading any .env
// files found. Values already in the environment take precedence.
func FromEnv(files ...string) (*Config, error) {
	if err := loadEnvFiles(files...); err != nil {
		return nil, err
	}

	c := &Config{
		Provider:             helpers.Coalesce(os.Getenv("PROVIDER"), "aws"),
		Table:                TableName(helpers.Coalesce(os.Getenv("EVENT_TABLE_ARN"), os.Getenv("EVENT_TABLE"))),
		Bucket:               os.Getenv("EVENT_IMAGES_BUCKET_NAME"),
		BucketPrefix:         helpers.Coalesce(os.Getenv("EVENT_IMAGES_BUCKET_PREFIX"), "events"),
		Region:               helpers.Coalesce(os.Getenv("AWS_REGION"), "us-east-1"),
		Endpoint:             os.Getenv("AWS_ENDPOINT"),
		ContentCreatorsGroup: os.Getenv("CONTENT_CREATORS_GROUP_NAME"),
		LocalDatabase:        helpers.Coalesce(os.Getenv("LOCAL_DATABASE"), "events.db"),
		Environment:          helpers.Coalesce(os.Getenv("ENVIRONMENT"), "development"),
		RollbarToken:         os.Getenv("ROLLBAR_TOKEN"),
		SegmentKey:           os.Getenv("SEGMENT_WRITE_KEY"),
		Port:                 helpers.Coalesce(os.Getenv("PORT"), "5000"),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Validate() error {
	missing := []string{}

	if c.ContentCreatorsGroup == "" {
		missing = append(missing, "CONTENT_CREATORS_GROUP_NAME")
	}

	switch c.Provider {
	case "aws":
		if c.Table == "" {
			missing = append(missing, "EVENT_TABLE_ARN")
		}
		if c.Bucket == "" {
			missing = append(missing, "EVENT_IMAGES_BUCKET_NAME")
		}
	case "local":
		if c.LocalDatabase == "" {
			missing = append(missing, "LOCAL_DATABASE")
		}
	default:
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

// TableName accepts either a bare table name or a table arn
func TableName(s string) string {
	if i := strings.LastIndex(s, ":table/"); i > -1 {
		return s[i+len(":table/"):]
	}

	return s
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	found := []string{}

	for _, f := range files {
		if helpers.FileExists(f) {
			found = append(found, f)
		}
	}

	if len(found) == 0 {
		return nil
	}

	return godotenv.Load(found...)
}
