package local

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/boltdb/bolt"
	"github.com/convox/events/pkg/config"
	"github.com/convox/events/pkg/structs"
	"github.com/convox/logger"
)

// Provider keeps events and objects in a single bolt database for
// development and tests.
type Provider struct {
	Database string

	ctx    context.Context
	db     *bolt.DB
	logger *logger.Logger
}

func FromConfig(c *config.Config) *Provider {
	return &Provider{Database: c.LocalDatabase}
}

func (p *Provider) Initialize(opts structs.ProviderOptions) error {
	var w io.Writer = os.Stdout

	if opts.Logs != nil {
		w = opts.Logs
	}

	p.logger = logger.NewWriter("ns=local", w)

	log := p.logger.At("Initialize").Namespace("database=%s", p.Database).Start()

	db, err := bolt.Open(p.Database, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return log.Error(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range []string{bucketEvents, bucketObjects} {
			if _, err := tx.CreateBucketIfNotExists([]byte(b)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return log.Error(err)
	}

	p.db = db

	return log.Success()
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

func (p *Provider) Close() error {
	if p.db == nil {
		return nil
	}

	return p.db.Close()
}
