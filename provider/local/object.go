package local

import (
	"bytes"
	"fmt"
	"io"

	"github.com/boltdb/bolt"
	"github.com/convox/events/pkg/structs"
)

func (p *Provider) ObjectStore(key string, r io.Reader, opts structs.ObjectStoreOptions) (*structs.Object, error) {
	log := p.logger.At("ObjectStore").Namespace("key=%q", key).Start()

	if key == "" {
		return nil, log.Error(fmt.Errorf("key must not be blank"))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, log.Error(err)
	}

	// keys contain slashes so they live flat in one bucket
	err = p.storageBucket(bucketObjects, func(bucket *bolt.Bucket) error {
		return bucket.Put([]byte(key), data)
	})
	if err != nil {
		return nil, log.Error(err)
	}

	log.Successf("bytes=%d", len(data))

	return &structs.Object{Key: key, Url: fmt.Sprintf("object://%s", key)}, nil
}

func (p *Provider) ObjectFetch(key string) (io.ReadCloser, error) {
	var data []byte

	err := p.storageView(bucketObjects, func(bucket *bolt.Bucket) error {
		if bucket != nil {
			if v := bucket.Get([]byte(key)); v != nil {
				data = append([]byte{}, v...)
			}
		}
		if data == nil {
			return fmt.Errorf("no such key: %s", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}
