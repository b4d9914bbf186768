package local

import (
	"fmt"
	"strings"

	"github.com/boltdb/bolt"
)

const (
	bucketEvents  = "events"
	bucketObjects = "objects"
)

type BucketFunc func(bucket *bolt.Bucket) error

// storageBucket runs fn against the nested bucket at key inside a write
// transaction, creating buckets along the way
func (p *Provider) storageBucket(key string, fn BucketFunc) error {
	if err := p.Context().Err(); err != nil {
		return err
	}

	tx, err := p.db.Begin(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cur, err := walkCreate(tx, key)
	if err != nil {
		return err
	}

	if err := fn(cur); err != nil {
		return err
	}

	return tx.Commit()
}

// storageView runs fn read only. fn gets a nil bucket when key does not exist.
func (p *Provider) storageView(key string, fn BucketFunc) error {
	if err := p.Context().Err(); err != nil {
		return err
	}

	return p.db.View(func(tx *bolt.Tx) error {
		parts := strings.Split(key, "/")

		cur := tx.Bucket([]byte(parts[0]))

		for _, kp := range parts[1:] {
			if cur == nil {
				break
			}
			cur = cur.Bucket([]byte(kp))
		}

		return fn(cur)
	})
}

func (p *Provider) storageRead(key string) ([]byte, error) {
	path, name, err := storageKeyParts(key)
	if err != nil {
		return nil, err
	}

	var data []byte

	err = p.storageView(path, func(bucket *bolt.Bucket) error {
		if bucket != nil {
			if v := bucket.Get([]byte(name)); v != nil {
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

	return data, nil
}

func (p *Provider) storageStore(key string, data []byte) error {
	path, name, err := storageKeyParts(key)
	if err != nil {
		return err
	}

	return p.storageBucket(path, func(bucket *bolt.Bucket) error {
		return bucket.Put([]byte(name), data)
	})
}

// storageValues returns every value directly under key in key order
func (p *Provider) storageValues(key string) ([][]byte, error) {
	values := [][]byte{}

	err := p.storageView(key, func(bucket *bolt.Bucket) error {
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			if v != nil {
				values = append(values, append([]byte{}, v...))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

func walkCreate(tx *bolt.Tx, key string) (*bolt.Bucket, error) {
	parts := strings.Split(key, "/")

	cur, err := tx.CreateBucketIfNotExists([]byte(parts[0]))
	if err != nil {
		return nil, err
	}

	for _, kp := range parts[1:] {
		b, err := cur.CreateBucketIfNotExists([]byte(kp))
		if err != nil {
			return nil, err
		}

		cur = b
	}

	return cur, nil
}

func storageKeyParts(key string) (string, string, error) {
	parts := strings.Split(key, "/")

	if len(parts) < 2 {
		return "", "", fmt.Errorf("cannot pop key: %s", key)
	}

	return strings.Join(parts[0:len(parts)-1], "/"), parts[len(parts)-1], nil
}
