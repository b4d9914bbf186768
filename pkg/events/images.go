package events

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/convox/events/pkg/images"
	"github.com/convox/events/pkg/options"
	"github.com/convox/events/pkg/structs"
	uuid "github.com/satori/go.uuid"
)

// UploadReader yields uploads one at a time and returns io.EOF when done
type UploadReader interface {
	Next() (*images.Upload, error)
}

type Images struct {
	Provider structs.Provider
	Queries  *Queries
	Prefix   string

	// Primary accepts the formats allowed for an event's main image
	Primary *images.Normalizer

	// Gallery accepts every supported format
	Gallery *images.Normalizer
}

func NewImages(p structs.Provider, prefix string) *Images {
	return &Images{
		Provider: p,
		Queries:  NewQueries(p),
		Prefix:   prefix,
		Primary:  images.NewNormalizer(images.FormatJPEG, images.FormatPNG),
		Gallery:  images.NewNormalizer(),
	}
}

// ImagePut normalizes one upload, stores it and makes it the event's image
func (i *Images) ImagePut(ctx context.Context, id uuid.UUID, subject string, u images.Upload) (*images.Encoded, error) {
	log := Logger.At("ImagePut").Namespace("id=%s", id).Start()

	e, err := i.owned(ctx, id, subject)
	if err != nil {
		return nil, log.Error(err)
	}

	enc, err := i.Primary.Process(u)
	if err != nil {
		return nil, log.Error(err)
	}

	if err := i.store(ctx, id, enc); err != nil {
		return nil, log.Error(err)
	}

	value := &dynamodb.AttributeValue{S: aws.String(enc.Id.String())}

	if err := i.Provider.WithContext(ctx).EventUpdate(e.Key(), ColumnImage, value, structs.EventUpdateOptions{}); err != nil {
		return nil, log.Error(&Error{Kind: DatabaseQueryFailed, Id: id, Err: err})
	}

	log.Successf("image=%s", enc.Id)

	return enc, nil
}

// ImagesAdd normalizes every upload before storing any of them, then adds
// the stored ids to the event's photo set.
func (i *Images) ImagesAdd(ctx context.Context, id uuid.UUID, subject string, r UploadReader) ([]*images.Encoded, error) {
	log := Logger.At("ImagesAdd").Namespace("id=%s", id).Start()

	e, err := i.owned(ctx, id, subject)
	if err != nil {
		return nil, log.Error(err)
	}

	encs := []*images.Encoded{}

	for {
		u, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, log.Error(err)
		}

		enc, err := i.Gallery.Process(*u)
		if err != nil {
			return nil, log.Error(err)
		}

		encs = append(encs, enc)
	}

	if len(encs) == 0 {
		return encs, nil
	}

	ids := make([]string, len(encs))

	for j, enc := range encs {
		if err := i.store(ctx, id, enc); err != nil {
			return nil, log.Error(err)
		}

		ids[j] = enc.Id.String()
	}

	value := &dynamodb.AttributeValue{SS: aws.StringSlice(ids)}

	if err := i.Provider.WithContext(ctx).EventUpdate(e.Key(), ColumnPhotos, value, structs.EventUpdateOptions{Append: options.Bool(true)}); err != nil {
		return nil, log.Error(&Error{Kind: DatabaseQueryFailed, Id: id, Err: err})
	}

	log.Successf("images=%d", len(encs))

	return encs, nil
}

func (i *Images) owned(ctx context.Context, id uuid.UUID, subject string) (*structs.Event, error) {
	e, err := i.Queries.EventGet(ctx, id)
	if err != nil {
		return nil, err
	}

	if !e.OwnedBy(subject) {
		return nil, &Error{Kind: NotEventOwner, Id: id}
	}

	return e, nil
}

func (i *Images) store(ctx context.Context, id uuid.UUID, enc *images.Encoded) error {
	opts := structs.ObjectStoreOptions{ContentType: options.String(string(images.FormatAVIF))}

	if _, err := i.Provider.WithContext(ctx).ObjectStore(enc.Key(i.Prefix, id), bytes.NewReader(enc.Data), opts); err != nil {
		return &images.Error{Kind: images.StorageError, Image: enc.Name, Err: err}
	}

	return nil
}
