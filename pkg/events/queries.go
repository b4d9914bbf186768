package events

import (
	"context"

	"github.com/convox/events/pkg/structs"
	"github.com/convox/logger"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var Logger = logger.New("ns=events")

type Queries struct {
	Provider structs.Provider
}

func NewQueries(p structs.Provider) *Queries {
	return &Queries{Provider: p}
}

// EventGet loads and decodes one event. A record that exists but cannot be
// decoded is reported as InvalidStoredEvent, never as NotFound.
func (q *Queries) EventGet(ctx context.Context, id uuid.UUID) (*structs.Event, error) {
	log := Logger.At("EventGet").Namespace("id=%s", id).Start()

	items, err := q.Provider.WithContext(ctx).EventQuery(structs.EventPartitionKey(id))
	if errors.Cause(err) == structs.ErrUnexpectedResponse {
		return nil, log.Error(&Error{Kind: UnknownSdkError, Id: id, Err: err})
	}
	if err != nil {
		return nil, log.Error(&Error{Kind: DatabaseQueryFailed, Id: id, Err: err})
	}

	if len(items) == 0 {
		log.Logf("state=missing")
		return nil, &Error{Kind: NotFound, Id: id}
	}

	if len(items) > 1 {
		log.Logf("records=%d", len(items))
	}

	e, err := EventFromItem(items[0])
	if err != nil {
		return nil, log.Error(&Error{Kind: InvalidStoredEvent, Id: id, Err: err})
	}

	log.Success()

	return e, nil
}
