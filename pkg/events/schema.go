package events

import (
	"github.com/convox/events/pkg/record"
	"github.com/convox/events/pkg/structs"
)

// stored column names; renaming one is a table migration
const (
	ColumnId               = "PK"
	ColumnEventDate        = "SK"
	ColumnCreator          = "EventCreator"
	ColumnDescription      = "Description"
	ColumnTitle            = "Title"
	ColumnParticipantLimit = "ParticipantLimit"
	ColumnContact          = "Contact"
	ColumnSignupEndDate    = "SignupEndDate"
	ColumnPhotos           = "Photoes"
	ColumnImage            = "Image"
	ColumnLocation         = "Location"
	ColumnMeetupLocation   = "MeetupLocation"
	ColumnMeetupTime       = "MeetupTime"
)

// Schema is the event column table in decode order
var Schema = record.Schema[structs.Event]{
	{Name: ColumnId, Variant: record.VariantString, Required: true, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Id, err = record.Delimited(i, ColumnId, record.ParseUUID)
		return
	}},
	{Name: ColumnSignupEndDate, Variant: record.VariantString, Required: true, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.SignupEndDate, err = record.Time(i, ColumnSignupEndDate)
		return
	}},
	{Name: ColumnEventDate, Variant: record.VariantString, Required: true, Decode: func(i record.Item, e *structs.Event) (err error) {
		if e.EventDate, err = record.DelimitedTime(i, ColumnEventDate); err != nil {
			return
		}
		e.SortKey, err = record.String(i, ColumnEventDate)
		return
	}},
	{Name: ColumnCreator, Variant: record.VariantString, Required: true, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Creator, err = record.String(i, ColumnCreator)
		return
	}},
	{Name: ColumnDescription, Variant: record.VariantString, Required: true, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Description, err = record.Nested[map[string]string](i, ColumnDescription)
		return
	}},
	{Name: ColumnTitle, Variant: record.VariantString, Required: true, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Title, err = record.Nested[map[string]string](i, ColumnTitle)
		return
	}},
	{Name: ColumnParticipantLimit, Variant: record.VariantNumber, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Limit, err = record.OptionalScalar(i, ColumnParticipantLimit, record.VariantNumber, record.ParseUint16)
		return
	}},
	{Name: ColumnContact, Variant: record.VariantString, Required: true, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Contact, err = record.Nested[structs.Contact](i, ColumnContact)
		return
	}},
	{Name: ColumnLocation, Variant: record.VariantString, Required: true, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Location, err = record.Nested[structs.Location](i, ColumnLocation)
		return
	}},
	{Name: ColumnImage, Variant: record.VariantString, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Image, err = record.OptionalScalar(i, ColumnImage, record.VariantString, record.ParseUUID)
		return
	}},
	{Name: ColumnPhotos, Variant: record.VariantStringSet, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.Photos, err = record.StringSet(i, ColumnPhotos, record.ParseUUID)
		return
	}},
	{Name: ColumnMeetupLocation, Variant: record.VariantString, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.MeetupLocation, err = record.OptionalNested[structs.Location](i, ColumnMeetupLocation)
		return
	}},
	{Name: ColumnMeetupTime, Variant: record.VariantString, Decode: func(i record.Item, e *structs.Event) (err error) {
		e.MeetupTime, err = record.OptionalTime(i, ColumnMeetupTime)
		return
	}},
}

// EventFromItem decodes one stored record into a complete event
func EventFromItem(item record.Item) (*structs.Event, error) {
	return Schema.Decode(item)
}
