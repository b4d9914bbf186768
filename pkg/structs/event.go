package structs

import (
	"fmt"
	"time"

	uuid "github.com/satori/go.uuid"
)

type Event struct {
	Id             uuid.UUID         `json:"id"`
	Title          map[string]string `json:"title"`
	Description    map[string]string `json:"description"`
	Creator        string            `json:"adminId"`
	SignupEndDate  time.Time         `json:"signupEndDate"`
	EventDate      time.Time         `json:"eventDate"`
	Location       Location          `json:"location"`
	Contact        Contact           `json:"contact"`
	Limit          *uint16           `json:"limit"`
	Image          *uuid.UUID        `json:"image"`
	Photos         []uuid.UUID       `json:"photos"`
	MeetupLocation *Location         `json:"meetupLocation"`
	MeetupTime     *time.Time        `json:"meetupTime"`

	// raw sort key as stored, needed to address the record on update
	SortKey string `json:"-"`
}

type Contact struct {
	Email        string  `json:"email"`
	EmailVisible bool    `json:"emailVisible"`
	Phone        *string `json:"phone,omitempty"`
	Organizer    *string `json:"organizer,omitempty"`
}

func (c Contact) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("email required")
	}
	return nil
}

type Location struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

func (l Location) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("name required")
	}
	return nil
}

// EventKey addresses one stored event record
type EventKey struct {
	PartitionKey string
	SortKey      string
}

func (e *Event) Key() EventKey {
	return EventKey{PartitionKey: EventPartitionKey(e.Id), SortKey: e.SortKey}
}

func (e *Event) OwnedBy(subject string) bool {
	return subject != "" && e.Creator == subject
}

const (
	EventKeyPrefix     = "Event"
	EventDateKeyPrefix = "EventDate"
)

func EventPartitionKey(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", EventKeyPrefix, id)
}

func EventSortKey(t time.Time) string {
	return fmt.Sprintf("%s#%s", EventDateKeyPrefix, t.UTC().Format(time.RFC3339))
}
