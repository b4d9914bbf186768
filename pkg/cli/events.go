package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/convox/events/pkg/events"
	"github.com/convox/events/pkg/record"
	"github.com/convox/events/pkg/structs"
	"github.com/convox/events/sdk"
	"github.com/convox/stdcli"
)

func init() {
	register("get", "get an event", Get, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagEndpoint, flagToken},
		Usage:    "<id>",
		Validate: stdcli.Args(1),
	})

	registerWithoutProvider("decode", "decode a stored event record", Decode, stdcli.CommandOptions{
		Usage:    "<file.json>",
		Validate: stdcli.Args(1),
	})
}

func Get(client sdk.Interface, c *stdcli.Context) error {
	e, err := client.EventGet(c.Arg(0))
	if err != nil {
		return err
	}

	return eventInfo(c, e)
}

// Decode reads a raw record in table json form and prints the event it maps to
func Decode(_ sdk.Interface, c *stdcli.Context) error {
	data, err := os.ReadFile(c.Arg(0))
	if err != nil {
		return err
	}

	var item record.Item

	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}

	e, err := events.EventFromItem(item)
	if err != nil {
		return err
	}

	return eventInfo(c, e)
}

func eventInfo(c *stdcli.Context, e *structs.Event) error {
	i := c.Info()

	i.Add("Id", e.Id.String())
	i.Add("Title", localized(e.Title))
	i.Add("Description", localized(e.Description))
	i.Add("Creator", e.Creator)
	i.Add("Date", e.EventDate.UTC().Format(time.RFC3339))
	i.Add("Signup Ends", e.SignupEndDate.UTC().Format(time.RFC3339))
	i.Add("Location", location(e.Location))
	i.Add("Contact", contact(e.Contact))

	if e.Limit != nil {
		i.Add("Limit", fmt.Sprintf("%d", *e.Limit))
	}

	if e.Image != nil {
		i.Add("Image", e.Image.String())
	}

	if len(e.Photos) > 0 {
		photos := make([]string, len(e.Photos))
		for j, p := range e.Photos {
			photos[j] = p.String()
		}
		i.Add("Photos", strings.Join(photos, "\n"))
	}

	if e.MeetupLocation != nil {
		i.Add("Meetup", location(*e.MeetupLocation))
	}

	if e.MeetupTime != nil {
		i.Add("Meetup Time", e.MeetupTime.UTC().Format(time.RFC3339))
	}

	return i.Print()
}

func localized(m map[string]string) string {
	langs := make([]string, 0, len(m))

	for l := range m {
		langs = append(langs, l)
	}

	sort.Strings(langs)

	lines := make([]string, len(langs))

	for j, l := range langs {
		lines[j] = fmt.Sprintf("%s: %s", l, m[l])
	}

	return strings.Join(lines, "\n")
}

func location(l structs.Location) string {
	if l.Link == "" {
		return l.Name
	}

	return fmt.Sprintf("%s <%s>", l.Name, l.Link)
}

func contact(ct structs.Contact) string {
	parts := []string{ct.Email}

	if ct.Phone != nil {
		parts = append(parts, *ct.Phone)
	}

	if ct.Organizer != nil {
		parts = append(parts, *ct.Organizer)
	}

	return strings.Join(parts, ", ")
}
