package local_test

import (
	"io"
	"strings"
	"testing"

	"github.com/convox/events/pkg/options"
	"github.com/convox/events/pkg/structs"
	"github.com/stretchr/testify/require"
)

func TestObjectStoreFetch(t *testing.T) {
	p := testProvider(t)

	o, err := p.ObjectStore("events/abc/image.avif", strings.NewReader("avifdata"), structs.ObjectStoreOptions{ContentType: options.String("image/avif")})
	require.NoError(t, err)
	require.Equal(t, &structs.Object{Key: "events/abc/image.avif", Url: "object://events/abc/image.avif"}, o)

	r, err := p.ObjectFetch("events/abc/image.avif")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "avifdata", string(data))
}

func TestObjectFetchMissing(t *testing.T) {
	p := testProvider(t)

	_, err := p.ObjectFetch("events/none")
	require.EqualError(t, err, "no such key: events/none")
}

func TestObjectStoreBlankKey(t *testing.T) {
	p := testProvider(t)

	_, err := p.ObjectStore("", strings.NewReader("x"), structs.ObjectStoreOptions{})
	require.EqualError(t, err, "key must not be blank")
}
