package cli_test

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/convox/events/pkg/cli"
	"github.com/convox/events/pkg/images"
	mocksdk "github.com/convox/events/pkg/mock/sdk"
	"github.com/convox/events/pkg/structs"
	"github.com/convox/events/sdk"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImagePut(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("EventImagePut", fxId, mock.AnythingOfType("sdk.Image")).Return(&structs.ImagePutResult{ImageId: "img1"}, nil).Run(func(args mock.Arguments) {
			img := args.Get(1).(sdk.Image)
			require.Equal(t, "cover.png", img.Name)
			require.Equal(t, "image/png", img.ContentType)
			data, err := io.ReadAll(img.Body)
			require.NoError(t, err)
			require.Equal(t, "pngdata", string(data))
		})

		res, err := testExecute(e, "image put "+fxId+" testdata/cover.png", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Uploading image... OK, img1"})
	})
}

func TestImagePutName(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("EventImagePut", fxId, mock.AnythingOfType("sdk.Image")).Return(&structs.ImagePutResult{ImageId: "img1"}, nil).Run(func(args mock.Arguments) {
			require.Equal(t, "poster.png", args.Get(1).(sdk.Image).Name)
		})

		res, err := testExecute(e, "image put "+fxId+" testdata/cover.png --name poster.png", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStdout(t, []string{"Uploading image... OK, img1"})
	})
}

func TestImagePutError(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		i.On("EventImagePut", fxId, mock.AnythingOfType("sdk.Image")).Return(nil, fmt.Errorf("image is too small: cover.png"))

		res, err := testExecute(e, "image put "+fxId+" testdata/cover.png", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: image is too small: cover.png"})
		res.RequireStdout(t, []string{"Uploading image... "})
	})
}

func TestImagePutUnknownType(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		res, err := testExecute(e, "image put "+fxId+" testdata/notes.txt", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: unknown image type: notes.txt"})
		res.RequireStdout(t, []string{""})
	})
}

func TestImagesAdd(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		res := &structs.ImagesAddResult{Event: fxId, Images: []string{"x.avif", "y.avif"}}

		i.On("EventImagesAdd", fxId, mock.AnythingOfType("[]sdk.Image")).Return(res, nil).Run(func(args mock.Arguments) {
			imgs := args.Get(1).([]sdk.Image)
			require.Len(t, imgs, 2)
			require.Equal(t, "a.jpg", imgs[0].Name)
			require.Equal(t, "image/jpeg", imgs[0].ContentType)
			require.Equal(t, "b.avif", imgs[1].Name)
			require.Equal(t, "image/avif", imgs[1].ContentType)
		})

		r, err := testExecute(e, "images add "+fxId+" testdata/a.jpg testdata/b.avif", nil)
		require.NoError(t, err)
		require.Equal(t, 0, r.Code)
		r.RequireStderr(t, []string{""})
		r.RequireStdout(t, []string{
			"Adding 2 images... OK",
			"x.avif",
			"y.avif",
		})
	})
}

func TestImagesAddMissingFile(t *testing.T) {
	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		res, err := testExecute(e, "images add "+fxId+" testdata/a.jpg testdata/missing.png", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: open testdata/missing.png: no such file or directory"})
	})
}

func TestNormalize(t *testing.T) {
	defer cli.SetNormalizer(func() *images.Normalizer {
		n := images.NewNormalizer()
		n.Encoder = func(w io.Writer, img image.Image) error {
			_, err := w.Write([]byte("avif"))
			return err
		}
		return n
	})()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.avif")

	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 1600, 900))))
	require.NoError(t, f.Close())

	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		res, err := testExecute(e, fmt.Sprintf("normalize %s %s", in, out), nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		require.Equal(t, 5, res.StdoutLines())
		require.Equal(t, "Normalizing in.png... OK", res.StdoutLine(0))
		require.Equal(t, "Output      "+out, res.StdoutLine(1))
		require.Equal(t, "Dimensions  1280x720", res.StdoutLine(2))
		require.Regexp(t, `^Size        .+ -> 4 B$`, res.StdoutLine(3))
		require.Equal(t, "Encoded     yes", res.StdoutLine(4))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, "avif", string(data))
	})
}

func TestNormalizeTooSmall(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")

	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 100, 100))))
	require.NoError(t, f.Close())

	testClient(t, func(e *cli.Engine, i *mocksdk.Interface) {
		res, err := testExecute(e, fmt.Sprintf("normalize %s %s", in, filepath.Join(dir, "out.avif")), nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: in.png: image is smaller than 800x800"})
	})
}
