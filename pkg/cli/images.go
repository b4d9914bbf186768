package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/convox/events/pkg/helpers"
	"github.com/convox/events/pkg/images"
	"github.com/convox/events/sdk"
	"github.com/convox/stdcli"
	humanize "github.com/dustin/go-humanize"
	pb "gopkg.in/cheggaaa/pb.v1"
)

func init() {
	register("image put", "replace the cover image of an event", ImagePut, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagEndpoint, flagName, flagToken},
		Usage:    "<id> <file>",
		Validate: stdcli.Args(2),
	})

	register("images add", "add photos to an event", ImagesAdd, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagEndpoint, flagToken},
		Usage:    "<id> <file> [file...]",
		Validate: stdcli.ArgsMin(2),
	})

	registerWithoutProvider("normalize", "convert an image to its stored form", Normalize, stdcli.CommandOptions{
		Usage:    "<file> <output>",
		Validate: stdcli.Args(2),
	})
}

func ImagePut(client sdk.Interface, c *stdcli.Context) error {
	file := c.Arg(1)

	ct, err := contentType(file)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}

	name := filepath.Base(file)

	if n := c.String("name"); n != "" {
		name = n
	}

	var r io.Reader = f

	var bar *pb.ProgressBar

	if c.Writer().IsTerminal() {
		bar = pb.New64(fi.Size())
		bar.Prefix("Uploading image")
		bar.SetUnits(pb.U_BYTES)
		bar.Output = c.Writer().Stderr
		bar.Start()
		r = bar.NewProxyReader(f)
	} else {
		c.Startf("Uploading image")
	}

	res, err := client.EventImagePut(c.Arg(0), sdk.Image{Name: name, ContentType: ct, Body: r})

	if bar != nil {
		bar.Finish()
	}

	if err != nil {
		return err
	}

	return c.OK(res.ImageId)
}

func ImagesAdd(client sdk.Interface, c *stdcli.Context) error {
	files := c.Args[1:]

	imgs := make([]sdk.Image, len(files))

	for i, file := range files {
		ct, err := contentType(file)
		if err != nil {
			return err
		}

		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()

		imgs[i] = sdk.Image{Name: filepath.Base(file), ContentType: ct, Body: f}
	}

	c.Startf("Adding <id>%d</id> images", len(imgs))

	res, err := client.EventImagesAdd(c.Arg(0), imgs)
	if err != nil {
		return err
	}

	c.OK()

	for _, name := range res.Images {
		c.Writef("%s\n", name)
	}

	return nil
}

// Normalize runs a local file through the same pipeline the api uses
func Normalize(_ sdk.Interface, c *stdcli.Context) error {
	file := c.Arg(0)

	ct, err := contentType(file)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}

	c.Startf("Normalizing <id>%s</id>", filepath.Base(file))

	enc, err := normalizer().Process(images.Upload{Name: filepath.Base(file), ContentType: ct, Body: f})
	if err != nil {
		return err
	}

	if err := helpers.WriteFile(c.Arg(1), enc.Data, 0644); err != nil {
		return err
	}

	c.OK()

	i := c.Info()

	i.Add("Output", c.Arg(1))
	i.Add("Dimensions", fmt.Sprintf("%dx%d", enc.Width, enc.Height))
	i.Add("Size", fmt.Sprintf("%s -> %s", humanize.Bytes(uint64(fi.Size())), humanize.Bytes(uint64(len(enc.Data)))))

	if enc.PassThrough {
		i.Add("Encoded", "no")
	} else {
		i.Add("Encoded", "yes")
	}

	return i.Print()
}

// overridden in tests
var normalizer = func() *images.Normalizer {
	return images.NewNormalizer()
}

func contentType(file string) (string, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".jpg", ".jpeg":
		return images.FormatJPEG.String(), nil
	case ".png":
		return images.FormatPNG.String(), nil
	case ".avif":
		return images.FormatAVIF.String(), nil
	default:
		return "", fmt.Errorf("unknown image type: %s", filepath.Base(file))
	}
}
