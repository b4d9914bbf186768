package cli

import (
	"github.com/convox/events/sdk"
	"github.com/convox/stdcli"
)

type HandlerFunc func(sdk.Interface, *stdcli.Context) error

var (
	flagEndpoint = stdcli.StringFlag("endpoint", "e", "api endpoint")
	flagName     = stdcli.StringFlag("name", "n", "file name sent with the upload")
	flagToken    = stdcli.StringFlag("token", "t", "bearer token")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}
