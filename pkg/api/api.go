package api

import (
	"fmt"
	"net/http"

	"github.com/convox/events/pkg/config"
	"github.com/convox/events/pkg/events"
	"github.com/convox/events/pkg/jwt"
	"github.com/convox/events/pkg/structs"
	"github.com/convox/events/provider"
	"github.com/convox/logger"
	"github.com/convox/stdapi"
)

var Logger = logger.New("ns=api")

type Server struct {
	*stdapi.Server
	Config   *config.Config
	Images   *events.Images
	Provider structs.Provider
	Queries  *events.Queries
}

func New(c *config.Config) (*Server, error) {
	p, err := provider.FromConfig(c)
	if err != nil {
		return nil, err
	}

	return NewWithProvider(p, c), nil
}

func NewWithProvider(p structs.Provider, c *config.Config) *Server {
	if err := p.Initialize(structs.ProviderOptions{}); err != nil {
		panic(err)
	}

	s := &Server{
		Config:   c,
		Images:   events.NewImages(p, c.BucketPrefix),
		Provider: p,
		Queries:  events.NewQueries(p),
		Server:   stdapi.New("api", "api"),
	}

	s.Router.HandleFunc("/check", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ok\n")
	})

	s.Subrouter("/api/public", func(public *stdapi.Router) {
		public.Use(s.render)
		public.Route("GET", "/event/{id}", s.EventGet)
	})

	s.Subrouter("/api/admin", func(admin *stdapi.Router) {
		admin.Use(s.render)
		admin.Use(s.authorize)
		admin.Route("PUT", "/event/{id}/image", s.EventImagePut)
		admin.Route("POST", "/event/{id}/images", s.EventImagesAdd)
	})

	return s
}

// authorize requires a bearer token from a member of the content creators group.
// The gateway in front of the service has already verified the signature.
func (s *Server) authorize(next stdapi.HandlerFunc) stdapi.HandlerFunc {
	return func(c *stdapi.Context) error {
		token, err := jwt.BearerToken(c.Header("Authorization"))
		if err != nil {
			return errUnauthorized(err)
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			return errUnauthorized(err)
		}

		if claims.Identity() == "" {
			return errUnauthorized(fmt.Errorf("token has no subject"))
		}

		if !claims.InGroup(s.Config.ContentCreatorsGroup) {
			return errForbidden(fmt.Errorf("%s is not a content creator", claims.Identity()))
		}

		c.Set("claims", claims)

		return next(c)
	}
}

func claims(c *stdapi.Context) *jwt.Claims {
	if cl, ok := c.Get("claims").(*jwt.Claims); ok {
		return cl
	}

	return &jwt.Claims{}
}
