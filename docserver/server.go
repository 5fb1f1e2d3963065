// Package docserver serves built documents over HTTP.
//
// A Server rebuilds on every request, so it always reflects the units'
// current declarations:
//
//	srv, err := docserver.New(docserver.Config{BasePath: "/docs"}, units)
//	if err != nil {
//		log.Fatal(err)
//	}
//	http.Handle("/docs/", srv)
//
// GET {base}/ returns the root document and GET {base}/apis/{resource}
// returns a Swagger 1.2 api declaration. Add ?format=yaml, or send
// Accept: application/yaml, for YAML output.
package docserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/erraggy/oasblocks"
	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/oaserrors"
)

// Server is an http.Handler serving the documents built from a set of
// units.
type Server struct {
	cfg   Config
	units []any
	opts  []builder.Option
	mux   *http.ServeMux
}

// New validates cfg and returns a Server for units.
func New(cfg Config, units []any) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	s := &Server{
		cfg:   cfg,
		units: units,
		opts: []builder.Option{
			builder.WithLogger(cfg.Logger),
			builder.WithCollisionStrategy(aggregator.CollisionStrategy(cfg.CollisionStrategy)),
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("GET "+cfg.BasePath+"/{$}", s.handleRoot)
	s.mux.HandleFunc("GET "+cfg.BasePath+"/apis/{resource}", s.handleAPI)
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Server", oasblocks.UserAgent())
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	doc, err := builder.BuildRootDocument(s.units, s.opts...)
	s.respond(w, r, doc, err)
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := builder.BuildAPIDeclaration(r.PathValue("resource"), s.units, s.opts...)
	s.respond(w, r, doc, err)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, doc *builder.Document, err error) {
	if err != nil {
		status := statusFor(err)
		s.cfg.Logger.Warn("document build failed", "path", r.URL.Path, "status", status, "error", err)
		writeError(w, status, err)
		return
	}

	var (
		data        []byte
		contentType string
	)
	if s.format(r) == FormatYAML {
		data, err = doc.MarshalYAML()
		contentType = "application/yaml"
	} else {
		data, err = doc.MarshalJSON()
		contentType = "application/json"
	}
	if err != nil {
		s.cfg.Logger.Error("document encoding failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
	s.cfg.Logger.Debug("served document", "path", r.URL.Path, "dialect", doc.Dialect.String(), "bytes", len(data))
}

func (s *Server) format(r *http.Request) string {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case FormatJSON:
		return FormatJSON
	case FormatYAML:
		return FormatYAML
	}
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "yaml") {
		return FormatYAML
	}
	if strings.Contains(accept, "json") {
		return FormatJSON
	}
	return s.cfg.DefaultFormat
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, oaserrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, oaserrors.ErrNotSupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
