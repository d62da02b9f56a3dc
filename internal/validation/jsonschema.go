package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	dom "github.com/cuihairu/labcatalog/internal/ports"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema is a compiled JSON Schema for one request body. Errors are reported
// as a single *ports.ValidationError for the first failing field, using the
// per-field "x-messages" and the field order in "x-order".
type Schema struct {
	name     string
	schema   *gojsonschema.Schema
	order    []string
	messages map[string]map[string]string
}

type schemaMeta struct {
	Order      []string `json:"x-order"`
	Properties map[string]struct {
		Messages map[string]string `json:"x-messages"`
	} `json:"properties"`
}

// Compile parses raw as a JSON Schema document.
func Compile(name string, raw []byte) (*Schema, error) {
	var meta schemaMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	s := &Schema{name: name, schema: compiled, order: meta.Order, messages: map[string]map[string]string{}}
	for field, p := range meta.Properties {
		s.messages[field] = p.Messages
	}
	return s, nil
}

// CompileMap is Compile for a schema built in code.
func CompileMap(name string, doc map[string]any) (*Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	return Compile(name, raw)
}

var (
	loadMu sync.Mutex
	loaded = map[string]*Schema{}
)

// Load returns the embedded schema schemas/<name>.json, compiling it once.
func Load(name string) (*Schema, error) {
	loadMu.Lock()
	defer loadMu.Unlock()
	if s, ok := loaded[name]; ok {
		return s, nil
	}
	raw, err := schemaFS.ReadFile(path.Join("schemas", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("schema %s not found: %w", name, err)
	}
	s, err := Compile(name, raw)
	if err != nil {
		return nil, err
	}
	loaded[name] = s
	return s, nil
}

func MustLoad(name string) *Schema {
	s, err := Load(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Request body schemas.
var (
	Company        = MustLoad("company")
	Genre          = MustLoad("genre")
	VideoGame      = MustLoad("videogame")
	VideoGamePatch = MustLoad("videogame-patch")
)

// Validate checks body against the schema. An empty body counts as {}.
func (s *Schema) Validate(body []byte) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return dom.Invalid("", "Malformed JSON request")
	}
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return dom.Invalid("", "Malformed JSON request")
	}
	if res.Valid() {
		return nil
	}
	return s.first(res.Errors())
}

// first picks the error of the earliest field in x-order; unknown fields and
// root-level errors sort last.
func (s *Schema) first(errs []gojsonschema.ResultError) error {
	best, bestRank := errs[0], s.rank(fieldOf(errs[0]))
	for _, e := range errs[1:] {
		if r := s.rank(fieldOf(e)); r < bestRank {
			best, bestRank = e, r
		}
	}
	field := fieldOf(best)
	return dom.Invalid(field, "%s", s.message(field, best))
}

func (s *Schema) rank(field string) int {
	for i, f := range s.order {
		if f == field {
			return i
		}
	}
	return len(s.order)
}

func (s *Schema) message(field string, e gojsonschema.ResultError) string {
	if m, ok := s.messages[field][e.Type()]; ok && m != "" {
		return m
	}
	switch {
	case field == "" && e.Type() == "invalid_type":
		return "Request body must be a JSON object"
	case e.Type() == "required":
		return fmt.Sprintf("%s is required", field)
	case e.Type() == "invalid_type":
		return fmt.Sprintf("%s has an invalid type", field)
	}
	return e.Description()
}

// fieldOf names the offending property; required errors carry it in details.
func fieldOf(e gojsonschema.ResultError) string {
	if e.Type() == "required" {
		if p, ok := e.Details()["property"].(string); ok {
			return p
		}
	}
	f := e.Field()
	if f == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
		return ""
	}
	return f
}
