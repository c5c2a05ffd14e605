// Package codec names the payload encodings a cluster report can use.
//
// A report stores its codec name in the header, so the reader picks the
// decoder from the blob itself and the default can change freely.
package codec

import (
	"encoding/json"
	"slices"

	gojson "github.com/goccy/go-json"
)

// Codec turns a report snapshot into bytes and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

type funcCodec struct {
	name      string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func (c funcCodec) Marshal(v any) ([]byte, error)      { return c.marshal(v) }
func (c funcCodec) Unmarshal(data []byte, v any) error { return c.unmarshal(data, v) }
func (c funcCodec) Name() string                       { return c.name }

var (
	// JSON uses encoding/json.
	JSON Codec = funcCodec{name: "json", marshal: json.Marshal, unmarshal: json.Unmarshal}
	// GoJSON uses github.com/goccy/go-json. Its output decodes with JSON and vice versa.
	GoJSON Codec = funcCodec{name: "go-json", marshal: gojson.Marshal, unmarshal: gojson.Unmarshal}

	// Default encodes new reports.
	Default = GoJSON
)

var builtin = []Codec{JSON, GoJSON}

// ByName returns the built-in codec stored under name.
func ByName(name string) (Codec, bool) {
	i := slices.IndexFunc(builtin, func(c Codec) bool { return c.Name() == name })
	if i < 0 {
		return nil, false
	}
	return builtin[i], true
}

// Names lists the built-in codec names.
func Names() []string {
	names := make([]string, len(builtin))
	for i, c := range builtin {
		names[i] = c.Name()
	}
	return names
}
