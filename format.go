// FILE: lixenwraith/parseit/format.go
package parseit

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/clbanning/mxj/v2"
	gojson "github.com/goccy/go-json"
	"github.com/hashicorp/hcl"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// parseFormat decodes file data of the given type into a flat-keyed map.
// Synonym types share a parser. Blank documents decode to an empty map.
func parseFormat(kind Source, data []byte) (map[string]any, error) {
	format := kind.Format()
	if format == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, kind)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return make(map[string]any), nil
	}

	var (
		out map[string]any
		err error
	)
	switch format {
	case SourceJSON:
		out, err = parseJSON(data)
	case SourceYAML:
		out, err = parseYAML(data)
	case SourceTOML:
		out, err = parseTOML(data)
	case SourceINI:
		out, err = parseINI(data)
	case SourceHCL:
		out, err = parseHCL(data)
	case SourceXML:
		out, err = parseXML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s: %w", ErrFileParse, format, err)
	}
	if out == nil {
		out = make(map[string]any)
	}

	return normalizeMap(out), nil
}

// parseJSON decodes a single JSON object. Anything after it other than
// whitespace is an error.
func parseJSON(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	decoder := gojson.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Preserve integer precision
	if err := decoder.Decode(&out); err != nil {
		return nil, err
	}

	if offset := decoder.InputOffset(); offset < int64(len(data)) {
		if rest := bytes.TrimSpace(data[offset:]); len(rest) > 0 {
			return nil, fmt.Errorf("unexpected data after top-level object at offset %d", offset)
		}
	}
	return out, nil
}

// parseYAML decodes a single YAML document; a stream holding more than one
// is rejected.
func parseYAML(data []byte) (map[string]any, error) {
	var out map[string]any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			// Comments only
			return make(map[string]any), nil
		}
		return nil, err
	}

	var next yaml.Node
	switch err := decoder.Decode(&next); {
	case err == nil:
		return nil, fmt.Errorf("expected a single document, found more")
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("second document: %w", err)
	}
	return out, nil
}

func parseTOML(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseINI puts keys of the unnamed section at the top level and every named
// section under its own name. All values are strings.
func parseINI(data []byte) (map[string]any, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for _, section := range file.Sections() {
		keys := make(map[string]any, len(section.Keys()))
		for _, key := range section.Keys() {
			keys[key.Name()] = key.Value()
		}
		if section.Name() == ini.DefaultSection {
			for k, v := range keys {
				out[k] = v
			}
			continue
		}
		out[section.Name()] = keys
	}
	return out, nil
}

func parseHCL(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := hcl.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseXML unwraps the document's root element so its children become the
// top-level keys. Leaf values are strings, attributes carry mxj's "-" prefix.
func parseXML(data []byte) (map[string]any, error) {
	doc, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for _, root := range doc {
		if children, ok := root.(map[string]any); ok {
			out = children
		}
	}
	return out, nil
}
