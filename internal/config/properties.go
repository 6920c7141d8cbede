package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// propertiesCodec reads and writes Java-style .properties files for viper.
// Dotted keys become nested maps so config.code resolves as config -> code.
type propertiesCodec struct{}

func (propertiesCodec) Decode(b []byte, v map[string]any) error {
	p, err := properties.Load(b, properties.UTF8)
	if err != nil {
		return fmt.Errorf("parse properties: %w", err)
	}

	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		path := strings.Split(key, ".")
		parent := nested(v, path[:len(path)-1])
		parent[path[len(path)-1]] = value
	}
	return nil
}

func (propertiesCodec) Encode(v map[string]any) ([]byte, error) {
	flat := make(map[string]string)
	flatten("", v, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, k := range keys {
		if _, _, err := p.Set(k, flat[k]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := p.Write(&buf, properties.UTF8); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// nested walks path from root, creating maps as needed. A scalar sitting
// where a map is needed is replaced.
func nested(root map[string]any, path []string) map[string]any {
	m := root
	for _, k := range path {
		child, ok := m[k].(map[string]any)
		if !ok {
			child = make(map[string]any)
			m[k] = child
		}
		m = child
	}
	return m
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, val := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := val.(map[string]any); ok {
			flatten(key, child, out)
			continue
		}
		out[key] = cast.ToString(val)
	}
}

// newViper returns a viper instance that understands .properties files.
func newViper() *viper.Viper {
	registry := viper.NewCodecRegistry()
	_ = registry.RegisterCodec("properties", propertiesCodec{})
	_ = registry.RegisterCodec("props", propertiesCodec{})
	_ = registry.RegisterCodec("prop", propertiesCodec{})

	return viper.NewWithOptions(viper.WithCodecRegistry(registry))
}
