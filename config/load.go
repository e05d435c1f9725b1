package config

import (
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml"
	"github.com/pelletier/go-toml/query"
	"github.com/pkg/errors"
)

const envPrefix = "$"

var descendants = mustCompile(query.Compile("$..*"))

// Load reads a TOML configuration from r.
func Load(r io.Reader) (*Config, error) {
	t, err := toml.LoadReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	substitute(t)
	for _, item := range descendants.Execute(t).Values() {
		switch v := item.(type) {
		case *toml.Tree:
			substitute(v)
		case []*toml.Tree:
			for _, sub := range v {
				substitute(sub)
			}
		}
	}

	c := &Config{}
	if err := t.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return c, nil
}

// LoadFile reads a TOML configuration file; path may start with "~".
func LoadFile(path string) (*Config, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "expand %s", path)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, p)
	}
	return c, nil
}

func substitute(t *toml.Tree) {
	for _, key := range t.Keys() {
		t.Set(key, valuesOf(t.Get(key)))
	}
}

// valuesOf replaces "$NAME" strings, including inside arrays, by the variable's value.
func valuesOf(v interface{}) interface{} {
	switch v := v.(type) {
	case string:
		if strings.HasPrefix(v, envPrefix) && len(v) > 1 {
			return os.Getenv(v[1:])
		}
	case []interface{}:
		r := make([]interface{}, len(v))
		for i := range v {
			r[i] = valuesOf(v[i])
		}
		return r
	}
	return v
}

func mustCompile(q *query.Query, err error) *query.Query {
	if err != nil {
		panic(err)
	}
	return q
}
