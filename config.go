package parsekit

import (
	"fmt"
	"io"
	"sort"
)

// Config holds the settings read by ParseWithConfig and by the
// command line tools.  Settings are typed: once a path holds a bool
// it only accepts bools, and reading it as anything else panics.
type Config struct {
	settings map[string]any
}

// NewConfig creates a new configuration object primed with all the
// default values expected by ParseWithConfig and by the printers.
func NewConfig() *Config {
	c := &Config{settings: map[string]any{}}
	// fail if the parser stops before the end of the input
	c.SetBool("parse.require_eof", false)
	// drop Empty nodes from the output tree
	c.SetBool("parse.clean_tree", false)
	// show the expected parser and backtrace of errors
	c.SetBool("display.verbose", false)
	// paint errors and trees with terminal colors
	c.SetBool("display.color", false)
	return c
}

// Keys returns the setting paths in alphabetical order
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.settings))
	for k := range c.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Debug writes all the settings, their values and types to `w`
func (c *Config) Debug(w io.Writer) {
	fmt.Fprintln(w, "Configuration")

	keys := c.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		v := c.settings[k]
		fmt.Fprintf(w, "%-*s : %v (%T)\n", width, k, v, v)
	}
}

func (c *Config) SetBool(path string, v bool)     { assign(c, path, v) }
func (c *Config) SetInt(path string, v int)       { assign(c, path, v) }
func (c *Config) SetString(path string, v string) { assign(c, path, v) }

func (c *Config) GetBool(path string) bool     { return lookup[bool](c, path) }
func (c *Config) GetInt(path string) int       { return lookup[int](c, path) }
func (c *Config) GetString(path string) string { return lookup[string](c, path) }

// assign panics when `path` already holds a value of another type,
// that's always a programming error
func assign[V any](c *Config, path string, v V) {
	if old, ok := c.settings[path]; ok {
		if _, same := old.(V); !same {
			panic(fmt.Sprintf("Can't assign `%T` to setting `%s` of type `%T`", v, path, old))
		}
	}
	c.settings[path] = v
}

func lookup[V any](c *Config, path string) V {
	v, ok := c.settings[path]
	if !ok {
		panic(fmt.Sprintf("Setting `%s` does not exist", path))
	}
	typed, ok := v.(V)
	if !ok {
		panic(fmt.Sprintf("Can't retrieve `%T` from setting `%s` of type `%T`", typed, path, v))
	}
	return typed
}
