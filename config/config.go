// Package config resolves the uploader's configuration: built-in
// defaults, overlaid by the JSON config file, overlaid by environment
// variables, overlaid by flags. The file is read through this module's
// own parser and queried through the ir accessors.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/epa-st/ppb/ir"
	"github.com/epa-st/ppb/parse"
)

const (
	DefaultURL = "https://epa.st/upload"

	// MaxSize bounds how much of a config file is read; larger files
	// are treated as unreadable.
	MaxSize = 64 << 10

	localName = ".ppb-config.json"
	homeDir   = ".ppb"
	homeName  = "config.json"
)

type Config struct {
	URL   string
	Token string
}

func Default() Config {
	return Config{URL: DefaultURL}
}

// Resolve picks the config file path: the custom path when given, else
// ./.ppb-config.json when present, else the per-user default (which may
// not exist yet). Empty means no path could be determined.
func Resolve(custom string) string {
	if custom != "" {
		return custom
	}
	if _, err := os.Stat(localName); err == nil {
		return localName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, homeDir, homeName)
}

// Load overlays the config file at path onto cfg. Server selects a
// profile under "servers" instead of the default_server/default_token
// fields. Any failure to read or parse is soft: cfg is left alone and a
// note goes to verbose when non-nil.
func Load(cfg *Config, path, server string, verbose io.Writer) {
	if path == "" {
		return
	}
	d, err := readBounded(path, MaxSize)
	if err != nil {
		notef(verbose, "config not readable at %s, using defaults", path)
		return
	}
	root, err := parse.Parse(d)
	if err != nil {
		notef(verbose, "config at %s is invalid JSON, ignoring", path)
		return
	}
	if server != "" {
		s := ir.Get(ir.Get(root, "servers"), server)
		if s.IsObject() {
			applyServer(cfg, s)
		}
		return
	}
	if u := ir.Get(root, "default_server"); u.IsString() {
		cfg.URL = u.String
	}
	if t := ir.Get(root, "default_token"); t.IsString() {
		cfg.Token = t.String
	}
}

// FromEnv overlays the PPB_URL and PPB_TOKEN environment variables.
func (c *Config) FromEnv(getenv func(string) string) {
	if v := getenv("PPB_URL"); v != "" {
		c.URL = v
	}
	if v := getenv("PPB_TOKEN"); v != "" {
		c.Token = v
	}
}

// Override overlays non-empty flag values, the highest precedence.
func (c *Config) Override(url, token string) {
	if url != "" {
		c.URL = url
	}
	if token != "" {
		c.Token = token
	}
}

func applyServer(cfg *Config, s *ir.Node) {
	if u := ir.Get(s, "url"); u.IsString() {
		cfg.URL = u.String
	}
	if t := ir.Get(s, "token"); t.IsString() {
		cfg.Token = t.String
	}
}

func readBounded(path string, maxBytes int64) ([]byte, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.Size() > maxBytes {
		return nil, fmt.Errorf("config file too large: %d bytes", st.Size())
	}
	return os.ReadFile(path)
}

func notef(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "Note: "+format+"\n", args...)
}
