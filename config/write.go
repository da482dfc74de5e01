package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/epa-st/ppb/encode"
	"github.com/epa-st/ppb/ir"
)

// DefaultNode builds the default config document.
func DefaultNode() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "default_server", Val: ir.FromString(DefaultURL)},
		{Key: "default_token", Val: ir.FromString("")},
		{Key: "servers", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "local", Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: "url", Val: ir.FromString("http://127.0.0.1:5000")},
				{Key: "token", Val: ir.FromString("")},
			})},
		})},
	})
}

// WriteDefault writes the default config to path with restrictive
// permissions, creating the parent directory if needed. It reports
// whether a file was written: an existing config is left alone.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return false, err
		}
	}
	text, err := encode.String(DefaultNode(), encode.EncodeFormatted(true))
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o600); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureDefault creates the per-user default config when it is missing.
// It only ever touches the default location under ~/.ppb, never a
// custom or local path.
func EnsureDefault(path string, verbose io.Writer) {
	if path == "" {
		return
	}
	if !strings.HasSuffix(path, string(os.PathSeparator)+filepath.Join(homeDir, homeName)) {
		return
	}
	if _, err := os.Stat(path); err == nil {
		return
	}
	created, err := WriteDefault(path)
	if err != nil {
		notef(verbose, "could not write default config to %s", path)
		return
	}
	if created {
		notef(verbose, "created default config at %s", path)
	}
}
