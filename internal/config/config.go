// Package config loads engine tunables from a TOML file and can watch
// the file for changes.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Options are the engine tunables.
type Options struct {
	// JumpHistoryLimit bounds the jump list. Zero disables jump history.
	JumpHistoryLimit int `toml:"jump_history_limit"`
	// ChangeHistoryLimit bounds the change list. Zero disables it.
	ChangeHistoryLimit int `toml:"change_history_limit"`
	// ScrollOverlap is the number of rows kept visible across a full-page
	// scroll.
	ScrollOverlap int `toml:"scroll_overlap"`
	// HalfPage overrides the half-page scroll distance. Zero means half
	// the viewport.
	HalfPage int `toml:"half_page"`
}

// Default returns the built-in option values.
func Default() Options {
	return Options{
		JumpHistoryLimit:   100,
		ChangeHistoryLimit: 100,
		ScrollOverlap:      2,
		HalfPage:           0,
	}
}

// Load reads options from a TOML file. A missing file is not an error;
// the defaults are returned. A malformed file is an error.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	opts, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Parse reads options from raw TOML.
func Parse(data []byte) (Options, error) {
	opts := Default()
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return opts.normalize(), nil
}

// normalize clamps nonsense values back to sane ones.
func (o Options) normalize() Options {
	if o.JumpHistoryLimit < 0 {
		o.JumpHistoryLimit = 0
	}
	if o.ChangeHistoryLimit < 0 {
		o.ChangeHistoryLimit = 0
	}
	if o.ScrollOverlap < 0 {
		o.ScrollOverlap = 0
	}
	if o.HalfPage < 0 {
		o.HalfPage = 0
	}
	return o
}
