package slashfill

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Interaction is the subset of an autocomplete interaction payload this
// package consumes: the command path and the focused option.
type Interaction struct {
	// ID is the interaction id, passed through for the caller's correlation.
	ID string
	// Path is the command name followed by any subcommand-group/subcommand
	// segments leading to the focused option.
	Path []string

	focusedName string
	focusedVal  Value
	hasFocused  bool
}

// ParseInteraction extracts the command path and focused option from a raw
// interaction payload. Option values stay untouched structured values; no
// parsing into parameter types happens here.
func ParseInteraction(payload []byte) (*Interaction, error) {
	if !gjson.ValidBytes(payload) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(payload)
	data := root.Get("data")
	name := data.Get("name").String()
	if name == "" {
		return nil, ErrMalformedInteraction
	}

	it := &Interaction{
		ID:   root.Get("id").String(),
		Path: []string{name},
	}
	it.walk(data.Get("options"))
	return it, nil
}

// walk descends through subcommand groups and subcommands until it finds the
// focused option. Autocomplete payloads carry at most one focused option.
func (it *Interaction) walk(options gjson.Result) {
	options.ForEach(func(_, opt gjson.Result) bool {
		switch opt.Get("type").Int() {
		case optionTypeSubCommand, optionTypeSubCommandGroup:
			depth := len(it.Path)
			it.Path = append(it.Path, opt.Get("name").String())
			it.walk(opt.Get("options"))
			if !it.hasFocused {
				// fruitless branch, drop it from the path
				it.Path = it.Path[:depth]
			}
			return !it.hasFocused
		}
		if opt.Get("focused").Bool() {
			it.focusedName = opt.Get("name").String()
			it.focusedVal = FromResult(opt.Get("value"))
			it.hasFocused = true
			return false
		}
		return true
	})
}

// Command returns the full command path, space separated.
func (it *Interaction) Command() string {
	return strings.Join(it.Path, " ")
}

// Focused returns the focused option's name and raw value. ok is false when
// the payload carried no focused option.
func (it *Interaction) Focused() (name string, value Value, ok bool) {
	return it.focusedName, it.focusedVal, it.hasFocused
}
