// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	caller  *bool
	colour  *bool
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values for each field not set in the
// receiving settings from the other settings given.
// Context key values from other are prepended.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.caller == nil && other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	if s.colour == nil && other.colour != nil {
		value := *other.colour
		s.colour = &value
	}

	if len(other.context) > 0 {
		context := make([]contextKeyValues, 0, len(other.context)+len(s.context))
		for _, kv := range other.context {
			values := make([]string, len(kv.values))
			copy(values, kv.values)
			context = append(context, contextKeyValues{key: kv.key, values: values})
		}
		s.context = append(context, s.context...)
	}
}

// patchWith overrides the receiving settings with
// each field set in other.
func (s *settings) patchWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	if other.colour != nil {
		value := *other.colour
		s.colour = &value
	}

	if other.context != nil {
		s.context = other.context
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.caller == nil {
		value := false
		s.caller = &value
	}

	if s.colour == nil {
		value := false
		s.colour = &value
	}
}
