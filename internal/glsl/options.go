package glsl

import (
	"strconv"
)

const (
	DefaultVersion = 450
	DefaultPrefix  = "yasl_"
	DefaultEntry   = "main"
)

type Options struct {
	// Version goes into the "#version" preamble line.
	Version int
	// Prefix must match the prefix the parser gave user identifiers; the
	// entry stub calls Prefix+Entry.
	Prefix string
	Entry  string
}

func (o Options) withDefaults() Options {
	if o.Version == 0 {
		o.Version = DefaultVersion
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Entry == "" {
		o.Entry = DefaultEntry
	}
	return o
}

// Preamble returns the synthesized lines placed before the body.
func (o Options) Preamble() []string {
	o = o.withDefaults()
	return []string{"#version " + strconv.Itoa(o.Version)}
}

// EntryStub returns the synthesized GLSL main that calls the user's entry.
func (o Options) EntryStub() string {
	o = o.withDefaults()
	return "void main(){ " + o.Prefix + o.Entry + "(); }"
}
