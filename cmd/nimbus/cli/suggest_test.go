// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"apps", "apps", 0},
		{"apps", "aps", 1},
		{"secrts", "secrets", 1},
		{"databases", "apps", 8},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "apps"},
		{Name: "secrets"},
		{Name: "databases"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"secrts", "secrets"},
		{"app", "apps"},
		{"databses", "databases"},
		{"zzzzzzzzzz", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("org", "", "")
		flagSet.Bool("json", false, "")
		return flagSet
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--ogr", "x"}, "--org"},
		{[]string{"--jsn"}, "--json"},
		{[]string{"--org", "x"}, ""},
		{[]string{"positional"}, ""},
		{[]string{"--completelydifferent"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flags()); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
