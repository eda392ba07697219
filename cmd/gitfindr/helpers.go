package main

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/wtarte/gitfindr/internal/log"
	"github.com/wtarte/gitfindr/internal/registry"
)

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// completeAliases provides shell completion for alias flags.
func completeAliases(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, err := registry.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return reg.Names(), cobra.ShellCompDirectiveNoFileComp
}

// suggestAliases prints fuzzy-matched aliases close to name, if any.
func suggestAliases(l *log.Logger, reg *registry.Registry, name string) {
	matches := fuzzy.Find(name, reg.Names())
	if len(matches) == 0 {
		return
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	var names []string
	for _, m := range matches {
		names = append(names, m.Str)
	}
	l.Printf("did you mean: %s?\n", strings.Join(names, ", "))
}
