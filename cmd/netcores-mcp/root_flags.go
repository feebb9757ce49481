package main

import "flag"

type rootArgs struct {
	overrides []string
}

func parseRootArgs(args []string) (rootArgs, []string, error) {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	var overrides stringSlice
	fs.Var(&overrides, "c", "Override config value key=value (repeatable, applied before subcommand overrides)")
	if err := fs.Parse(args); err != nil {
		return rootArgs{}, nil, err
	}
	return rootArgs{overrides: overrides}, fs.Args(), nil
}

func prependOverrides(root []string, overrides []string) []string {
	merged := append([]string{}, root...)
	return append(merged, overrides...)
}
