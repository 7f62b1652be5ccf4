package config

import "github.com/spf13/pflag"

// RegisterFlags declares every setting Load understands on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("path", "p", DefaultPath, "Repository path to audit")
	flags.StringSliceP("email", "e", nil, "Target identity (repeatable or comma separated, case-insensitive)")
	flags.StringP("since", "s", "", "Only include commits on or after this date (YYYY-MM-DD)")
	flags.Bool("partial", false, "Match author emails by substring instead of exact equality")
	flags.Bool("verbose", false, "Print each commit authored by a target as it is found")
	flags.String("mode", DefaultMode, "Report mode: exclusive or additive (default: by number of emails)")
	flags.String("self-trailers", DefaultSelfTrailers, "Trailers naming the commit's own target author: ignore or count")
	flags.String("format", DefaultFormat, "Summary format: text, json, yaml")
	flags.Bool("html", false, "Also write an interactive HTML chart next to the PNG")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.String("otlp-endpoint", "", "OTLP gRPC collector address for traces and metrics (empty disables export)")
}
