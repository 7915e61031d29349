// Package flagx lets several config loaders share os.Args: each one keeps
// only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs returns the members of args that belong to one of the known
// flags, preserving order. Both "-f value" and "-f=value" forms are kept;
// in the first form the value is taken only if it does not start with '-'.
// The result is never nil.
func FilterArgs(args []string, known []string) []string {
	owned := make(map[string]bool, len(known))
	for _, f := range known {
		owned[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, found := strings.Cut(arg, "="); found {
			if owned[name] {
				out = append(out, arg)
			}
			continue
		}

		if !owned[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigFileFlag returns the path given with -c or -config, or "" if neither
// is present on the command line.
func ConfigFileFlag() string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}
