// Package flagx lets several independent flag sets share one os.Args.
//
// Lambda binaries, the config loader and the certgen CLI each parse only the
// flags they own; FilterArgs strips everything else before flag.Parse sees it,
// so unknown flags never abort a parse.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args made of allowed flags and their values.
// Both "-f value" and "-f=value" forms are recognised. A token following an
// allowed flag is taken as its value unless it starts with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// stringFlag reads a single string flag, registered under every given name,
// from os.Args. The last occurrence wins; absence yields "".
func stringFlag(names ...string) string {
	var v string

	allowed := make([]string, 0, len(names))
	fs := flag.NewFlagSet(names[0], flag.ContinueOnError)
	for _, n := range names {
		allowed = append(allowed, "-"+n)
		fs.StringVar(&v, n, "", "")
	}
	_ = fs.Parse(FilterArgs(os.Args[1:], allowed))

	return v
}

// ConfigFileFlag returns the JSON config path given by -c or -config.
func ConfigFileFlag() string {
	return stringFlag("config", "c")
}

// EnvFileFlag returns the dotenv path given by -env.
func EnvFileFlag() string {
	return stringFlag("env")
}
