package cmd

import "strings"

// The CLI surface has two conveniences pflag does not support directly:
// multi-character short aliases (-ud, -gh-install) and flags that greedily
// consume one or more following values (--install pkgA pkgB). NormalizeArgs
// rewrites the raw argument vector into canonical pflag form before cobra
// ever sees it:
//
//   - a short alias expands to its long flag ("-ud" -> "--update"),
//   - bare tokens following a multi-value flag fold into repeated
//     "--flag=value" tokens ("--install a b" -> "--install=a --install=b").
//
// The rewrite is a pure function over the argument slice; anything it does
// not recognize passes through untouched for pflag to accept or reject.

// aliases maps each short alias (without its leading dash) to its long flag.
var aliases = map[string]string{
	"ud":         "update",
	"ug":         "upgrade",
	"i":          "install",
	"r":          "remove",
	"auto":       "auto-install",
	"ar":         "autoremove",
	"ac":         "autoclean",
	"ch":         "chmod",
	"deb":        "install-deb",
	"snap":       "install-snap",
	"flatpak":    "install-flatpak",
	"pip":        "install-pip",
	"gh":         "github",
	"gh-install": "github-install",
	"dl":         "download",
	"src":        "install-source",
	"sh":         "shutdown",
	"gh-dir":     "github-dir",
	"dl-dir":     "download-dir",
}

// multiValue marks the long flags that accept one or more values.
var multiValue = map[string]bool{
	"install":         true,
	"remove":          true,
	"auto-install":    true,
	"chmod":           true,
	"install-deb":     true,
	"install-snap":    true,
	"install-flatpak": true,
	"install-pip":     true,
	"github":          true,
	"github-install":  true,
	"download":        true,
	"install-source":  true,
}

// NormalizeArgs rewrites raw command-line arguments into canonical pflag
// form. See the package comment above for the rewrite rules.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	pending := "" // active multi-value flag collecting bare tokens

	for _, arg := range args {
		switch {
		case arg == "-" || arg == "--":
			pending = ""
			out = append(out, arg)

		case strings.HasPrefix(arg, "--"):
			pending = ""
			name, value, hasValue := strings.Cut(arg[2:], "=")
			if multiValue[name] {
				pending = name
				if hasValue {
					out = append(out, "--"+name+"="+value)
				}
				// A bare multi-value flag token is dropped here: its
				// values arrive as the following bare tokens and are
				// folded in below.
				continue
			}
			out = append(out, arg)

		case strings.HasPrefix(arg, "-"):
			name, value, hasValue := strings.Cut(arg[1:], "=")
			long, known := aliases[name]
			if !known {
				// Not one of ours; let pflag parse (or reject) it.
				pending = ""
				out = append(out, arg)
				continue
			}
			pending = ""
			if multiValue[long] {
				pending = long
				if hasValue {
					out = append(out, "--"+long+"="+value)
				}
				continue
			}
			tok := "--" + long
			if hasValue {
				tok += "=" + value
			}
			out = append(out, tok)

		default:
			if pending != "" {
				out = append(out, "--"+pending+"="+arg)
				continue
			}
			out = append(out, arg)
		}
	}
	return out
}
