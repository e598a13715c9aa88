package config

import (
	"flag"
	"fmt"

	"github.com/agbru/decmul/internal/ui"
)

// setCustomUsage installs a themed usage printer on fs.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		t := ui.ResolveTheme(false)
		out := fs.Output()

		fmt.Fprintf(out, "\n%sdecmul%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Decimal big-number multiplication with Karatsuba, Toom-Cook-3 and FFT.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s -a <int> -b <int> [flags]\n\n%sFlags:%s\n", t.Warning, t.Reset, fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			sig := "-" + f.Name
			if name != "" {
				sig += " " + name
			}
			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, sig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintf(out, "\nEnvironment: every flag can be set as %s<FLAG> (e.g. %sALGO=fft).\n\n", EnvPrefix, EnvPrefix)
	}
}
