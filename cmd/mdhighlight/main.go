package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"example.com/mdhighlight/internal/host"
	"example.com/mdhighlight/pkg/logs"
)

// mdhighlight renders a Markdown document with embedded code-block
// highlighting. The default mode dumps ANSI-colored output to stdout;
// -tui opens an interactive tcell pager, mirroring the teacher's
// cmd/texteditor entry point but read-only and line-oriented.
func main() {
	tui := flag.Bool("tui", false, "open an interactive terminal pager instead of dumping ANSI output")
	flag.Parse()

	log := logs.NewFromEnv()
	defer log.Close()

	var src []byte
	var err error
	if path := flag.Arg(0); path != "" {
		src, err = os.ReadFile(path)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdhighlight: %v\n", err)
		os.Exit(1)
	}

	sess := host.NewSession()
	sess.SetText(string(src))
	sess.Recompute()
	log.Event("recompute", map[string]any{"file": flag.Arg(0)})

	if *tui {
		if err := runPager(sess); err != nil {
			fmt.Fprintf(os.Stderr, "mdhighlight: %v\n", err)
			os.Exit(1)
		}
		return
	}

	dumpANSI(sess, os.Stdout)
}
