// Command classcheck validates plugin class description files before
// they ship with an external. It loads each YAML document, runs the same
// validation the runtime applies, and prints a per-class endpoint
// summary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mipi54/flext/config"
)

func main() {
	verbose := flag.Bool("v", false, "print per-class endpoint summaries")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: classcheck [-v] <file.yaml> [file.yaml ...]")
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		cfg, err := config.LoadFile(path)
		if err != nil {
			log.Printf("%s: %v", path, err)
			failed++
			continue
		}

		log.Printf("%s: %d class(es) ok", path, len(cfg.Classes))
		if *verbose {
			for _, cc := range cfg.Classes {
				printClass(cc)
			}
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func printClass(cc config.ClassConfig) {
	dist := ""
	if cc.Distribute {
		dist = " (list distribution)"
	}
	fmt.Printf("  %s: %d inlet(s), %d outlet(s)%s\n",
		cc.Name, len(cc.Inlets), len(cc.Outlets), dist)
	for i, x := range cc.Inlets {
		fmt.Printf("    in  %d: %-7s %s\n", i, x.Kind, x.Description)
	}
	for i, x := range cc.Outlets {
		fmt.Printf("    out %d: %-7s %s\n", i, x.Kind, x.Description)
	}
}
