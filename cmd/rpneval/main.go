package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"golang.org/x/term"

	rpneval "github.com/atuleu/go-rpneval"
)

const appName = "rpneval"

const (
	envLogLevel = "RPNEVAL_LOG_LEVEL"
	envColor    = "RPNEVAL_COLOR"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s <file.txt>\n", appName)
}

// run returns the process exit status: 2 for usage or configuration
// errors, 1 if the input cannot be read or the report written.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	if len(args) != 1 {
		usage(stderr)
		return 2
	}

	if lvl := getenv(envLogLevel); lvl != "" {
		l, err := log.ValidateLevel(lvl)
		if err != nil {
			fmt.Fprintf(stderr, "%s: invalid %s %q: %v\n", appName, envLogLevel, lvl, err)
			return 2
		}
		log.SetLogLevel(l)
	}

	color, err := useColor(getenv(envColor), stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}

	name := args[0]
	f, err := os.Open(name)
	if err != nil {
		log.Errf("cannot open %s: %v", name, err)
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	defer f.Close()

	if err := rpneval.Process(name, f, stdout, &rpneval.Options{Color: color}); err != nil {
		log.Errf("run %s: %v", name, err)
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// useColor resolves the color mode. In auto mode colors are only used
// when w is a terminal.
func useColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("invalid %s %q, want always, never or auto", envColor, mode)
}
