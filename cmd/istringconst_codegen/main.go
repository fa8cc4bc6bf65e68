// istringconst_codegen parses istringconst.h and generates istringconst.cpp, with the definitions of the
// interned-string constants and the IStringConst::Init() that interns them.
//
// It is meant to be run in the directory of the header, e.g. from a go:generate line or a build script.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gomlx/istringconst"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagHeader = flag.String("header", istringconst.DefaultHeader,
		"Header with the declarations. A leading ~ is replaced by the home directory.")
	flagOutput = flag.String("output", istringconst.DefaultOutput,
		"Generated source file, overwritten if it exists. A leading ~ is replaced by the home directory.")
	flagPrefix = flag.String("prefix", istringconst.DefaultPrefix,
		"Prefix of the declaration lines, after trimming spaces. The constant name follows it.")
	flagRoot = flag.String("root", "",
		"If set, search the tree under root for files named like --header, and generate the source next "+
			"to each one, named like --output.")
	flagMode = istringconst.ModeWrite
)

func main() {
	flag.Var(&flagMode, "mode", fmt.Sprintf("One of %s: write the generated source, check that it is "+
		"up-to-date (exits with an error if not), or print it to stdout.",
		strings.Join(istringconst.ModeStrings(), ", ")))
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `istringconst_codegen generates the definitions and initialization of the
interned-string constants declared as "static grinliz::IString k<Name>;" in a header.

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(nil)
	flag.Parse()

	if flag.NArg() > 0 {
		klog.Warningf("Positional arguments ignored: %q", flag.Args())
	}

	cfg := istringconst.DefaultConfig().WithPaths(*flagHeader, *flagOutput)
	cfg.Prefix = *flagPrefix
	gen := istringconst.New(cfg).WithMode(flagMode)

	if *flagRoot != "" {
		results, err := gen.GenerateTree(*flagRoot)
		for _, res := range results {
			report(res)
		}
		exitOnError(err)
		if len(results) == 0 {
			klog.Warningf("No %q found under %q", cfg.HeaderPath, *flagRoot)
		}
		return
	}

	klog.V(1).Infof("Working directory: %s", must.M1(os.Getwd()))
	res, err := gen.Generate()
	exitOnError(err)
	report(res)
}

// report prints a one-line summary of the result, except when printing the source to stdout.
func report(res *istringconst.Result) {
	if flagMode == istringconst.ModePrint {
		return
	}
	switch {
	case flagMode == istringconst.ModeCheck && res.Changed:
		fmt.Printf("%s: stale\n", res.OutputPath)
	case flagMode == istringconst.ModeCheck:
		fmt.Printf("%s: up-to-date (%d constants)\n", res.OutputPath, res.NumDeclarations)
	case res.Changed:
		fmt.Printf("Generated %q from %q (%d constants)\n", res.OutputPath, res.HeaderPath, res.NumDeclarations)
	default:
		fmt.Printf("%s: unchanged (%d constants)\n", res.OutputPath, res.NumDeclarations)
	}
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, istringconst.ErrStale) {
		klog.Exitf("%v: run istringconst_codegen to regenerate it", err)
	}
	klog.Fatalf("Error: %+v", err)
}
