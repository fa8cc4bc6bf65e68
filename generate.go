/*
 *	Copyright 2024 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package istringconst

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/janpfeifer/gonb/common"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Result summarizes one call to Generate.
type Result struct {
	HeaderPath, OutputPath string

	// NumDeclarations found in the header.
	NumDeclarations int

	// Changed is true if the output was (or, in ModeCheck, would be) rewritten.
	Changed bool
}

// Generator extracts the declarations and emits the source according to its Mode.
type Generator struct {
	Config
	Mode Mode

	// Stdout is where ModePrint writes the source. If nil, os.Stdout is used.
	Stdout io.Writer
}

// New returns a Generator for the given configuration, in ModeWrite.
func New(cfg Config) *Generator {
	return &Generator{Config: cfg}
}

// WithMode sets the mode of operation. It returns the Generator itself, so calls can be cascaded.
func (g *Generator) WithMode(mode Mode) *Generator {
	g.Mode = mode
	return g
}

// Generate reads the header and writes, checks or prints the source, depending on the mode.
//
// In ModeWrite an output that already has the exact generated contents is not rewritten.
// In ModeCheck, if the output is missing or differs from the generated contents, it returns an error
// wrapping ErrStale.
func (g *Generator) Generate() (*Result, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	cfg := g.Config.expandPaths()
	decls, err := ExtractFile(cfg.HeaderPath, cfg.Prefix)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("Found %d declarations in %q", decls.Len(), cfg.HeaderPath)
	contents, err := Render(decls, cfg)
	if err != nil {
		return nil, err
	}
	res := &Result{
		HeaderPath:      cfg.HeaderPath,
		OutputPath:      cfg.OutputPath,
		NumDeclarations: decls.Len(),
	}

	if g.Mode == ModePrint {
		w := g.Stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err = w.Write(contents); err != nil {
			return nil, errors.Wrap(err, "failed to print generated source")
		}
		return res, nil
	}

	current, err := os.ReadFile(cfg.OutputPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "failed to read current output %q", cfg.OutputPath)
	}
	res.Changed = err != nil || !bytes.Equal(current, contents)

	switch g.Mode {
	case ModeCheck:
		if res.Changed {
			return res, errors.Wrapf(ErrStale, "%q is not up-to-date with %q", cfg.OutputPath, cfg.HeaderPath)
		}
		klog.V(1).Infof("%q is up-to-date", cfg.OutputPath)
	case ModeWrite:
		if !res.Changed {
			klog.V(1).Infof("%q unchanged", cfg.OutputPath)
			return res, nil
		}
		if err = WriteFileAtomic(cfg.OutputPath, contents, 0644); err != nil {
			return nil, err
		}
		klog.V(1).Infof("Wrote %q", cfg.OutputPath)
	default:
		return nil, errors.Errorf("unknown mode %s", g.Mode)
	}
	return res, nil
}

// Generate is a shortcut for New(cfg).Generate() in ModeWrite.
func Generate(cfg Config) (*Result, error) {
	return New(cfg).Generate()
}

// Check is a shortcut for New(cfg).WithMode(ModeCheck).Generate().
func Check(cfg Config) (*Result, error) {
	return New(cfg).WithMode(ModeCheck).Generate()
}

// GenerateTree walks root and runs the generator for every file named like the configured header.
// The output is written to the same directory, named like the configured output.
//
// It stops at the first error.
func (g *Generator) GenerateTree(root string) ([]*Result, error) {
	headerName := filepath.Base(g.HeaderPath)
	outputName := filepath.Base(g.OutputPath)
	var results []*Result
	err := EnumerateFiles(root, headerName, func(headerPath string) error {
		dirGen := *g
		dir := filepath.Dir(headerPath)
		dirGen.Config = g.Config.WithPaths(headerPath, filepath.Join(dir, outputName))
		res, err := dirGen.Generate()
		if res != nil {
			results = append(results, res)
		}
		return err
	})
	return results, err
}

// EnumerateFiles calls callback for every regular file under root (recursively) with the given base name.
func EnumerateFiles(root, name string, callback func(filePath string) error) error {
	root = common.ReplaceTildeInDir(root)
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			return callback(path)
		}
		return nil
	})
}
