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
	"bufio"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Declarations is the ordered list of constant names extracted from a header.
//
// It is immutable once returned by Extract.
type Declarations struct {
	names []string
}

// NewDeclarations returns Declarations with a copy of the given names, in the same order.
func NewDeclarations(names ...string) *Declarations {
	return &Declarations{names: append([]string(nil), names...)}
}

// Len returns the number of declarations.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Names returns a copy of the names, in order of declaration.
func (d *Declarations) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// Duplicates returns the names declared more than once, in order of their first repetition.
// The generated source for them won't compile, but that is left for the C++ compiler to report.
func (d *Declarations) Duplicates() []string {
	var dups []string
	seen := make(map[string]int, d.Len())
	for _, name := range d.Names() {
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

// Extract reads the header from r and returns the names of the declarations: lines that, after
// trimming the surrounding whitespace, start with prefix.
// The name is what follows the prefix, minus its last character (the ';').
//
// Lines not starting with prefix are ignored.
// A declaration line without a name after the prefix returns a *MalformedLineError.
func Extract(r io.Reader, prefix string) (*Declarations, error) {
	return extract(r, prefix, "")
}

// ExtractFile opens the header in path and calls Extract.
func ExtractFile(path, prefix string) (*Declarations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open header %q", path)
	}
	defer func() { reportError(f.Close()) }()
	klog.V(1).Infof("Reading declarations from %q", path)
	return extract(f, prefix, path)
}

func extract(r io.Reader, prefix, path string) (*Declarations, error) {
	if prefix == "" {
		return nil, errors.Wrap(ErrInvalidConfig, "declaration prefix is empty")
	}
	decls := &Declarations{}
	scanner := bufio.NewScanner(r)
	// No limit on the line length.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, prefix) {
			if line != "" {
				klog.V(2).Infof("line %d: skipped %q", lineNo, line)
			}
			continue
		}
		rest := line[len(prefix):]
		if utf8.RuneCountInString(rest) < 2 {
			// Either nothing after the prefix, or only the terminator: no name.
			return nil, errors.WithStack(&MalformedLineError{Path: path, LineNo: lineNo, Line: line})
		}
		_, size := utf8.DecodeLastRuneInString(rest)
		decls.names = append(decls.names, rest[:len(rest)-size])
	}
	if err := scanner.Err(); err != nil {
		if path != "" {
			return nil, errors.Wrapf(err, "failed reading header %q", path)
		}
		return nil, errors.Wrap(err, "failed reading header")
	}
	for _, name := range decls.Duplicates() {
		klog.Warningf("%q declared more than once, the generated source won't compile", name)
	}
	return decls, nil
}
