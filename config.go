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
	"github.com/janpfeifer/gonb/common"
	"github.com/pkg/errors"
)

const (
	// DefaultHeader is the file name of the header, relative to the current directory.
	DefaultHeader = "istringconst.h"

	// DefaultOutput is the file name of the generated source, relative to the current directory.
	DefaultOutput = "istringconst.cpp"

	// DefaultPrefix starts every declaration line, after trimming the whitespace.
	DefaultPrefix = "static grinliz::IString k"

	// DefaultBanner is the first line of the generated source.
	DefaultBanner = "// machine generated by istringconst.py"
)

// Config holds the paths and the C++ fragments used to generate the source.
//
// The zero value is not valid, start with DefaultConfig.
type Config struct {
	// HeaderPath is read for the declarations. A leading `~` is replaced by the user's home directory.
	HeaderPath string

	// OutputPath is where the generated source is written. A leading `~` is replaced by the
	// user's home directory.
	OutputPath string

	// Prefix identifies declaration lines. The name follows it, and is terminated by one character
	// (usually ';').
	Prefix string

	// Banner is the first line of the generated source.
	Banner string

	// Namespace used with `using namespace`.
	Namespace string

	// Type of the constants, as written in the definitions.
	Type string

	// Class where the constants are declared as static members, and that owns Init().
	Class string

	// InternFunc is called to intern each name. It takes the name as a string literal and InternFlag.
	InternFunc string

	// InternFlag is the second argument to InternFunc.
	InternFlag string
}

// DefaultConfig returns the configuration that reproduces the historical fixed file names and output.
func DefaultConfig() Config {
	return Config{
		HeaderPath: DefaultHeader,
		OutputPath: DefaultOutput,
		Prefix:     DefaultPrefix,
		Banner:     DefaultBanner,
		Namespace:  "grinliz",
		Type:       "IString",
		Class:      "IStringConst",
		InternFunc: "StringPool::Intern",
		InternFlag: "true",
	}
}

// Validate returns an error wrapping ErrInvalidConfig if a required field is missing.
func (c Config) Validate() error {
	switch {
	case c.HeaderPath == "":
		return errors.Wrap(ErrInvalidConfig, "header path is empty")
	case c.OutputPath == "":
		return errors.Wrap(ErrInvalidConfig, "output path is empty")
	case c.Prefix == "":
		return errors.Wrap(ErrInvalidConfig, "declaration prefix is empty")
	case c.Class == "":
		return errors.Wrap(ErrInvalidConfig, "class name is empty")
	case c.InternFunc == "":
		return errors.Wrap(ErrInvalidConfig, "intern function is empty")
	}
	if c.HeaderPath == c.OutputPath {
		return errors.Wrapf(ErrInvalidConfig, "header and output are the same file %q", c.HeaderPath)
	}
	return nil
}

// WithPaths returns a copy of the configuration with the given header and output paths.
func (c Config) WithPaths(headerPath, outputPath string) Config {
	c.HeaderPath = headerPath
	c.OutputPath = outputPath
	return c
}

// expandPaths returns a copy of the configuration with `~` replaced in the paths.
func (c Config) expandPaths() Config {
	c.HeaderPath = common.ReplaceTildeInDir(c.HeaderPath)
	c.OutputPath = common.ReplaceTildeInDir(c.OutputPath)
	return c
}
