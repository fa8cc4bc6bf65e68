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
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedDeclaration is matched (with errors.Is) by every *MalformedLineError.
	ErrMalformedDeclaration = errors.New("malformed declaration line")

	// ErrStale is returned by Check when the generated source is missing or out-of-date.
	ErrStale = errors.New("generated source is stale")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MalformedLineError reports a line that starts with the declaration prefix, but doesn't have
// a name after it.
type MalformedLineError struct {
	Path   string // Empty if the header was not read from a file.
	LineNo int    // 1-based.
	Line   string // Line contents, already trimmed.
}

// Error implements the error interface.
func (e *MalformedLineError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s: %q", e.LineNo, ErrMalformedDeclaration, e.Line)
	}
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.LineNo, ErrMalformedDeclaration, e.Line)
}

// Is makes errors.Is(err, ErrMalformedDeclaration) work.
func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedDeclaration
}
