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
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
)

var sourceTemplate = template.Must(template.New("source").Parse(
	`{{.Banner}}
#include "{{.Include}}"
using namespace {{.Namespace}};

{{range .Names}}{{$.Type}} {{$.Class}}::k{{.}};
{{end}}
void {{.Class}}::Init()
{
{{range .Names}}	k{{.}} = {{$.InternFunc}}( "{{.}}", {{$.InternFlag}} );
{{end}}}
`))

// sourceData is the input to sourceTemplate.
type sourceData struct {
	Config
	Include string
	Names   []string
}

// Emit writes to w the C++ source defining and initializing the declarations.
//
// The include line names the header by its base name: the source is expected to live next to it.
func Emit(w io.Writer, decls *Declarations, cfg Config) error {
	data := sourceData{
		Config:  cfg,
		Include: filepath.Base(cfg.HeaderPath),
		Names:   decls.Names(),
	}
	if err := sourceTemplate.Execute(w, data); err != nil {
		return errors.Wrap(err, "failed to execute source template")
	}
	return nil
}

// Render returns the generated source as bytes.
func Render(decls *Declarations, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Emit(&buf, decls, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EmitFile renders the source and writes it to cfg.OutputPath atomically: either the whole new
// content is in place, or the previous file (if any) is left untouched.
func EmitFile(decls *Declarations, cfg Config) error {
	contents, err := Render(decls, cfg)
	if err != nil {
		return err
	}
	return WriteFileAtomic(cfg.OutputPath, contents, 0644)
}
