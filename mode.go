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

// Mode of operation of Generate.
type Mode int

const (
	// ModeWrite writes the generated source, if it changed.
	ModeWrite Mode = iota

	// ModeCheck only verifies that the generated source on disk is up-to-date.
	ModeCheck

	// ModePrint writes the generated source to the configured io.Writer (stdout in the command line).
	ModePrint
)

// Set implements flag.Value.
func (i *Mode) Set(s string) error {
	m, err := ModeString(s)
	if err != nil {
		return err
	}
	*i = m
	return nil
}
