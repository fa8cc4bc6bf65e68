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
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// tempFilePattern is used for the temporary files created next to the output.
const tempFilePattern = ".istringconst-tmp-*"

// reportError logs an error if it is not nil, but otherwise does nothing.
func reportError(err error) {
	if err != nil {
		klog.Warningf("Error: %v", err)
	}
}

// WriteFileAtomic writes data to path using a temporary file in the same directory, renamed over path.
// If it fails, the original file (if any) is left unchanged, and the temporary file is removed.
// The parent directory must exist.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file to write %q", path)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			reportError(os.Remove(tmpPath))
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		reportError(tmpFile.Close())
		return errors.Wrapf(err, "failed to write to %q", tmpPath)
	}
	if err = tmpFile.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %q", tmpPath)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return errors.Wrapf(err, "failed to set permissions of %q", tmpPath)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to move %q to %q", tmpPath, path)
	}
	return nil
}
