/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package artifacts names and places files produced by test runs.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// TimestampFormat is used in artifact filenames.
const TimestampFormat = "20060102_150405"

// Timestamp formats t for use in a filename.
func Timestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}

// UniqueFilename returns prefix_<timestamp>_<suffix><extension>, or
// <timestamp>_<suffix><extension> without a prefix.  The short random
// suffix stops parallel workers colliding within the same second.
func UniqueFilename(prefix, extension string) string {
	name := fmt.Sprintf("%s_%s", Timestamp(time.Now()), uuid.NewString()[:8])

	if prefix != "" {
		name = prefix + "_" + name
	}

	return name + extension
}

// Dirs lays out artifact directories below a results root.
type Dirs struct {
	Root string
}

// NewDirs returns a layout rooted at root.
func NewDirs(root string) Dirs {
	return Dirs{Root: root}
}

// Screenshots ensures the screenshot directory exists and returns it.
func (d Dirs) Screenshots() (string, error) {
	return d.ensure("screenshots")
}

// Videos ensures the video directory exists and returns it.
func (d Dirs) Videos() (string, error) {
	return d.ensure("videos")
}

// Traces ensures the trace directory exists and returns it.
func (d Dirs) Traces() (string, error) {
	return d.ensure("traces")
}

// ScreenshotPath returns a unique PNG path in the screenshot directory.
func (d Dirs) ScreenshotPath(prefix string) (string, error) {
	dir, err := d.Screenshots()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, UniqueFilename(prefix, ".png")), nil
}

func (d Dirs) ensure(name string) (string, error) {
	dir := filepath.Join(d.Root, name)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s directory: %w", name, err)
	}

	return dir, nil
}
