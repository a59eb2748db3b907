//
// Zobrist - a bitboard chess engine in GO
//
// MIT License
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// Relative paths given on the command line or in the configuration
// are looked up in a few sensible places: the working directory, the
// directory of the executable and the user's home directory.

// ResolveFile returns an absolute path to the given file, searching
// the usual places for relative paths. An error is returned when no
// such file exists anywhere.
func ResolveFile(file string) (string, error) {
	return resolve(file, func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	})
}

// ResolveFolder returns an absolute path to the given folder,
// searching the usual places for relative paths. The folder is not
// created when missing.
func ResolveFolder(folder string) (string, error) {
	return resolve(folder, func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	})
}

func resolve(path string, exists func(string) bool) (string, error) {
	path = filepath.Clean(path)

	if filepath.IsAbs(path) {
		if exists(path) {
			return path, nil
		}
		return path, fmt.Errorf("path could not be found: %s", path)
	}

	var bases []string
	if wd, err := os.Getwd(); err == nil {
		bases = append(bases, wd)
	}
	if exe, err := os.Executable(); err == nil {
		bases = append(bases, filepath.Dir(exe))
	}
	if home, err := os.UserHomeDir(); err == nil {
		bases = append(bases, home)
	}

	for _, base := range bases {
		candidate := filepath.Join(base, path)
		if exists(candidate) {
			return candidate, nil
		}
	}
	return path, fmt.Errorf("path could not be found: %s", path)
}
