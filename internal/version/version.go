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
// Package version holds the build-time identity of the engine binary, as
// reported to the UCI "id" command and printed on startup.
package version

// programName is the engine name reported to the GUI via "id name".
const programName = "Zobrist"

// version is bumped manually per release. build is overridden at link
// time via -ldflags "-X .../internal/version.build=<commit>" by CI; it
// stays "dev" for local builds.
var (
	version = "1.0.0"
	build   = "dev"
)

// Version returns the engine's name, semantic version and build identifier
// as a single string suitable for the UCI "id name" response.
func Version() string {
	return programName + " " + version + " (" + build + ")"
}

// Name returns just the engine name used in UCI identification.
func Name() string {
	return programName
}
