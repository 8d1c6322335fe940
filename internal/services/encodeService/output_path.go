package encodeservice

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultSuffix is appended to the stripped input name to build the output name.
	DefaultSuffix = "_HEX"

	// DefaultInputExt is the extension of the proof files this tool was written for.
	DefaultInputExt = ".proof"
)

// DeriveOutputPath builds the output path for inputPath: the last
// dot-delimited extension of the base name is removed and suffix appended,
// keeping the directory. "name.proof" becomes "name_HEX".
//
// Names without an extension, and dotfiles whose only dot is the leading one,
// keep their whole base name. An empty suffix means DefaultSuffix.
func DeriveOutputPath(inputPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	dir, base := filepath.Split(inputPath)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}

	return dir + base + suffix
}
