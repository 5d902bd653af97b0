package config

import "strings"

const SourceFileExt = ".ssi"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".ssi", ".ssiat"}

// IsSourceFile reports whether path carries a recognized source extension.
func IsSourceFile(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Builtin seed names the parser's desugaring rewrites target. The standard
// registry defines matching signatures; the pins here must stay in step with
// it.
const (
	IndexSeedName     = "차림.값"
	IndexContainerPin = "차림"
	IndexPositionPin  = "자리"

	ResourceSeedName = "자료.열기"
	ResourceValuePin = "자료"
	ResourcePathPin  = "길"
)
