package pbx

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// ObjectIDLen is the length of a PBX object identifier: 24 hex digits.
const ObjectIDLen = 24

// NewObjectID returns a fresh identifier in the format Xcode uses for
// pbxproj objects: the first 24 hex digits of a random UUID, uppercased.
// Useful when hand-wiring file references into a project file; the
// planner itself never writes these anywhere.
func NewObjectID() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))[:ObjectIDLen]
}

// NewObjectIDs returns n fresh object identifiers. n <= 0 yields nil.
func NewObjectIDs(n int) []string {
	if n <= 0 {
		return nil
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = NewObjectID()
	}
	return ids
}
