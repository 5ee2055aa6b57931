package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ContainerKind is the container a caller declares its bytes to be.
type ContainerKind int

const (
	KindCIM ContainerKind = iota + 1
	KindKTX
)

func (k ContainerKind) String() string {
	switch k {
	case KindCIM:
		return "cim"
	case KindKTX:
		return "ktx"
	default:
		return fmt.Sprintf("ContainerKind(%d)", int(k))
	}
}

// ParseKind accepts "cim", "ktx" or "zktx", case insensitively.
func ParseKind(s string) (ContainerKind, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "cim":
		return KindCIM, nil
	case "ktx", "zktx":
		return KindKTX, nil
	}
	return 0, fmt.Errorf("unknown container kind %q", s)
}

// KindFromPath picks the container from a file extension.
func KindFromPath(path string) (ContainerKind, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("no extension on %s", path)
	}
	return ParseKind(ext)
}
