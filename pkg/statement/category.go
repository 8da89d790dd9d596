package statement

import (
	"strings"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/std"
)

// ImportCategory represents the ordering bucket of an import.
// Lower values are emitted first.
type ImportCategory int

const (
	GlobalCategory       ImportCategory = iota // react, lodash, prop-types
	ScopedModuleCategory                       // @scope/package
	ModuleCategory                             // any other installed module
	AliasCategory                              // @ or @/path
	LocalCategory                              // ./x, ../x
	StyleCategory                              // anything ending in .css
)

var categoryNames = [...]string{
	GlobalCategory:       "global",
	ScopedModuleCategory: "scoped-module",
	ModuleCategory:       "module",
	AliasCategory:        "alias",
	LocalCategory:        "local",
	StyleCategory:        "style",
}

func (c ImportCategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Category classifies a module specifier.
//
// Rules are checked in priority order: alias, style, scoped module, local,
// global, then module. Alias is checked before scoped module because both
// start with "@", and style wins over every structural rule after alias.
func Category(module string) ImportCategory {
	switch {
	case module == "@" || strings.HasPrefix(module, "@/"):
		return AliasCategory
	case strings.HasSuffix(module, ".css"):
		return StyleCategory
	case strings.HasPrefix(module, "@"):
		return ScopedModuleCategory
	case strings.HasPrefix(module, "."):
		return LocalCategory
	case std.IsGlobalPackage(module):
		return GlobalCategory
	default:
		return ModuleCategory
	}
}
