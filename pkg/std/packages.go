package std

// GlobalPackages lists the framework packages that are always sorted first.
var GlobalPackages = map[string]bool{
	"react":      true,
	"lodash":     true,
	"prop-types": true,
}

// IsGlobalPackage reports whether module is one of the well-known global packages.
// The match is exact, "react-dom" or "lodash/merge" are regular modules.
func IsGlobalPackage(module string) bool {
	return GlobalPackages[module]
}
