package vpn

import "regexp"

// WireGuard accepts interface names built from letters, digits and the
// characters '_', '=', '+', '.' and '-'. Anything else (spaces included)
// makes wg-quick reject the config file.
var ifaceNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_=+.-]+$`)

// ValidInterfaceName reports whether name is a syntactically legal
// WireGuard interface name. Pure predicate, no I/O.
func ValidInterfaceName(name string) bool {
	return ifaceNamePattern.MatchString(name)
}
