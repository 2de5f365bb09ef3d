package vpn

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yllada/wirewarden/common"
)

// ConfigExtension is the suffix identifying WireGuard configuration files.
// The match is case-sensitive: Office.CONF is not a config file.
const ConfigExtension = ".conf"

// ConfigEntry is one valid interface definition found by a scan.
type ConfigEntry struct {
	// Name is the interface name, the file's base name without extension.
	Name string
	// Path is the absolute or scan-relative path to the backing file.
	Path string
}

// Inventory is the result of scanning a configuration directory:
// valid entries ready for interaction plus the file names (extension
// kept) of configs whose names WireGuard would reject.
//
// A non-empty Invalid list gates ALL interactions, not just the broken
// files: the Manager refuses every transition until the offending files
// are renamed or removed. This all-or-nothing rule is deliberate.
type Inventory struct {
	Valid   []ConfigEntry
	Invalid []string
}

// Scan enumerates the .conf files in dir, lexicographically, and
// partitions them by interface-name validity. An unreadable directory
// is a wrapped common.ErrScan; there is no partial result.
func Scan(dir string) (*Inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, common.WrapError(common.ErrScan, err.Error())
	}

	inv := &Inventory{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()
		if !strings.HasSuffix(filename, ConfigExtension) {
			continue
		}
		name := strings.TrimSuffix(filename, ConfigExtension)
		if !ValidInterfaceName(name) {
			// Invalid candidates keep their extension so the user
			// sees the exact offending file name.
			inv.Invalid = append(inv.Invalid, filename)
			continue
		}
		inv.Valid = append(inv.Valid, ConfigEntry{
			Name: name,
			Path: filepath.Join(dir, filename),
		})
	}

	return inv, nil
}

// Gated reports whether interactions must be disabled because the scan
// found invalid config file names.
func (inv *Inventory) Gated() bool {
	return len(inv.Invalid) > 0
}

// Entry returns the valid entry for name, if present.
func (inv *Inventory) Entry(name string) (ConfigEntry, bool) {
	for _, e := range inv.Valid {
		if e.Name == name {
			return e, true
		}
	}
	return ConfigEntry{}, false
}

// Names returns the valid interface names in scan order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.Valid))
	for i, e := range inv.Valid {
		names[i] = e.Name
	}
	return names
}
