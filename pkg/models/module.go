package models

import "strings"

// Module is one of the vendor modules with a dedicated dashboard.
type Module string

const (
	ModuleDIA     Module = "DIA"
	ModulePerseus Module = "PERSEUS"
	ModuleAtropos Module = "ATROPOS"
)

// Modules lists the vendor modules in sidebar order.
var Modules = []Module{ModuleDIA, ModulePerseus, ModuleAtropos}

// ParseModule matches s case-insensitively.
func ParseModule(s string) (Module, bool) {
	m := Module(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Modules {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// Tag is the log message prefix for the module, e.g. "[DIA]".
func (m Module) Tag() string {
	return "[" + string(m) + "]"
}
