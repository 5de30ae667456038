package config

// Configfile represents the structure of the optional relock.yaml file.
type Configfile struct {
	Version   string       `yaml:"version"`
	Manifest  string       `yaml:"manifest"`
	Lockfiles LockfilesDTO `yaml:"lockfiles"`
	Clean     []string     `yaml:"clean"`
	Markers   MarkersDTO   `yaml:"markers"`
	Tools     ToolsDTO     `yaml:"tools"`
	Sync      SyncDTO      `yaml:"sync"`
}

// LockfilesDTO holds the two lockfile definitions.
type LockfilesDTO struct {
	Base LockfileDTO `yaml:"base"`
	Dev  LockfileDTO `yaml:"dev"`
}

// LockfileDTO represents one lockfile definition in the configuration.
type LockfileDTO struct {
	Output string   `yaml:"output"`
	Extras []string `yaml:"extras"`
}

// MarkersDTO holds the devcontainer marker paths.
type MarkersDTO struct {
	File string `yaml:"file"`
	Dir  string `yaml:"dir"`
}

// ToolsDTO holds the external tool argv prefixes.
type ToolsDTO struct {
	Compile []string `yaml:"compile"`
	Sync    []string `yaml:"sync"`
}

// SyncDTO holds environment-sync settings. Elevate is a pointer so an
// explicitly empty list (sync without privileges) can be distinguished from
// an absent key (default elevation).
type SyncDTO struct {
	Elevate *[]string `yaml:"elevate"`
}
