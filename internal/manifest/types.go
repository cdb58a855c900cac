package manifest

// InstallManifest declares install options in a file. Zero values mean
// "not set"; unset fields keep whatever default or config value applies.
type InstallManifest struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Target    string `yaml:"target,omitempty" json:"target,omitempty"`
	Python    string `yaml:"python,omitempty" json:"python,omitempty"`
	Entry     string `yaml:"entry,omitempty" json:"entry,omitempty"`
	MinPython string `yaml:"min_python,omitempty" json:"min_python,omitempty"`
	User      *bool  `yaml:"user,omitempty" json:"user,omitempty"`
	Force     *bool  `yaml:"force,omitempty" json:"force,omitempty"`
}
