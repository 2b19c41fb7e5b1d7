package config

// defaultsFile mirrors the .eebuild.yaml structure. Keys use the same names
// as the corresponding command-line flags.
type defaultsFile struct {
	BuildType     string `yaml:"build-type"`
	Generator     string `yaml:"generator"`
	MaxProcessors int    `yaml:"max-processors"`
	SourceDir     string `yaml:"source-directory"`
	TestDir       string `yaml:"test-directory"`
	ObjDir        string `yaml:"object-directory"`
}
