package config

import (
	_ "embed"
)

//go:embed manifest.schema.json
var manifestSchema string

// manifestSchemaURL is the resource name the embedded schema is compiled under.
const manifestSchemaURL = "spmlink://manifest.schema.json"

// Manifestfile represents the structure of the spmlink.yaml manifest.
type Manifestfile struct {
	Version                string       `yaml:"version"`
	RegisterTargetProducts *bool        `yaml:"registerTargetProducts"`
	Targets                []string     `yaml:"targets"`
	Packages               []PackageDTO `yaml:"packages"`
	Podfile                *PodfileDTO  `yaml:"podfile"`
}

// PackageDTO declares the products of one package repository.
type PackageDTO struct {
	URL         string          `yaml:"url"`
	Version     string          `yaml:"version"`
	Requirement *RequirementDTO `yaml:"requirement"`
	Products    []string        `yaml:"products"`
}

// RequirementDTO is an explicit version requirement. Version is shorthand for
// upToNextMajorVersion from that version.
type RequirementDTO struct {
	Kind           string `yaml:"kind"`
	MinimumVersion string `yaml:"minimumVersion"`
	MaximumVersion string `yaml:"maximumVersion"`
	Version        string `yaml:"version"`
	Branch         string `yaml:"branch"`
	Revision       string `yaml:"revision"`
}

// PodfileDTO overrides the Podfile patch settings.
type PodfileDTO struct {
	Hook          string            `yaml:"hook"`
	HookArgs      string            `yaml:"hookArgs"`
	Marker        string            `yaml:"marker"`
	PodTarget     string            `yaml:"podTarget"`
	Strategy      string            `yaml:"strategy"`
	BuildSettings []BuildSettingDTO `yaml:"buildSettings"`
}

// BuildSettingDTO is one build_settings assignment.
type BuildSettingDTO struct {
	Key    string   `yaml:"key"`
	Values []string `yaml:"values"`
}
