package domain

// SpliceStrategy selects how the Podfile patcher finds the end of an existing hook block.
type SpliceStrategy string

const (
	// SpliceGreedy inserts before the last "end" that follows the hook header.
	SpliceGreedy SpliceStrategy = "greedy"
	// SpliceNested inserts before the "end" that balances the hook's "do".
	SpliceNested SpliceStrategy = "nested"
)

// BuildSetting is one build_settings assignment rendered into the Podfile hook.
type BuildSetting struct {
	Key    string
	Values []string
}

// PodfileSettings describes the block injected into the Podfile.
type PodfileSettings struct {
	Hook          string
	HookArgs      string
	Marker        string
	PodTarget     string
	BuildSettings []BuildSetting
	Strategy      SpliceStrategy
}

// Manifest is the full input of an integration pass.
type Manifest struct {
	Coordinates []PackageCoordinate
	Targets     []string
	// RegisterTargetProducts also lists linked products in the target's
	// packageProductDependencies, which Xcode needs to resolve them.
	RegisterTargetProducts bool
	Podfile                PodfileSettings
}

const (
	mlxSwiftURL         = "https://github.com/ml-explore/mlx-swift"
	mlxSwiftExamplesURL = "https://github.com/ml-explore/mlx-swift-examples"
	swiftTransformers   = "https://github.com/huggingface/swift-transformers"
	jinjaURL            = "https://github.com/maiqingqiang/Jinja"

	// DefaultPodTarget is the pod that consumes the MLX packages.
	DefaultPodTarget = "react-native-fastvlm-ios"
)

// PodfileMarker returns the text whose presence means the Podfile is already patched.
func PodfileMarker(podTarget string) string {
	return podTarget + " Pod to link against Swift Package Manager"
}

// DefaultManifest returns the built-in MLX package set and target list.
func DefaultManifest() Manifest {
	var coords []PackageCoordinate
	add := func(repo, version string, products ...string) {
		for _, p := range products {
			coords = append(coords, PackageCoordinate{
				RepositoryURL: repo,
				ProductName:   p,
				Requirement:   UpToNextMajor(version),
			})
		}
	}
	add(mlxSwiftURL, "0.25.6", "MLX", "MLXFast", "MLXNN", "MLXRandom")
	add(mlxSwiftExamplesURL, "2.25.7", "MLXLMCommon", "MLXVLM")
	add(swiftTransformers, "0.1.24", "Transformers")
	add(jinjaURL, "1.3.0", "Jinja")

	return Manifest{
		Coordinates:            coords,
		Targets:                []string{"example", DefaultPodTarget},
		RegisterTargetProducts: true,
		Podfile:                DefaultPodfileSettings(DefaultPodTarget),
	}
}

// DefaultPodfileSettings returns the post_install configuration for podTarget.
func DefaultPodfileSettings(podTarget string) PodfileSettings {
	return PodfileSettings{
		Hook:      "post_install",
		HookArgs:  "installer",
		Marker:    PodfileMarker(podTarget),
		PodTarget: podTarget,
		BuildSettings: []BuildSetting{
			{
				Key:    "SWIFT_INCLUDE_PATHS",
				Values: []string{"$(inherited)", "$(SRCROOT)/../node_modules/" + podTarget + "/ios"},
			},
			{
				Key:    "OTHER_SWIFT_FLAGS",
				Values: []string{"$(inherited)", "-Xfrontend", "-enable-experimental-cross-module-incremental-build"},
			},
		},
		Strategy: SpliceGreedy,
	}
}
