package domain

import "path/filepath"

const (
	// IOSDirName is the native project directory of a React Native or Expo app.
	IOSDirName = "ios"

	// ProjectBundleExt is the extension of an Xcode project bundle.
	ProjectBundleExt = ".xcodeproj"

	// PbxprojFileName is the descriptor file inside a project bundle.
	PbxprojFileName = "project.pbxproj"

	// PodfileName is the name of the CocoaPods build script.
	PodfileName = "Podfile"

	// ManifestFileName is the name of the optional package manifest.
	ManifestFileName = "spmlink.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultPodfilePath returns the Podfile location relative to the app root.
func DefaultPodfilePath() string {
	return filepath.Join(IOSDirName, PodfileName)
}

// DescriptorPath resolves a project path to its descriptor file.
// A project bundle directory resolves to the project.pbxproj it contains.
func DescriptorPath(projectPath string) string {
	if filepath.Ext(projectPath) == ProjectBundleExt {
		return filepath.Join(projectPath, PbxprojFileName)
	}
	return projectPath
}
