package ports

// ScriptStore reads and writes text build scripts such as the Podfile.
//
//go:generate mockgen -source=script_store.go -destination=mocks/mock_script_store.go -package=mocks
type ScriptStore interface {
	// Read returns the script text. A missing script is reported with exists=false and no error.
	Read(path string) (text string, exists bool, err error)

	// Write replaces the script with text. It reports false when the content was already identical.
	Write(path, text string) (bool, error)
}
