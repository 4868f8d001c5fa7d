package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)

	ConfigFile() (string, error)
	DatabaseFile() (string, error)
}
