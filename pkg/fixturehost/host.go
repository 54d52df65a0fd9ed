package fixturehost

// FileWatcherCallback is invoked when a watched file changes.
type FileWatcherCallback func(fileName string, removed bool)

// DirectoryWatcherCallback is invoked when an entry under a watched directory changes.
type DirectoryWatcherCallback func(fileName string)

// FileWatcher is the handle returned by watch registrations.
type FileWatcher interface {
	// ID identifies the registration; it is derived from the watched path.
	ID() string
	Close()
}

// TimerHandle identifies a scheduled callback.
type TimerHandle interface {
	ID() string
}

// ServerHost is the capability surface a file-consuming service uses to
// reach the file system. Query methods never fail for absent paths; they
// report false or an empty result instead.
type ServerHost interface {
	// Args returns the command-line arguments visible to the service.
	Args() []string

	// NewLine returns the line terminator used when writing output.
	NewLine() string

	// UseCaseSensitiveFileNames reports the case policy fixed at construction.
	UseCaseSensitiveFileNames() bool

	FileExists(path string) bool
	DirectoryExists(path string) bool

	// GetDirectories returns the base names of the immediate children of
	// path, in insertion order.
	GetDirectories(path string) []string

	// ReadDirectory returns the full paths of files under path whose name
	// ends with extension, skipping every path in excludes and their subtrees.
	ReadDirectory(path, extension string, excludes []string) []string

	// ReadFile returns the content of the file at path. Calling it for a path
	// that is not a file is a contract violation.
	ReadFile(path string) string

	ResolvePath(path string) string
	GetCurrentDirectory() string
	GetExecutingFilePath() string

	WriteFile(path, content string)
	Write(s string)
	CreateDirectory(path string)
	Exit(code int)

	WatchFile(path string, callback FileWatcherCallback) FileWatcher
	WatchDirectory(path string, callback DirectoryWatcherCallback, recursive bool) FileWatcher

	SetTimeout(callback func(args ...interface{}), ms int, args ...interface{}) TimerHandle
	ClearTimeout(handle TimerHandle)
}
