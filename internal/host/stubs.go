package host

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

// namespaceHandles seeds the deterministic IDs of watcher and timer handles.
var namespaceHandles = uuid.NewSHA1(uuid.NameSpaceURL, []byte("fixturehost/handles/v1"))

func notSupported(op string, args ...interface{}) {
	detail := op
	if len(args) > 0 {
		detail = fmt.Sprintf("%s %v", op, args[0])
	}
	panic(fmt.Errorf("%w: %s: fixture is read-only", fixturehost.ErrNotSupported, detail))
}

// WriteFile always panics; the fixture is read-only.
func (h *TestServerHost) WriteFile(path, content string) { notSupported("writeFile", path) }

// Write always panics; the fixture captures no output.
func (h *TestServerHost) Write(s string) { notSupported("write") }

// CreateDirectory always panics; the fixture is read-only.
func (h *TestServerHost) CreateDirectory(path string) { notSupported("createDirectory", path) }

// Exit always panics; a fixture cannot end the test process.
func (h *TestServerHost) Exit(code int) { notSupported("exit", code) }

// inertWatcher is returned by watch registrations. Its callback is dropped.
type inertWatcher struct {
	id string
}

func (w inertWatcher) ID() string { return w.id }
func (w inertWatcher) Close()     {}

func (h *TestServerHost) watcherFor(kind, path string) inertWatcher {
	key := kind + ":" + string(h.canon.ToPath(path))
	return inertWatcher{id: uuid.NewSHA1(namespaceHandles, []byte(key)).String()}
}

// WatchFile registers nothing; callback is never invoked.
func (h *TestServerHost) WatchFile(path string, callback fixturehost.FileWatcherCallback) fixturehost.FileWatcher {
	h.logger.Verbose("watchFile %s (inert)", path)
	return h.watcherFor("file", path)
}

// WatchDirectory registers nothing; callback is never invoked.
func (h *TestServerHost) WatchDirectory(path string, callback fixturehost.DirectoryWatcherCallback, recursive bool) fixturehost.FileWatcher {
	h.logger.Verbose("watchDirectory %s recursive=%t (inert)", path, recursive)
	return h.watcherFor("directory", path)
}

type inertTimer struct {
	id string
}

func (t inertTimer) ID() string { return t.id }

// SetTimeout schedules nothing; callback is never invoked.
func (h *TestServerHost) SetTimeout(callback func(args ...interface{}), ms int, args ...interface{}) fixturehost.TimerHandle {
	seq := h.timers.Add(1)
	return inertTimer{id: uuid.NewSHA1(namespaceHandles, []byte("timer:"+strconv.FormatUint(seq, 10))).String()}
}

// ClearTimeout is a no-op.
func (h *TestServerHost) ClearTimeout(handle fixturehost.TimerHandle) {}
