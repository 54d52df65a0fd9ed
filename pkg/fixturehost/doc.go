// Package fixturehost defines the public contracts of the fixture host: the
// ServerHost capability surface consumed by file-reading services under test,
// the Entry descriptors a fixture is built from, and the sentinel errors and
// exit codes shared by the library and the CLI.
//
// The concrete host lives in internal/host; construct it with host.New.
package fixturehost
