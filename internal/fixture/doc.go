// Package fixture reads and writes declarative fixture documents and captures
// existing directory trees into them.
//
// A document is YAML:
//
//	caseSensitive: false
//	currentDirectory: /
//	executingFile: /a/lib/tsc.js
//	entries:
//	  - path: /a/b/c/app.ts
//	    content: |
//	      import {f} from "./module"
//	  - path: /a/empty
//
// Entries with a content key (even an empty one) are files; entries without
// are folders.
package fixture
