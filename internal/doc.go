// Package internal runs rewrite rules over .gym input files.
//
// A .gym file holds one expression per line. Blank lines and lines
// starting with '#' are ignored. A line holding a rule, such as
//
//	swap(pair(a, b)) => pair(b, a)
//
// makes that rule current for the following lines. Every other line is
// parsed and rewritten with the current rule, producing one Result.
//
// Usage:
//
//	lib, err := rewrite.NewLibrary(specs)
//	if err != nil {
//	    // handle error
//	}
//
//	engine, err := internal.NewEngine(lib, 1, logger)
//	if err != nil {
//	    // handle error
//	}
//
//	results, err := engine.Run("pairs.gym")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, r := range results {
//	    fmt.Printf("%d: %s -> %s\n", r.Line, r.Input, r.Output)
//	}
//
// Results of unchanged files can be reused across runs with a Cache, and
// StartWatching re-runs files as they are saved.
package internal
