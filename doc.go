// Package libxc provides Go bindings for libxc, the library of
// exchange-correlation functionals for density-functional theory.
//
// # Overview
//
// The bindings cover two things:
//
//   - [Functional], an owned handle to one initialized native functional
//   - library-wide queries: version and citation, and the name/ID tables
//
// Numerical evaluation stays inside libxc. The package links against the
// system libxc with cgo, so building it requires the libxc headers and
// shared library.
//
// # Quick Start
//
//	import "github.com/feather-lang/libxc"
//
//	func main() {
//	    f, err := libxc.NewFromName("XC_GGA_X_GAM", libxc.Unpolarized)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer f.Close()
//
//	    fmt.Println(f.Number(), f.Family()) // 32 gga
//	}
//
// # Ownership
//
// A Functional owns its native allocation and releases it in
// [Functional.Close]. Close is idempotent, and handles that become
// unreachable without being closed are released by a runtime cleanup.
// [Functional.Clone] initializes a fresh native allocation, so closing a
// clone never affects the original.
//
// Metadata accessors read through a pointer into libxc's static tables on
// every call; nothing is cached on the Go side.
//
// # Errors
//
// Lookups return errors wrapping [ErrInvalidName] or [ErrInvalidID]. A
// nonzero status from native initialization is returned as an [*InitError]
// carrying the status code.
//
// Native contract violations (text that is not UTF-8, kind or family codes
// outside the known sets) panic.
//
// # Concurrency
//
// No internal locking is done. A Functional must not be used from two
// goroutines at once, and the package-level queries are only as reentrant
// as the linked libxc is. Serialize access when in doubt.
//
// # Logging
//
// Handle lifecycle events are logged at debug level through a zap logger
// installed with [SetLogger]. The default logger discards everything.
package libxc
