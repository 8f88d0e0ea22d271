package libxc

/*
#include <xc.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Functional is an initialized libxc functional.
//
// Create one with [New] or [NewFromName] and call [Functional.Close] when done.
// A Functional is not safe for concurrent use from multiple goroutines.
//
//	f, err := libxc.New(1, libxc.Unpolarized)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	fmt.Println(f.Name()) // "Slater exchange"
type Functional struct {
	ptr          *C.xc_func_type      // owned, released by Close
	info         *C.xc_func_info_type // borrowed from the static libxc tables
	polarization Polarization
	cleanup      runtime.Cleanup
}

// New allocates and initializes functional id.
// A polarization other than Unpolarized or Polarized returns an error wrapping
// ErrInvalidPolarization; a nonzero native status is returned as an *InitError.
func New(id int32, polarization Polarization) (*Functional, error) {
	if !polarization.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolarization, int32(polarization))
	}

	ptr := C.xc_func_alloc()
	if ptr == nil {
		panic("libxc: out of memory allocating functional")
	}

	if status := C.xc_func_init(ptr, C.int(id), C.int(polarization)); status != 0 {
		C.xc_func_free(ptr)
		Logger().Debug("functional init failed",
			zap.Int32("id", id),
			zap.Stringer("polarization", polarization),
			zap.Int32("code", int32(status)))
		return nil, &InitError{ID: id, Polarization: polarization, Code: int32(status)}
	}

	f := &Functional{
		ptr:          ptr,
		info:         C.xc_func_get_info(ptr),
		polarization: polarization,
	}
	// Backstop for handles that are dropped without Close.
	f.cleanup = runtime.AddCleanup(f, releaseFunc, ptr)

	Logger().Debug("functional initialized",
		zap.Int32("id", id),
		zap.Stringer("polarization", polarization))
	return f, nil
}

// NewFromName resolves name with FunctionalNumber and initializes it.
// Unknown names return an error wrapping ErrInvalidName.
func NewFromName(name string, polarization Polarization) (*Functional, error) {
	id, err := FunctionalNumber(name)
	if err != nil {
		return nil, err
	}
	return New(id, polarization)
}

// releaseFunc ends and frees a native functional. It must run exactly once per allocation.
func releaseFunc(ptr *C.xc_func_type) {
	C.xc_func_end(ptr)
	C.xc_func_free(ptr)
}

// Close releases the native functional. Calling Close more than once is a no-op.
func (f *Functional) Close() error {
	if f.ptr == nil {
		return nil
	}
	f.cleanup.Stop()
	id := f.Number()
	releaseFunc(f.ptr)
	f.ptr = nil
	f.info = nil
	Logger().Debug("functional released", zap.Int32("id", id))
	return nil
}

// Clone initializes a new, independently owned functional with the same ID and
// polarization. Closing either one leaves the other usable.
func (f *Functional) Clone() (*Functional, error) {
	f.mustBeOpen()
	clone, err := New(f.Number(), f.polarization)
	if err != nil {
		return nil, err
	}
	Logger().Debug("functional cloned", zap.Int32("id", clone.Number()))
	return clone, nil
}

func (f *Functional) mustBeOpen() {
	if f.ptr == nil {
		panic("libxc: use of closed Functional")
	}
}

// Name returns the descriptive name of the functional, e.g. "Slater exchange".
func (f *Functional) Name() string {
	f.mustBeOpen()
	return goString(C.xc_func_info_get_name(f.info))
}

// Number returns the functional ID.
func (f *Functional) Number() int32 {
	f.mustBeOpen()
	return int32(C.xc_func_info_get_number(f.info))
}

// Kind returns whether this is an exchange, correlation, exchange-correlation
// or kinetic functional.
func (f *Functional) Kind() Kind {
	f.mustBeOpen()
	return kindFromCode(int32(C.xc_func_info_get_kind(f.info)))
}

// Family returns the approximation family.
func (f *Functional) Family() Family {
	f.mustBeOpen()
	return familyFromCode(int32(C.xc_func_info_get_family(f.info)))
}

// Flags returns the raw native flag bitmask.
// TODO: name the hybrid and VV10 XC_FLAGS_* bits in Flags.
func (f *Functional) Flags() Flags {
	f.mustBeOpen()
	return Flags(C.xc_func_info_get_flags(f.info))
}

// Polarization returns the polarization the functional was initialized with.
func (f *Functional) Polarization() Polarization {
	return f.polarization
}

// Citation is one literature reference attached to a functional.
type Citation struct {
	Text   string `json:"text" yaml:"text"`
	DOI    string `json:"doi,omitempty" yaml:"doi,omitempty"`
	BibTeX string `json:"bibtex,omitempty" yaml:"bibtex,omitempty"`
}

// References returns the literature references of the functional, in native order.
func (f *Functional) References() []Citation {
	f.mustBeOpen()
	var refs []Citation
	for i := 0; i < C.XC_MAX_REFERENCES; i++ {
		ref := C.xc_func_info_get_references(f.info, C.int(i))
		if ref == nil {
			break
		}
		refs = append(refs, Citation{
			Text:   goString(C.xc_func_reference_get_ref(ref)),
			DOI:    goString(C.xc_func_reference_get_doi(ref)),
			BibTeX: goString(C.xc_func_reference_get_bibtex(ref)),
		})
	}
	return refs
}

// Info returns a snapshot of the functional's metadata.
func (f *Functional) Info() Info {
	return Info{
		Number:       f.Number(),
		Name:         f.Name(),
		Kind:         f.Kind(),
		Family:       f.Family(),
		Flags:        f.Flags(),
		Polarization: f.polarization,
		References:   f.References(),
	}
}
