package libxc

/*
#cgo LDFLAGS: -lxc -lm
#include <xc.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"slices"
	"unicode/utf8"
	"unsafe"
)

// sentinelSlots is how many entries of the native functional count do not
// correspond to an enumerable functional. The native table reports one more
// functional than AvailableFunctionalNumbers returns.
const sentinelSlots = 1

// goString copies a null-terminated native buffer into a Go string.
// The native library only emits ASCII text, so anything else is a contract
// violation and panics.
func goString(p *C.char) string {
	if p == nil {
		panic("libxc: native library returned a NULL string")
	}
	s := C.GoString(p)
	if !utf8.ValidString(s) {
		panic(fmt.Sprintf("libxc: native library returned invalid UTF-8: %q", s))
	}
	return s
}

// Version returns the libxc version as a semantic versioning triple.
func Version() (major, minor, micro int32) {
	var cmajor, cminor, cmicro C.int = -1, -1, -1
	C.xc_version(&cmajor, &cminor, &cmicro)
	return int32(cmajor), int32(cminor), int32(cmicro)
}

// VersionString returns the libxc version in human readable form.
func VersionString() string {
	return goString(C.xc_version_string())
}

// Reference returns the citation for the linked libxc release.
func Reference() string {
	return goString(C.xc_reference())
}

// ReferenceDOI returns the DOI of the libxc citation.
func ReferenceDOI() string {
	return goString(C.xc_reference_doi())
}

// FunctionalNumber returns the ID of the functional called name.
// Lookup is case insensitive and accepts names with or without the "XC_" prefix.
// Unknown names return an error wrapping ErrInvalidName.
func FunctionalNumber(name string) (int32, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	number := int32(C.xc_functional_get_number(cname))
	if number < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return number, nil
}

// FunctionalName returns the canonical name of functional id.
//
// The native lookup does not validate its argument, so id is first checked
// against AvailableFunctionalNumbers. IDs outside that set return an error
// wrapping ErrInvalidID.
func FunctionalName(id int32) (string, error) {
	if !slices.Contains(AvailableFunctionalNumbers(), id) {
		return "", fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return functionalName(id), nil
}

// functionalName performs the unchecked native lookup. The returned buffer is
// a heap copy owned by the caller.
func functionalName(id int32) string {
	cname := C.xc_functional_get_name(C.int(id))
	if cname == nil {
		panic(fmt.Sprintf("libxc: no name for enumerated functional %d", id))
	}
	defer C.free(unsafe.Pointer(cname))
	return goString(cname)
}

// NumberOfFunctionals returns the size of the native functional table,
// including its sentinel slot.
func NumberOfFunctionals() int32 {
	return int32(C.xc_number_of_functionals())
}

// AvailableFunctionalNumbers returns the IDs of every functional libxc provides.
// The result has NumberOfFunctionals()-1 entries.
func AvailableFunctionalNumbers() []int32 {
	total := int(NumberOfFunctionals())
	length := total - sentinelSlots
	if length <= 0 {
		return nil
	}

	// The native call fills as many slots as it counts, so the buffer is sized
	// to the full table and trimmed afterwards.
	buf := (*C.int)(C.calloc(C.size_t(total), C.size_t(unsafe.Sizeof(C.int(0)))))
	if buf == nil {
		panic("libxc: out of memory enumerating functionals")
	}
	defer C.free(unsafe.Pointer(buf))
	C.xc_available_functional_numbers(buf)

	cnumbers := unsafe.Slice(buf, total)
	numbers := make([]int32, length)
	for i := range numbers {
		numbers[i] = int32(cnumbers[i])
	}
	return numbers
}

// AvailableFunctionalNames returns the name of every functional in
// AvailableFunctionalNumbers, in the same order.
func AvailableFunctionalNames() []string {
	numbers := AvailableFunctionalNumbers()
	names := make([]string, len(numbers))
	for i, number := range numbers {
		// Every enumerated ID resolves by construction.
		names[i] = functionalName(number)
	}
	return names
}

// FamilyFromID returns the family of functional id together with its number
// inside that family, without initializing a handle.
func FamilyFromID(id int32) (Family, int32, error) {
	var cfamily, cnumber C.int
	if C.xc_family_from_id(C.int(id), &cfamily, &cnumber) < 0 {
		return FamilyUnknown, 0, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return familyFromCode(int32(cfamily)), int32(cnumber), nil
}
