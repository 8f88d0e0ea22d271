package libxc

/*
#include <xc.h>
*/
import "C"

import (
	"fmt"
	"strconv"
	"strings"
)

// Polarization selects how many spin channels a functional is evaluated with.
type Polarization int32

// Polarization values matching the native nspin argument.
const (
	Unpolarized Polarization = C.XC_UNPOLARIZED
	Polarized   Polarization = C.XC_POLARIZED
)

// valid reports whether p is one of the two nspin values libxc accepts.
func (p Polarization) valid() bool {
	return p == Unpolarized || p == Polarized
}

func (p Polarization) String() string {
	switch p {
	case Unpolarized:
		return "unpolarized"
	case Polarized:
		return "polarized"
	}
	return "Polarization(" + strconv.Itoa(int(p)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarization) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePolarization parses the output of Polarization.String.
func ParsePolarization(s string) (Polarization, error) {
	switch strings.ToLower(s) {
	case "unpolarized":
		return Unpolarized, nil
	case "polarized":
		return Polarized, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolarization, s)
}

// Kind is the physical category of a functional.
type Kind int32

// Kind values matching the native kind codes.
const (
	Exchange            Kind = C.XC_EXCHANGE
	Correlation         Kind = C.XC_CORRELATION
	ExchangeCorrelation Kind = C.XC_EXCHANGE_CORRELATION
	Kinetic             Kind = C.XC_KINETIC
)

var kindNames = map[Kind]string{
	Exchange:            "exchange",
	Correlation:         "correlation",
	ExchangeCorrelation: "exchange-correlation",
	Kinetic:             "kinetic",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// kindFromCode decodes a native kind code. The set of kinds is closed, so an
// unknown code means the native library broke its contract.
func kindFromCode(code int32) Kind {
	k := Kind(code)
	if _, ok := kindNames[k]; !ok {
		panic(fmt.Sprintf("libxc: unknown functional kind code %d", code))
	}
	return k
}

// Family is the class of approximation a functional belongs to.
//
// The values are fixed by the native ABI. They are spelled out rather than
// taken from the header because newer headers no longer define the hybrid
// families.
type Family int32

const (
	FamilyUnknown    Family = -1
	FamilyLDA        Family = 1
	FamilyGGA        Family = 2
	FamilyMGGA       Family = 4
	FamilyLCA        Family = 8
	FamilyOEP        Family = 16
	FamilyHybridGGA  Family = 32
	FamilyHybridMGGA Family = 64
	FamilyHybridLDA  Family = 128
)

var familyNames = map[Family]string{
	FamilyUnknown:    "unknown",
	FamilyLDA:        "lda",
	FamilyGGA:        "gga",
	FamilyMGGA:       "mgga",
	FamilyLCA:        "lca",
	FamilyOEP:        "oep",
	FamilyHybridGGA:  "hyb_gga",
	FamilyHybridMGGA: "hyb_mgga",
	FamilyHybridLDA:  "hyb_lda",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "Family(" + strconv.Itoa(int(f)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func familyFromCode(code int32) Family {
	f := Family(code)
	if _, ok := familyNames[f]; !ok {
		panic(fmt.Sprintf("libxc: unknown functional family code %d", code))
	}
	return f
}

// Flags is the native flag bitmask of a functional.
//
// Only the bits below are named; the rest of the layout is left to the libxc
// documentation.
type Flags int32

// Flag bits bound to the native header.
const (
	FlagHaveExc Flags = C.XC_FLAGS_HAVE_EXC
	FlagHaveVxc Flags = C.XC_FLAGS_HAVE_VXC
	FlagHaveFxc Flags = C.XC_FLAGS_HAVE_FXC
	FlagHaveKxc Flags = C.XC_FLAGS_HAVE_KXC
	FlagHaveLxc Flags = C.XC_FLAGS_HAVE_LXC
	Flag1D      Flags = C.XC_FLAGS_1D
	Flag2D      Flags = C.XC_FLAGS_2D
	Flag3D      Flags = C.XC_FLAGS_3D
)

// Has reports whether every bit of bit is set in f.
func (f Flags) Has(bit Flags) bool {
	return f&bit == bit
}

func (f Flags) String() string {
	return "0x" + strconv.FormatInt(int64(f), 16)
}
