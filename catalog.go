package libxc

import "fmt"

// Info is a plain-value snapshot of a functional's metadata.
type Info struct {
	Number       int32        `json:"number" yaml:"number"`
	Name         string       `json:"name" yaml:"name"`
	Kind         Kind         `json:"kind" yaml:"kind"`
	Family       Family       `json:"family" yaml:"family"`
	Flags        Flags        `json:"flags" yaml:"flags"`
	Polarization Polarization `json:"polarization" yaml:"polarization"`
	References   []Citation   `json:"references,omitempty" yaml:"references,omitempty"`
}

// Entry describes one available functional without initializing it.
type Entry struct {
	Number int32  `json:"number" yaml:"number"`
	Name   string `json:"name" yaml:"name"`
	Family Family `json:"family" yaml:"family"`
}

// Catalog returns an Entry for every functional in AvailableFunctionalNumbers,
// in the same order.
func Catalog() []Entry {
	numbers := AvailableFunctionalNumbers()
	entries := make([]Entry, len(numbers))
	for i, number := range numbers {
		family, _, err := FamilyFromID(number)
		if err != nil {
			// Every enumerated ID belongs to a family by construction.
			panic(fmt.Sprintf("libxc: no family for enumerated functional %d", number))
		}
		entries[i] = Entry{
			Number: number,
			Name:   functionalName(number),
			Family: family,
		}
	}
	return entries
}

// Library describes the linked libxc release.
type Library struct {
	Major        int32  `json:"major" yaml:"major"`
	Minor        int32  `json:"minor" yaml:"minor"`
	Micro        int32  `json:"micro" yaml:"micro"`
	Version      string `json:"version" yaml:"version"`
	Reference    string `json:"reference" yaml:"reference"`
	ReferenceDOI string `json:"reference_doi" yaml:"reference_doi"`
	Functionals  int32  `json:"functionals" yaml:"functionals"`
}

// LibraryInfo collects the library-wide version and citation queries.
func LibraryInfo() Library {
	major, minor, micro := Version()
	return Library{
		Major:        major,
		Minor:        minor,
		Micro:        micro,
		Version:      VersionString(),
		Reference:    Reference(),
		ReferenceDOI: ReferenceDOI(),
		Functionals:  NumberOfFunctionals() - sentinelSlots,
	}
}
