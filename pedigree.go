package heredity

import (
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
)

// TraitStatus records whether a person's trait has been directly observed,
// and if so, whether it is present.
type TraitStatus uint8

const (
	TraitUnknown TraitStatus = iota
	TraitAbsent
	TraitPresent
)

func (t TraitStatus) String() string {
	switch t {
	case TraitUnknown:
		return "TraitUnknown"
	case TraitAbsent:
		return "TraitAbsent"
	case TraitPresent:
		return "TraitPresent"

	default:
		return "Illegal selection"
	}
}

// Observed is true unless the trait status is TraitUnknown.
func (t TraitStatus) Observed() bool {
	return t != TraitUnknown
}

// Person is one row of a pedigree. Mother and Father name other people in the
// same pedigree; both are empty for a founder.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  TraitStatus
}

// Founder is true if the person has no recorded parents, in which case their
// gene count is drawn from the founder prior rather than inherited.
func (p Person) Founder() bool {
	return p.Mother == "" && p.Father == ""
}

// Pedigree maps each person's name to their record.
type Pedigree map[string]Person

// Names returns every name in the pedigree, sorted, so that enumeration
// visits people in a deterministic order.
func (ped Pedigree) Names() []string {
	names := make([]string, 0, len(ped))
	for name := range ped {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Validate rejects pedigrees whose parent references cannot be resolved. A
// person must name either both parents or neither, and every named parent
// must exist as a person in the same pedigree. Validate does not detect
// cycles; a pedigree whose parents transitively include their own
// descendants is assumed not to occur.
func (ped Pedigree) Validate() error {
	for name, p := range ped {
		if name == "" {
			return pfx.Err(fmt.Errorf("a person with an empty name is present in the pedigree"))
		}
		if name != p.Name {
			return pfx.Err(fmt.Errorf("person %q is filed under the name %q", p.Name, name))
		}

		if (p.Mother == "") != (p.Father == "") {
			return pfx.Err(fmt.Errorf("person %q names only one parent; founders name neither and everyone else names both", name))
		}

		if p.Mother != "" {
			if _, exists := ped[p.Mother]; !exists {
				return pfx.Err(fmt.Errorf("person %q names mother %q, who is not in the pedigree", name, p.Mother))
			}
			if _, exists := ped[p.Father]; !exists {
				return pfx.Err(fmt.Errorf("person %q names father %q, who is not in the pedigree", name, p.Father))
			}
		}
	}

	return nil
}
