package heredity

import (
	"reflect"
	"testing"
)

func TestNamesAreSorted(t *testing.T) {
	names := testFamily().Names()
	expected := []string{"Harry", "James", "Lily"}

	if !reflect.DeepEqual(names, expected) {
		t.Errorf("got %v, expected %v", names, expected)
	}
}

func TestFounder(t *testing.T) {
	ped := testFamily()

	if ped["Harry"].Founder() {
		t.Error("Harry has two parents and is not a founder")
	}
	if !ped["James"].Founder() {
		t.Error("James has no parents and is a founder")
	}
}

func TestValidateAcceptsWellFormedPedigrees(t *testing.T) {
	if err := testFamily().Validate(); err != nil {
		t.Error(err)
	}
	if err := (Pedigree{}).Validate(); err != nil {
		t.Error(err)
	}
}

func TestValidateRejectsMissingFather(t *testing.T) {
	ped := Pedigree{
		"Child":  {Name: "Child", Mother: "Mother", Father: "Ghost"},
		"Mother": {Name: "Mother"},
	}

	if err := ped.Validate(); err == nil {
		t.Error("expected an error for a father who is not in the pedigree")
	}
}

func TestValidateRejectsMisfiledPerson(t *testing.T) {
	ped := Pedigree{"A": {Name: "B"}}

	if err := ped.Validate(); err == nil {
		t.Error("expected an error when a person is filed under another name")
	}
}

func TestTraitStatusString(t *testing.T) {
	cases := map[TraitStatus]string{
		TraitUnknown:   "TraitUnknown",
		TraitAbsent:    "TraitAbsent",
		TraitPresent:   "TraitPresent",
		TraitStatus(9): "Illegal selection",
	}

	for status, expected := range cases {
		if got := status.String(); got != expected {
			t.Errorf("got %q, expected %q", got, expected)
		}
	}
}
