package heredity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/zstd"
)

// LoadCSV reads a pedigree from a CSV file. Files whose names end in .zst
// are decompressed transparently. See ReadCSV for the expected layout.
func LoadCSV(path string) (Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer dec.Close()
		r = dec
	}

	return ReadCSV(r)
}

// ReadCSV parses a pedigree from CSV data with a header row naming at least
// the columns name, mother, father, and trait. An empty mother and father
// mark a founder. The trait column holds "1" for observed-present, "0" for
// observed-absent, or nothing when unobserved; any other value is an error,
// never silently treated as unobserved.
func ReadCSV(r io.Reader) (Pedigree, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("reading the pedigree header row: %w", err))
	}

	col := make(map[string]int, len(header))
	for i, field := range header {
		col[strings.TrimSpace(field)] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, exists := col[required]; !exists {
			return nil, pfx.Err(fmt.Errorf("the pedigree header is missing the %q column", required))
		}
	}

	ped := make(Pedigree)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		name := record[col["name"]]
		if name == "" {
			return nil, pfx.Err(fmt.Errorf("a pedigree row has an empty name"))
		}
		if _, exists := ped[name]; exists {
			return nil, pfx.Err(fmt.Errorf("person %q appears more than once in the pedigree", name))
		}

		trait, err := decodeTrait(record[col["trait"]])
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("person %q: %w", name, err))
		}

		ped[name] = Person{
			Name:   name,
			Mother: record[col["mother"]],
			Father: record[col["father"]],
			Trait:  trait,
		}
	}

	return ped, nil
}

func decodeTrait(field string) (TraitStatus, error) {
	switch field {
	case "":
		return TraitUnknown, nil
	case "0":
		return TraitAbsent, nil
	case "1":
		return TraitPresent, nil
	}

	return TraitUnknown, fmt.Errorf("trait value %q is not one of 1, 0, or empty", field)
}
