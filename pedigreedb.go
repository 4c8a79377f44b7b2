package heredity

import (
	"database/sql/driver"
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PedigreeDB wraps a SQLite file holding one pedigree in a "Person" table,
// which can be easily parsed with sqlx.
type PedigreeDB struct {
	DB *sqlx.DB
}

func (p *PedigreeDB) Close() error {
	return p.DB.Close()
}

// PersonRow conforms to the rows of the SQLite table "Person". A NULL trait
// column means the trait was never observed for that person.
type PersonRow struct {
	Name   string      `db:"name"`
	Mother string      `db:"mother"`
	Father string      `db:"father"`
	Trait  TraitStatus `db:"trait"`
}

// Scan decodes the nullable trait column: NULL means unobserved, and the
// stored value is otherwise 0 or 1, whether typed as an integer or as text.
func (t *TraitStatus) Scan(v interface{}) error {
	switch which := v.(type) {
	case nil:
		*t = TraitUnknown
		return nil
	case int64:
		return t.decodeStored(which)
	case int:
		return t.decodeStored(int64(which))
	case []byte:
		return t.decodeStoredText(string(which))
	case string:
		return t.decodeStoredText(which)
	}

	return fmt.Errorf("No appropriate type could be found to decode %v", v)
}

// Value encodes the trait for storage, with TraitUnknown persisted as NULL.
func (t TraitStatus) Value() (driver.Value, error) {
	switch t {
	case TraitUnknown:
		return nil, nil
	case TraitAbsent:
		return int64(0), nil
	case TraitPresent:
		return int64(1), nil
	}

	return nil, fmt.Errorf("trait status %d cannot be stored", t)
}

func (t *TraitStatus) decodeStored(v int64) error {
	switch v {
	case 0:
		*t = TraitAbsent
	case 1:
		*t = TraitPresent
	default:
		return fmt.Errorf("stored trait value %d is not 0 or 1", v)
	}

	return nil
}

func (t *TraitStatus) decodeStoredText(v string) error {
	switch v {
	case "0":
		*t = TraitAbsent
	case "1":
		*t = TraitPresent
	default:
		return fmt.Errorf("stored trait value %q is not 0 or 1", v)
	}

	return nil
}

// ReadPedigree loads every row of the Person table into a Pedigree.
func (p *PedigreeDB) ReadPedigree() (Pedigree, error) {
	rows, err := p.DB.Queryx("SELECT name, mother, father, trait FROM Person ORDER BY name ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	ped := make(Pedigree)
	var row PersonRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}

		if _, exists := ped[row.Name]; exists {
			return nil, pfx.Err(fmt.Errorf("person %q appears more than once in the Person table", row.Name))
		}

		ped[row.Name] = Person{
			Name:   row.Name,
			Mother: row.Mother,
			Father: row.Father,
			Trait:  row.Trait,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return ped, nil
}

// WritePedigree creates the Person table if needed and stores every person
// in the pedigree, one row each.
func (p *PedigreeDB) WritePedigree(ped Pedigree) error {
	_, err := p.DB.Exec(`
	CREATE TABLE IF NOT EXISTS Person (
		name TEXT PRIMARY KEY,
		mother TEXT NOT NULL DEFAULT '',
		father TEXT NOT NULL DEFAULT '',
		trait INTEGER
	)`)
	if err != nil {
		return pfx.Err(err)
	}

	tx, err := p.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	for _, name := range ped.Names() {
		person := ped[name]
		row := PersonRow{
			Name:   person.Name,
			Mother: person.Mother,
			Father: person.Father,
			Trait:  person.Trait,
		}

		if _, err := tx.NamedExec("INSERT INTO Person (name, mother, father, trait) VALUES (:name, :mother, :father, :trait)", row); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
