package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	csvPath := flag.String("csv", "", "Filename of the pedigree CSV to convert")
	dbPath := flag.String("db", "", "Filename of the SQLite pedigree database to create")
	flag.Parse()

	if *csvPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree CSV found")
	}

	if strings.HasPrefix(*csvPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*csvPath = filepath.Join(usr.HomeDir, (*csvPath)[2:])
	}

	if *dbPath == "" {
		*dbPath = *csvPath + ".db"
	}

	if strings.HasPrefix(*dbPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*dbPath = filepath.Join(usr.HomeDir, (*dbPath)[2:])
	}

	ped, err := heredity.LoadCSV(*csvPath)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", len(ped), "people from", *csvPath)

	log.Println("Writing with the", heredity.WhichSQLiteDriver(), "driver to", *dbPath)
	pdb, err := heredity.OpenPedigreeDB(*dbPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer pdb.Close()

	if err := pdb.WritePedigree(ped); err != nil {
		log.Fatalln(err)
	}

	rows, err := pdb.DB.Queryx("SELECT name, mother, father, trait FROM Person ORDER BY name ASC")
	if err != nil {
		log.Fatalln(err)
	}
	defer rows.Close()

	i := 0
	var row heredity.PersonRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%d) %+v\n", i, row)
		i++
	}
	rows.Close()

	log.Println("Stored", i, "people")
}
