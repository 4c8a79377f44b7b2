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
)

func main() {
	path := flag.String("pedigree", "", "Filename of the pedigree to process (.csv, .csv.zst, or a SQLite .db/.sqlite file)")
	workers := flag.Int("workers", 1, "Number of workers that partition the scenario space. 0 launches one per CPU.")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	ped, err := loadPedigree(*path)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", len(ped), "people from", *path)

	if count := heredity.ScenarioCount(len(ped)); count > 1e12 {
		log.Printf("Up to %g scenarios will be evaluated; expect this to take a while\n", count)
	}

	tables := heredity.DefaultTables()

	var posteriors map[string]*heredity.Posterior
	if *workers == 1 {
		posteriors, err = heredity.Infer(ped, tables)
	} else {
		posteriors, err = heredity.InferParallel(ped, tables, *workers)
	}
	if err != nil {
		log.Fatalln(err)
	}

	for _, name := range ped.Names() {
		post := posteriors[name]

		fmt.Printf("%s:\n", name)
		fmt.Printf("  Gene:\n")
		for g := 2; g >= 0; g-- {
			fmt.Printf("    %d: %.4f\n", g, post.Gene[g])
		}
		fmt.Printf("  Trait:\n")
		fmt.Printf("    true: %.4f\n", post.TraitP(true))
		fmt.Printf("    false: %.4f\n", post.TraitP(false))
	}
}

func loadPedigree(path string) (heredity.Pedigree, error) {
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		pdb, err := heredity.OpenPedigreeDB(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer pdb.Close()

		return pdb.ReadPedigree()
	}

	return heredity.LoadCSV(path)
}
