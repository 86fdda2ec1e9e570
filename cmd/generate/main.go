package main

import (
	"flag"
	"log"
	"time"

	"carprice_backend/internal/feature/dataset"
)

func main() {
	var (
		n    = flag.Int("rows", 60000, "number of listings to generate")
		out  = flag.String("out", "enhanced_car_dataset.csv", "output CSV path")
		seed = flag.Int64("seed", 42, "random seed")
		year = flag.Int("year", time.Now().Year(), "current calendar year")
	)
	flag.Parse()

	s := dataset.NewSynthesizer(*seed, *year)
	rows := s.Generate(*n)

	if err := dataset.WriteCSV(*out, rows); err != nil {
		log.Fatal("failed to write dataset:", err)
	}
	log.Printf("generated %d rows to %s", len(rows), *out)
}
