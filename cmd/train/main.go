package main

import (
	"flag"
	"log"

	"carprice_backend/internal/feature/training"
	"carprice_backend/internal/platform/ml"
)

func main() {
	var (
		in  = flag.String("data", "enhanced_car_dataset.csv", "input dataset CSV")
		out = flag.String("out", "car_model.json", "output model artifact path")
	)
	flag.Parse()

	result, err := training.Train(*in, ml.DefaultTrainParams())
	if err != nil {
		log.Fatal("training failed:", err)
	}

	log.Printf("trained on %d rows, evaluated on %d rows", result.TrainRows, result.TestRows)
	log.Printf("test R2: %.4f (%d trees)", result.R2, len(result.Artifact.Model.Trees))

	if err := result.Artifact.Save(*out); err != nil {
		log.Fatal("failed to save model artifact:", err)
	}
	log.Printf("model and encoders saved to %s", *out)
}
