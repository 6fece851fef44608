package cmd

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/classroom-sim/classroom-sim/classifier"
)

var (
	trainDataPath     string
	trainOutPath      string
	trainNumTrees     int
	trainMaxDepth     int
	trainMinLeaf      int
	trainTestFraction float64
	trainSeed         int64
)

// trainCmd fits the learning-environment classifier from a labeled CSV and
// writes the model file the `run` command loads.
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the learning-environment classifier from labeled data",
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := classifier.LoadDataset(trainDataPath)
		if err != nil {
			logrus.Fatalf("Failed to load dataset: %v", err)
		}
		logrus.Infof("Loaded %d samples from %s", ds.Len(), trainDataPath)

		rng := rand.New(rand.NewSource(trainSeed))
		trainSet, testSet, err := ds.Split(trainTestFraction, rng)
		if err != nil {
			logrus.Fatalf("Failed to split dataset: %v", err)
		}

		forest, err := classifier.Train(trainSet, classifier.TrainOptions{
			NumTrees: trainNumTrees,
			MaxDepth: trainMaxDepth,
			MinLeaf:  trainMinLeaf,
			Seed:     trainSeed,
		})
		if err != nil {
			logrus.Fatalf("Training failed: %v", err)
		}

		if testSet.Len() > 0 {
			acc, err := classifier.Accuracy(forest, testSet)
			if err != nil {
				logrus.Fatalf("Evaluation failed: %v", err)
			}
			logrus.Infof("Model trained with accuracy: %.2f (%d held-out samples)", acc, testSet.Len())
		}
		logrus.Infof("Extracted thresholds: %+v", forest.Thresholds)

		if err := forest.Save(trainOutPath); err != nil {
			logrus.Fatalf("Failed to save model: %v", err)
		}
		logrus.Infof("Model saved to %s", trainOutPath)
	},
}

func init() {
	trainCmd.Flags().StringVar(&trainDataPath, "data", "", "Labeled CSV dataset (co2,temperature,noise,light,conducive)")
	trainCmd.Flags().StringVar(&trainOutPath, "out", "trained_model.json", "Where to write the trained model")
	trainCmd.Flags().IntVar(&trainNumTrees, "trees", 50, "Number of trees in the forest")
	trainCmd.Flags().IntVar(&trainMaxDepth, "max-depth", 6, "Maximum tree depth")
	trainCmd.Flags().IntVar(&trainMinLeaf, "min-leaf", 2, "Minimum samples per leaf")
	trainCmd.Flags().Float64Var(&trainTestFraction, "test-fraction", 0.2, "Fraction of samples held out for accuracy reporting")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 42, "Seed for bootstrap sampling and the train/test split")
	_ = trainCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(trainCmd)
}
