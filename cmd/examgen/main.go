// examgen is the one-shot batch generator: it reads a tagged question
// document, shuffles the options of every choice question, and writes the
// exam paper and answer key next to each other.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/ooh112526-sudo/physics-exam-generator/internal/config"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/importer"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/logger"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/render"

	"go.uber.org/zap"
)

func main() {
	var (
		inPath    = flag.String("in", "", "tagged question document to import")
		outDir    = flag.String("out", ".", "directory for the generated documents")
		title     = flag.String("title", "", "subject title (defaults to exam.title from config)")
		noShuffle = flag.Bool("no-shuffle", false, "render options in their stored order")
		seed      = flag.Int64("seed", 0, "random seed for a reproducible shuffle (0 = time-based)")
		template  = flag.Bool("template", false, "print the import template and exit")
	)
	flag.Parse()

	if *template {
		fmt.Print(importer.SampleDocument)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *inPath == "" {
		logger.Get().Fatal("Missing required -in flag")
	}

	doc, err := os.ReadFile(*inPath)
	if err != nil {
		logger.Get().Fatal("Failed to read input document", zap.Error(err))
	}

	questions, err := importer.NewParser().Parse(string(doc))
	if err != nil {
		logger.Get().Fatal("Import failed", zap.Error(err))
	}
	logger.Get().Info("Document imported", zap.Int("questions", len(questions)))

	shuffler := domain.NewShuffler(seededPermuter(*seed))
	processed := make([]domain.Question, len(questions))
	for i, q := range questions {
		if *noShuffle {
			processed[i] = q
		} else {
			processed[i] = shuffler.Shuffle(q)
		}
	}

	paperTitle := *title
	if paperTitle == "" {
		paperTitle = cfg.Exam.Title
	}
	renderer := render.NewRenderer(paperTitle)

	examPath := filepath.Join(*outDir, "exam.txt")
	keyPath := filepath.Join(*outDir, "answer_key.txt")
	if err := os.WriteFile(examPath, renderer.RenderExam(processed), 0o644); err != nil {
		logger.Get().Fatal("Failed to write exam paper", zap.Error(err))
	}
	if err := os.WriteFile(keyPath, renderer.RenderAnswerKey(processed), 0o644); err != nil {
		logger.Get().Fatal("Failed to write answer key", zap.Error(err))
	}

	logger.Get().Info("Export written",
		zap.String("exam", examPath),
		zap.String("answer_key", keyPath),
		zap.Int("questions", len(processed)),
	)
}

// seededPermuter returns a deterministic Permuter for a non-zero seed and
// nil (the process-wide random source) otherwise.
func seededPermuter(seed int64) domain.Permuter {
	if seed == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	return func(n int) []int { return rng.Perm(n) }
}
