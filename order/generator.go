package order

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"ordergen/constants"
	"ordergen/logger"
)

// Row is one line of the generated file
type Row struct {
	Order  int
	TaskID int
}

// Result describes a completed run
type Result struct {
	Path              string
	Rows              int
	AverageOccurrence float64
}

// NewRand returns the random source for cfg, seeded from cfg.Seed when set
func NewRand(cfg Config) *rand.Rand {
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- ordering only, not security sensitive
}

// Assign builds the balanced pool, shuffles it and trims it to cfg.NumRows.
// The ids that lose an occurrence are distinct and chosen at random, so id
// counts never differ by more than one.
func Assign(cfg Config, rng *rand.Rand) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := BuildPool(cfg.NumRows, cfg.MaxTaskID)
	Shuffle(pool, rng)
	pool = Trim(pool, cfg.NumRows, cfg.MaxTaskID, rng)

	rows := make([]Row, len(pool))
	for i, id := range pool {
		rows[i] = Row{Order: i + 1, TaskID: id}
	}
	return rows, nil
}

// Generate writes a shuffled order file to cfg.OutputPath, replacing any
// existing file. A failed write leaves whatever was already flushed.
func Generate(cfg Config, log logger.Logger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	log = log.WithFields(logger.String("path", cfg.OutputPath))
	log.Debug("Building task pool",
		logger.Int("numRows", cfg.NumRows),
		logger.Int("maxTaskID", cfg.MaxTaskID),
		logger.Int("repetitions", Repetitions(cfg.NumRows, cfg.MaxTaskID)))

	rows, err := Assign(cfg, NewRand(cfg))
	if err != nil {
		return Result{}, err
	}

	if err := writeFile(cfg.OutputPath, rows); err != nil {
		log.Error("Failed to write order file", err)
		return Result{}, err
	}

	res := Result{
		Path:              cfg.OutputPath,
		Rows:              len(rows),
		AverageOccurrence: float64(cfg.NumRows) / float64(cfg.MaxTaskID),
	}
	log.Info("Order file written", logger.Int("rows", res.Rows), logger.Float("average", res.AverageOccurrence))
	return res, nil
}

func writeFile(path string, rows []Row) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.OutputFileMode)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", ErrIOFailure, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close %s: %v", ErrIOFailure, path, cerr)
		}
	}()

	if err := WriteCSV(f, rows); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIOFailure, path, err)
	}
	return nil
}

// Summary returns the confirmation lines printed after a successful run
func Summary(res Result) []string {
	return []string{
		fmt.Sprintf("CSV file '%s' has been created successfully.", res.Path),
		fmt.Sprintf("Each task_id appears approximately %.2f times on average.", res.AverageOccurrence),
	}
}
