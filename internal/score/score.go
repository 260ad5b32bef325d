// Package score evaluates extraction output against the ground-truth
// records generated alongside rendered statements.
//
// Extraction files are matched to ground-truth files by base name: the
// output for statement_001_SheldonCreek.pdf is expected at
// statement_001_SheldonCreek.json next to the extractor's other results,
// and is scored against statement_001_SheldonCreek_ground_truth.json.
package score

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"synstatement/internal/logger"
	"synstatement/pkg/models"
)

// GroundTruthSuffix is the filename suffix of ground-truth records.
const GroundTruthSuffix = "_ground_truth.json"

// DefaultTolerance is the absolute tolerance for monetary comparisons.
const DefaultTolerance = 0.01

// Extraction is the field subset any extractor is expected to produce
// for a statement document.
type Extraction struct {
	StatementNumber string                  `json:"statement_number"`
	StatementDate   string                  `json:"statement_date"`
	TotalDue        decimal.Decimal         `json:"total_due"`
	Aging           models.GroundTruthAging `json:"aging"`
	NumTransactions int                     `json:"num_transactions"`
}

// FieldResult records the comparison of one field.
type FieldResult struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Correct  bool   `json:"correct"`
}

// FileReport scores one extraction file against its ground truth.
type FileReport struct {
	GroundTruthFile string        `json:"ground_truth_file"`
	ExtractionFile  string        `json:"extraction_file,omitempty"`
	Missing         bool          `json:"missing"`
	Error           string        `json:"error,omitempty"`
	FieldsTotal     int           `json:"fields_total"`
	FieldsCorrect   int           `json:"fields_correct"`
	Accuracy        float64       `json:"accuracy"`
	Fields          []FieldResult `json:"fields,omitempty"`
}

// Report aggregates field accuracy over a directory pair.
type Report struct {
	TruthDir      string       `json:"truth_dir"`
	ExtractedDir  string       `json:"extracted_dir"`
	Files         []FileReport `json:"files"`
	FilesScored   int          `json:"files_scored"`
	FilesMissing  int          `json:"files_missing"`
	FieldsTotal   int          `json:"fields_total"`
	FieldsCorrect int          `json:"fields_correct"`
	Accuracy      float64      `json:"accuracy"`
}

// Scorer compares extraction output with ground truth.
type Scorer struct {
	tolerance decimal.Decimal
	log       zerolog.Logger
}

// NewScorer creates a scorer with the given absolute tolerance for
// monetary fields. Tolerances at or below zero use DefaultTolerance.
func NewScorer(tolerance float64) *Scorer {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Scorer{
		tolerance: decimal.NewFromFloat(tolerance),
		log:       logger.WithComponent("score"),
	}
}

// ScoreDirs scores every ground-truth file in truthDir against the
// matching extraction file in extractedDir. A missing extraction file is
// counted, not an error.
func (s *Scorer) ScoreDirs(truthDir, extractedDir string) (*Report, error) {
	pattern := filepath.Join(truthDir, "*"+GroundTruthSuffix)
	truthFiles, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list ground-truth files: %w", err)
	}
	if len(truthFiles) == 0 {
		return nil, fmt.Errorf("no ground-truth files found in %s", truthDir)
	}
	sort.Strings(truthFiles)

	report := &Report{TruthDir: truthDir, ExtractedDir: extractedDir}
	for _, truthPath := range truthFiles {
		fileReport, err := s.scoreFile(truthPath, extractedDir)
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, fileReport)

		if fileReport.Missing {
			report.FilesMissing++
			continue
		}
		report.FilesScored++
		report.FieldsTotal += fileReport.FieldsTotal
		report.FieldsCorrect += fileReport.FieldsCorrect
	}
	if report.FieldsTotal > 0 {
		report.Accuracy = float64(report.FieldsCorrect) / float64(report.FieldsTotal)
	}

	s.log.Info().
		Int("files_scored", report.FilesScored).
		Int("files_missing", report.FilesMissing).
		Float64("accuracy", report.Accuracy).
		Msg("Scoring completed")

	return report, nil
}

func (s *Scorer) scoreFile(truthPath, extractedDir string) (FileReport, error) {
	fileReport := FileReport{GroundTruthFile: filepath.Base(truthPath)}

	truthData, err := os.ReadFile(truthPath)
	if err != nil {
		return fileReport, fmt.Errorf("failed to read ground truth %s: %w", truthPath, err)
	}
	var gt models.GroundTruth
	if err := json.Unmarshal(truthData, &gt); err != nil {
		return fileReport, fmt.Errorf("failed to parse ground truth %s: %w", truthPath, err)
	}

	base := strings.TrimSuffix(filepath.Base(truthPath), GroundTruthSuffix)
	extractionPath := filepath.Join(extractedDir, base+".json")
	extractionData, err := os.ReadFile(extractionPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn().Str("file", extractionPath).Msg("No extraction output for ground truth")
			fileReport.Missing = true
			return fileReport, nil
		}
		return fileReport, fmt.Errorf("failed to read extraction %s: %w", extractionPath, err)
	}
	fileReport.ExtractionFile = filepath.Base(extractionPath)

	var extraction Extraction
	if err := json.Unmarshal(extractionData, &extraction); err != nil {
		// A malformed extraction scores zero instead of aborting the run.
		fileReport.Error = fmt.Sprintf("invalid extraction JSON: %v", err)
		fileReport.FieldsTotal = len(s.compare(gt, Extraction{}))
		return fileReport, nil
	}

	fileReport.Fields = s.compare(gt, extraction)
	fileReport.FieldsTotal = len(fileReport.Fields)
	for _, f := range fileReport.Fields {
		if f.Correct {
			fileReport.FieldsCorrect++
		}
	}
	if fileReport.FieldsTotal > 0 {
		fileReport.Accuracy = float64(fileReport.FieldsCorrect) / float64(fileReport.FieldsTotal)
	}
	return fileReport, nil
}

// compare produces the per-field breakdown. String fields compare exact
// after trimming; monetary fields compare within the absolute tolerance.
func (s *Scorer) compare(gt models.GroundTruth, extraction Extraction) []FieldResult {
	results := []FieldResult{
		s.compareString("statement_number", gt.Metadata.StatementNumber, extraction.StatementNumber),
		s.compareString("statement_date", gt.Metadata.StatementDate, extraction.StatementDate),
		s.compareDecimal("total_due", gt.Balances.TotalDue, extraction.TotalDue),
		s.compareDecimal("aging.current", gt.Balances.Aging.Current, extraction.Aging.Current),
		s.compareDecimal("aging.days_1_30", gt.Balances.Aging.Days1To30, extraction.Aging.Days1To30),
		s.compareDecimal("aging.days_31_60", gt.Balances.Aging.Days31To60, extraction.Aging.Days31To60),
		s.compareDecimal("aging.days_61_90", gt.Balances.Aging.Days61To90, extraction.Aging.Days61To90),
		s.compareDecimal("aging.days_90_plus", gt.Balances.Aging.Days90Plus, extraction.Aging.Days90Plus),
		{
			Field:    "num_transactions",
			Expected: fmt.Sprintf("%d", gt.Labels.NumTransactions),
			Actual:   fmt.Sprintf("%d", extraction.NumTransactions),
			Correct:  gt.Labels.NumTransactions == extraction.NumTransactions,
		},
	}
	return results
}

func (s *Scorer) compareString(field, expected, actual string) FieldResult {
	return FieldResult{
		Field:    field,
		Expected: expected,
		Actual:   actual,
		Correct:  strings.TrimSpace(expected) == strings.TrimSpace(actual),
	}
}

func (s *Scorer) compareDecimal(field string, expected, actual decimal.Decimal) FieldResult {
	return FieldResult{
		Field:    field,
		Expected: expected.StringFixed(2),
		Actual:   actual.StringFixed(2),
		Correct:  expected.Sub(actual).Abs().LessThanOrEqual(s.tolerance),
	}
}

// WriteReport persists a report as indented JSON.
func WriteReport(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
