package score_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"synstatement/internal/score"
	"synstatement/internal/statement"
	"synstatement/pkg/models"
)

func truthFixture() models.GroundTruth {
	stmt := &models.Statement{
		Company:  models.Company{Name: "Northern Foods Supply Co."},
		Customer: models.Customer{Name: "SOBEYS INC.", AccountCode: "SOB001"},
		Number:   "48210",
		Date:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Transactions: []models.Transaction{
			{
				Date: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), Type: models.TypeInvoice,
				Reference: "INV10001", Description: "Product delivery",
				Amount: decimal.NewFromFloat(1200.00), IsDebit: true,
				BalanceAfter: decimal.NewFromFloat(1200.00),
			},
		},
		TotalDue: decimal.NewFromFloat(1200.00),
		Aging:    models.AgingSnapshot{Days1To30: decimal.NewFromFloat(1200.00)},
	}
	return statement.Projector{RunID: "run-score"}.Project(stmt, "SheldonCreek")
}

func writeTruth(t *testing.T, dir string, gt models.GroundTruth) {
	t.Helper()
	path := filepath.Join(dir, "statement_001_SheldonCreek"+score.GroundTruthSuffix)
	if err := statement.WriteGroundTruth(path, gt); err != nil {
		t.Fatalf("write ground truth: %v", err)
	}
}

func writeExtraction(t *testing.T, dir string, extraction score.Extraction) {
	t.Helper()
	data, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		t.Fatalf("marshal extraction: %v", err)
	}
	path := filepath.Join(dir, "statement_001_SheldonCreek.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write extraction: %v", err)
	}
}

func perfectExtraction(gt models.GroundTruth) score.Extraction {
	return score.Extraction{
		StatementNumber: gt.Metadata.StatementNumber,
		StatementDate:   gt.Metadata.StatementDate,
		TotalDue:        gt.Balances.TotalDue,
		Aging:           gt.Balances.Aging,
		NumTransactions: gt.Labels.NumTransactions,
	}
}

func TestScorePerfectExtraction(t *testing.T) {
	truthDir, extractedDir := t.TempDir(), t.TempDir()
	gt := truthFixture()
	writeTruth(t, truthDir, gt)
	writeExtraction(t, extractedDir, perfectExtraction(gt))

	report, err := score.NewScorer(0).ScoreDirs(truthDir, extractedDir)
	if err != nil {
		t.Fatalf("ScoreDirs: %v", err)
	}

	if report.FilesScored != 1 || report.FilesMissing != 0 {
		t.Fatalf("scored/missing = %d/%d, want 1/0", report.FilesScored, report.FilesMissing)
	}
	if report.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", report.Accuracy)
	}
	if report.FieldsTotal != 9 {
		t.Errorf("fields_total = %d, want 9", report.FieldsTotal)
	}
}

func TestScoreFieldMismatches(t *testing.T) {
	gt := truthFixture()

	tests := []struct {
		name        string
		mutate      func(e *score.Extraction)
		wrongFields int
	}{
		{
			"wrong total",
			func(e *score.Extraction) { e.TotalDue = e.TotalDue.Add(decimal.NewFromInt(5)) },
			1,
		},
		{
			"wrong statement number",
			func(e *score.Extraction) { e.StatementNumber = "99999" },
			1,
		},
		{
			"wrong count and bucket",
			func(e *score.Extraction) {
				e.NumTransactions = 3
				e.Aging.Days1To30 = decimal.Zero
			},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truthDir, extractedDir := t.TempDir(), t.TempDir()
			writeTruth(t, truthDir, gt)
			extraction := perfectExtraction(gt)
			tt.mutate(&extraction)
			writeExtraction(t, extractedDir, extraction)

			report, err := score.NewScorer(0).ScoreDirs(truthDir, extractedDir)
			if err != nil {
				t.Fatalf("ScoreDirs: %v", err)
			}

			wantCorrect := report.FieldsTotal - tt.wrongFields
			if report.FieldsCorrect != wantCorrect {
				t.Errorf("fields_correct = %d, want %d", report.FieldsCorrect, wantCorrect)
			}
			if report.Accuracy >= 1.0 {
				t.Errorf("accuracy = %v, want below 1.0", report.Accuracy)
			}
		})
	}
}

func TestScoreWithinTolerance(t *testing.T) {
	truthDir, extractedDir := t.TempDir(), t.TempDir()
	gt := truthFixture()
	writeTruth(t, truthDir, gt)

	extraction := perfectExtraction(gt)
	extraction.TotalDue = gt.Balances.TotalDue.Add(decimal.NewFromFloat(0.005))
	writeExtraction(t, extractedDir, extraction)

	report, err := score.NewScorer(0).ScoreDirs(truthDir, extractedDir)
	if err != nil {
		t.Fatalf("ScoreDirs: %v", err)
	}
	if report.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0 (0.005 is within the default tolerance)", report.Accuracy)
	}
}

func TestScoreMissingExtraction(t *testing.T) {
	truthDir, extractedDir := t.TempDir(), t.TempDir()
	writeTruth(t, truthDir, truthFixture())

	report, err := score.NewScorer(0).ScoreDirs(truthDir, extractedDir)
	if err != nil {
		t.Fatalf("ScoreDirs: %v", err)
	}

	if report.FilesMissing != 1 || report.FilesScored != 0 {
		t.Errorf("missing/scored = %d/%d, want 1/0", report.FilesMissing, report.FilesScored)
	}
	if len(report.Files) != 1 || !report.Files[0].Missing {
		t.Error("missing extraction not reported per file")
	}
}

func TestScoreMalformedExtraction(t *testing.T) {
	truthDir, extractedDir := t.TempDir(), t.TempDir()
	writeTruth(t, truthDir, truthFixture())
	path := filepath.Join(extractedDir, "statement_001_SheldonCreek.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write extraction: %v", err)
	}

	report, err := score.NewScorer(0).ScoreDirs(truthDir, extractedDir)
	if err != nil {
		t.Fatalf("malformed extraction must not abort the run: %v", err)
	}

	file := report.Files[0]
	if file.Error == "" {
		t.Error("malformed extraction not flagged")
	}
	if file.FieldsCorrect != 0 || file.Accuracy != 0 {
		t.Errorf("malformed extraction scored %d fields correct", file.FieldsCorrect)
	}
	if report.Accuracy >= 1.0 {
		t.Errorf("accuracy = %v, want below 1.0", report.Accuracy)
	}
}

func TestScoreEmptyTruthDir(t *testing.T) {
	if _, err := score.NewScorer(0).ScoreDirs(t.TempDir(), t.TempDir()); err == nil {
		t.Error("expected an error for a directory without ground-truth files")
	}
}

func TestWriteReport(t *testing.T) {
	truthDir, extractedDir := t.TempDir(), t.TempDir()
	gt := truthFixture()
	writeTruth(t, truthDir, gt)
	writeExtraction(t, extractedDir, perfectExtraction(gt))

	report, err := score.NewScorer(0).ScoreDirs(truthDir, extractedDir)
	if err != nil {
		t.Fatalf("ScoreDirs: %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := score.WriteReport(path, report); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded score.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if decoded.Accuracy != report.Accuracy {
		t.Errorf("round-tripped accuracy = %v, want %v", decoded.Accuracy, report.Accuracy)
	}
}
