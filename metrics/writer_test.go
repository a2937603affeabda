package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteGameRecords(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error creating writer, got %v", err)
	}

	records := []GameRecord{
		{ID: 1, Moves: 140, Score: 210, Foundation: 52, Hints: 60, Draws: 30, Won: true, Duration: 3 * time.Millisecond},
		{ID: 2, Moves: 87, Score: 45, Foundation: 11, Hints: 20, Draws: 40, Duration: 2 * time.Millisecond},
	}
	if err := writer.WriteGameRecords(records); err != nil {
		t.Fatalf("expected no error writing records, got %v", err)
	}

	f, err := os.Open(filepath.Join(writer.BaseDir(), "game_records.csv"))
	if err != nil {
		t.Fatalf("expected the records file to exist, got %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("expected valid CSV, got %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "id" || rows[0][6] != "won" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][6] != "true" || rows[2][6] != "false" {
		t.Errorf("won column mismatch: %v / %v", rows[1], rows[2])
	}
	if rows[2][1] != "87" {
		t.Errorf("expected 87 moves in row 2, got %v", rows[2][1])
	}
}
