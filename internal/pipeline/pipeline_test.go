package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/rendstat/internal/config"
	"github.com/backmassage/rendstat/internal/logging"
	"github.com/backmassage/rendstat/internal/render"
	"github.com/backmassage/rendstat/internal/stats"
)

func writeLog(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newTestLogger(t *testing.T, dir string) (*config.Config, *logging.Logger) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Path = dir
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close() })
	return &cfg, log
}

// --- SelectFiles tests ---

func TestSelectFiles_MatchesDayLogPattern(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv", "")
	writeLog(t, dir, "renders_2023-12-31.csv", "")
	writeLog(t, dir, "renders_2024-1-1.csv", "")        // digits not padded
	writeLog(t, dir, "renders_2024-01-01.csv.bak", "")  // trailing junk
	writeLog(t, dir, "old_renders_2024-01-01.csv", "")  // leading junk
	writeLog(t, dir, "renders_2024-01-01.txt", "")      // wrong extension
	writeLog(t, dir, "renders.csv", "")                 // no date stamp
	writeLog(t, dir, "notes.md", "")

	files, err := SelectFiles(dir)
	if err != nil {
		t.Fatalf("SelectFiles: %v", err)
	}

	want := []string{"renders_2023-12-31.csv", "renders_2024-01-01.csv"}
	got := basenames(files)
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectFiles_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv", "")
	sub := filepath.Join(dir, "archive")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeLog(t, sub, "renders_2024-01-02.csv", "")
	// A directory whose name matches the pattern is not a log file.
	if err := os.MkdirAll(filepath.Join(dir, "renders_2024-01-03.csv"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := SelectFiles(dir)
	if err != nil {
		t.Fatalf("SelectFiles: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1: %v", len(files), basenames(files))
	}
}

func TestSelectFiles_SortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-03-01.csv", "")
	writeLog(t, dir, "renders_2024-01-15.csv", "")
	writeLog(t, dir, "renders_2024-02-28.csv", "")

	files, err := SelectFiles(dir)
	if err != nil {
		t.Fatalf("SelectFiles: %v", err)
	}
	for i := 1; i < len(files); i++ {
		if files[i] < files[i-1] {
			t.Errorf("not sorted: %q before %q", files[i-1], files[i])
		}
	}
}

func TestSelectFiles_MissingDirectory(t *testing.T) {
	_, err := SelectFiles(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("got %v, want ErrDirectoryNotFound", err)
	}
}

func TestSelectFiles_PathIsAFile(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv", "")

	_, err := SelectFiles(filepath.Join(dir, "renders_2024-01-01.csv"))
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("got %v, want ErrDirectoryNotFound", err)
	}
}

// --- Scanner tests ---

func TestScanner_StreamsAcceptedRecords(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv",
		"id1,Maya,Arnold,10,true,5000,2.5,80.0\n"+
			"id2,Houdini,Mantra,4,true,2000,1.0,40.0\n"+
			"id3,Maya,Arnold,8,false,,,\n")

	sc, err := OpenScanner(filepath.Join(dir, "renders_2024-01-01.csv"), render.Criteria{Application: "Maya"})
	if err != nil {
		t.Fatalf("OpenScanner: %v", err)
	}
	defer sc.Close()

	var ids []string
	for {
		rec, ok, err := sc.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		ids = append(ids, rec.ID)
	}

	// id2 filtered by app, id3 filtered as failed.
	if !sliceEqual(ids, []string{"id1"}) {
		t.Errorf("got %v, want [id1]", ids)
	}
}

func TestScanner_MalformedFrameCount(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv",
		"id1,Maya,Arnold,10,true,5000,2.5,80.0\n"+
			"id2,Maya,Arnold,lots,true,5000,2.5,80.0\n")

	sc, err := OpenScanner(filepath.Join(dir, "renders_2024-01-01.csv"), render.Criteria{})
	if err != nil {
		t.Fatalf("OpenScanner: %v", err)
	}
	defer sc.Close()

	if _, ok, err := sc.Next(); err != nil || !ok {
		t.Fatalf("first row: ok=%v err=%v", ok, err)
	}

	_, _, err = sc.Next()
	var mre *MalformedRowError
	if !errors.As(err, &mre) {
		t.Fatalf("got %v, want MalformedRowError", err)
	}
	if mre.File != "renders_2024-01-01.csv" || mre.Line != 2 {
		t.Errorf("error location = %s:%d, want renders_2024-01-01.csv:2", mre.File, mre.Line)
	}
}

func TestScanner_WrongColumnCount(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv", "id1,Maya,Arnold,10,true\n")

	sc, err := OpenScanner(filepath.Join(dir, "renders_2024-01-01.csv"), render.Criteria{})
	if err != nil {
		t.Fatalf("OpenScanner: %v", err)
	}
	defer sc.Close()

	_, _, err = sc.Next()
	var mre *MalformedRowError
	if !errors.As(err, &mre) {
		t.Fatalf("got %v, want MalformedRowError", err)
	}
}

// --- Run tests ---

func runScan(t *testing.T, dir string, criteria render.Criteria) (*stats.Aggregate, error) {
	t.Helper()
	cfg, log := newTestLogger(t, dir)
	cfg.AppFilter = criteria.Application
	cfg.RendererFilter = criteria.Renderer
	cfg.IncludeFailed = criteria.IncludeFailed
	return Run(cfg, log)
}

func TestRun_EmptyDirectory(t *testing.T) {
	agg, err := runScan(t, t.TempDir(), render.Criteria{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if agg.Count() != 0 {
		t.Errorf("count = %d, want 0", agg.Count())
	}
	if agg.AvgTimeSeconds() != 0 || agg.AvgCPU() != 0 || agg.AvgRAM() != 0 {
		t.Error("averages should be 0 with no files")
	}
	if agg.MaxRAMID() != "" || agg.MaxCPUID() != "" {
		t.Error("max ids should be empty with no files")
	}
}

func TestRun_DayLogScenario(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv",
		"id1,Maya,Arnold,10,true,5000,2.5,80.0\n"+
			"id2,Maya,Arnold,8,false,,,\n")

	agg, err := runScan(t, dir, render.Criteria{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if agg.Count() != 1 {
		t.Errorf("count = %d, want 1", agg.Count())
	}
	if agg.AvgTimeSeconds() != 5 {
		t.Errorf("avgtime = %v, want 5", agg.AvgTimeSeconds())
	}
	if agg.AvgCPU() != 80.0 {
		t.Errorf("avgcpu = %v, want 80", agg.AvgCPU())
	}
	if agg.AvgRAM() != 2.5 {
		t.Errorf("avgram = %v, want 2.5", agg.AvgRAM())
	}
	if agg.MaxCPUID() != "id1" || agg.MaxRAMID() != "id1" {
		t.Errorf("max ids = %q/%q, want id1/id1", agg.MaxCPUID(), agg.MaxRAMID())
	}

	// Including failed renders raises the count; the empty-fielded failed
	// record contributes to no metric.
	agg, err = runScan(t, dir, render.Criteria{IncludeFailed: true})
	if err != nil {
		t.Fatalf("Run (failed included): %v", err)
	}
	if agg.Count() != 2 {
		t.Errorf("count = %d, want 2", agg.Count())
	}
	if agg.AvgTimeSeconds() != 5 || agg.AvgCPU() != 80.0 || agg.AvgRAM() != 2.5 {
		t.Error("averages must be unchanged when the failed record has no data")
	}
	if agg.MaxCPUID() != "id1" || agg.MaxRAMID() != "id1" {
		t.Error("max ids must be unchanged when the failed record has no data")
	}
}

func TestRun_TieAcrossFilesKeepsEarlierFile(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv", "early,Maya,Arnold,1,true,,4.0,90.0\n")
	writeLog(t, dir, "renders_2024-01-02.csv", "late,Maya,Arnold,1,true,,4.0,90.0\n")

	agg, err := runScan(t, dir, render.Criteria{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if agg.MaxRAMID() != "early" || agg.MaxCPUID() != "early" {
		t.Errorf("max ids = %q/%q, want early/early", agg.MaxRAMID(), agg.MaxCPUID())
	}
}

func TestRun_AbortsOnMalformedRow(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "renders_2024-01-01.csv", "id1,Maya,Arnold,10,true,5000,2.5,80.0\n")
	writeLog(t, dir, "renders_2024-01-02.csv", "id2,Maya,Arnold,NaN,true,5000,2.5,80.0\n")

	_, err := runScan(t, dir, render.Criteria{})
	var mre *MalformedRowError
	if !errors.As(err, &mre) {
		t.Fatalf("got %v, want MalformedRowError", err)
	}
	if mre.File != "renders_2024-01-02.csv" {
		t.Errorf("error file = %s, want renders_2024-01-02.csv", mre.File)
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	_, err := runScan(t, filepath.Join(t.TempDir(), "gone"), render.Criteria{})
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("got %v, want ErrDirectoryNotFound", err)
	}
}
