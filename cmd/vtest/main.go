package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xplshn/vinculum/pkg/config"
	"github.com/xplshn/vinculum/pkg/golden"
	"github.com/xplshn/vinculum/pkg/numeral"
)

var (
	testFiles  = flag.String("test-files", "testdata/*.txt", "Glob pattern(s) for corpus files to test (space-separated).")
	skipFiles  = flag.String("skip-files", "", "Files to skip (space-separated).")
	outputJSON = flag.String("output", ".test_results.json", "Output file for the JSON test report.")
	jobs       = flag.Int("j", 4, "Number of parallel test jobs.")
	std        = flag.String("std", config.StdVinculum, "Numeral standard to test against (vinculum, classic).")
	notation   = flag.String("notation", string(config.NotationUnicode), "Notation used for generated numerals (unicode, ascii).")
	verbose    = flag.Bool("v", false, "Enable verbose logging.")
	useCache   = flag.Bool("cached", false, "Skip corpus files that passed last run and have not changed since.")
)

const (
	cRed    = "\x1b[91m"
	cYellow = "\x1b[93m"
	cGreen  = "\x1b[92m"
	cCyan   = "\x1b[96m"
	cBold   = "\x1b[1m"
	cNone   = "\x1b[0m"
)

type fileResult struct {
	File    string
	Status  string // PASS, FAIL, SKIP, ERROR
	Message string
	Report  *golden.FileReport
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	cfg := config.NewConfig()
	if err := cfg.ApplyStd(*std); err != nil {
		log.Fatalf("%s[ERROR]%s %v\n", cRed, cNone, err)
	}
	if err := cfg.SetNotation(*notation); err != nil {
		log.Fatalf("%s[ERROR]%s %v\n", cRed, cNone, err)
	}
	conv, err := numeral.NewConverter(cfg)
	if err != nil {
		log.Fatalf("%s[ERROR]%s %v\n", cRed, cNone, err)
	}

	files, err := expandGlobPatterns(*testFiles)
	if err != nil {
		log.Fatalf("%s[ERROR]%s Invalid glob pattern(s): %v\n", cRed, cNone, err)
	}
	if len(files) == 0 {
		log.Println("No test files found matching the pattern(s).")
		return
	}

	previous, err := golden.LoadReport(*outputJSON)
	if err != nil {
		log.Printf("%s[WARN]%s %v. Cache will not be used.\n", cYellow, cNone, err)
		previous = make(golden.Report)
	}

	skipList := make(map[string]bool)
	for _, f := range strings.Fields(*skipFiles) {
		skipList[f] = true
	}

	start := time.Now()
	report := make(golden.Report)
	var results []fileResult
	for _, file := range files {
		res := testFile(conv, file, skipList, previous)
		if res.Report != nil {
			report[file] = res.Report
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
	failed := printSummary(results, time.Since(start))

	if err := report.Save(*outputJSON); err != nil {
		log.Printf("%s[WARN]%s Could not write report %s: %v\n", cYellow, cNone, *outputJSON, err)
	} else if *verbose {
		log.Printf("Report written to %s\n", *outputJSON)
	}
	if failed {
		os.Exit(1)
	}
}

func testFile(conv *numeral.Converter, file string, skipList map[string]bool, previous golden.Report) fileResult {
	if skipList[file] {
		return fileResult{File: file, Status: "SKIP", Message: "Explicitly skipped"}
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return fileResult{File: file, Status: "ERROR", Message: err.Error()}
	}
	hash := golden.Fingerprint(data)
	if *useCache && previous.Fresh(file, hash) {
		return fileResult{File: file, Status: "SKIP", Message: "Unchanged since last passing run", Report: previous[file]}
	}

	cases, err := golden.Read(file, bytes.NewReader(data))
	if err != nil {
		return fileResult{File: file, Status: "ERROR", Message: err.Error()}
	}
	if *verbose {
		log.Printf("[%s] %d case(s)\n", file, len(cases))
	}

	results := golden.Run(conv, cases, *jobs)
	passed, failed := golden.Summary(results)
	fr := &golden.FileReport{Hash: hash, Passed: passed, Failed: failed, Results: results}
	if failed > 0 {
		return fileResult{File: file, Status: "FAIL", Message: fmt.Sprintf("%d of %d case(s) failed", failed, len(cases)), Report: fr}
	}
	return fileResult{File: file, Status: "PASS", Message: fmt.Sprintf("%d case(s)", passed), Report: fr}
}

func printSummary(results []fileResult, elapsed time.Duration) (failed bool) {
	var pass, fail, skip, errs int
	fmt.Printf("\n%s--- Test Summary ---%s\n", cBold, cNone)
	for _, r := range results {
		switch r.Status {
		case "PASS":
			pass++
			fmt.Printf("%s[PASS]%s %s (%s)\n", cGreen, cNone, r.File, r.Message)
		case "SKIP":
			skip++
			fmt.Printf("%s[SKIP]%s %s: %s\n", cYellow, cNone, r.File, r.Message)
		case "ERROR":
			errs++
			fmt.Printf("%s[ERROR]%s %s: %s\n", cRed, cNone, r.File, r.Message)
		default:
			fail++
			fmt.Printf("%s[FAIL]%s %s: %s\n", cRed, cNone, r.File, r.Message)
			for _, c := range r.Report.Results {
				if c.Passed() {
					continue
				}
				fmt.Printf("    %s%s%s: want %s, got %s\n", cCyan, c.Case.Name(), cNone, golden.Expected(c.Case), c.Got)
				if *verbose {
					fmt.Printf("%s\n", indentDiff(c.Diff))
				}
			}
		}
	}
	fmt.Printf("\n%d passed, %d failed, %d skipped, %d errors in %s\n", pass, fail, skip, errs, elapsed.Round(time.Millisecond))
	return fail > 0 || errs > 0
}

func indentDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "-"):
			lines[i] = "      " + cRed + line + cNone
		case strings.HasPrefix(strings.TrimSpace(line), "+"):
			lines[i] = "      " + cGreen + line + cNone
		default:
			lines[i] = "      " + line
		}
	}
	return strings.Join(lines, "\n")
}

func expandGlobPatterns(patterns string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range strings.Fields(patterns) {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
