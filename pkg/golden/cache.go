package golden

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
)

// FileReport is the cached outcome of one corpus file.
type FileReport struct {
	Hash    string   `json:"hash"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results,omitempty"`
}

// Report maps corpus file names to their last run.
type Report map[string]*FileReport

// Fingerprint identifies corpus content so unchanged files can be skipped.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Fresh reports whether the cached run of name matches hash and passed.
func (r Report) Fresh(name, hash string) bool {
	prev, ok := r[name]
	return ok && prev.Hash == hash && prev.Failed == 0
}

func LoadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(Report), nil
	}
	if err != nil {
		return nil, err
	}
	report := make(Report)
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("golden: corrupt report %s: %w", path, err)
	}
	return report, nil
}

func (r Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
