package sparsehist

import (
	"encoding/gob"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// snapshots are stored one per file as gob encoded SavedSnapshots. the
// rollup output gets a reserved name so it never feeds back into itself.
const ROLLUP_NAME = "rollup"

const DB_EXT = ".db"

// SavedSnapshot is the envelope a sparse snapshot is persisted in.
type SavedSnapshot struct {
	Name      string
	Timestamp int64

	Hist *SparseHist

	// approximate count of distinct raw values observed while the
	// snapshot was recorded. zero when unknown, e.g. for rollups.
	Distinct uint64 `json:",omitempty"`
}

// SaveSnapshot writes the snapshot into dir as <name>.db. The write goes
// to a temp file first and is renamed into place.
func SaveSnapshot(dir string, s *SavedSnapshot) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating snapshot dir")
	}

	tmpfile, err := ioutil.TempFile(dir, fmt.Sprintf("%s.db.partial", s.Name))
	if err != nil {
		return errors.Wrap(err, "creating temp snapshot")
	}

	enc := gob.NewEncoder(tmpfile)
	if err := enc.Encode(s); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return errors.Wrap(err, "encode")
	}

	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		return errors.Wrap(err, "closing temp snapshot")
	}

	filename := path.Join(dir, s.Name+DB_EXT)
	if err := os.Rename(tmpfile.Name(), filename); err != nil {
		return errors.Wrap(err, fmt.Sprintf("error renaming snapshot %v to %v", tmpfile.Name(), filename))
	}

	Debug("SAVED SNAPSHOT", s.Name, "TO", filename)

	return nil
}

// LoadSnapshot reads a snapshot back from filename.
func LoadSnapshot(filename string) (*SavedSnapshot, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "error opening snapshot")
	}
	defer file.Close()

	s := &SavedSnapshot{}
	dec := gob.NewDecoder(file)
	if err := dec.Decode(s); err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	if s.Hist == nil {
		return nil, errors.Errorf("snapshot %v has no histogram", filename)
	}

	if len(s.Hist.Index) != len(s.Hist.Count) {
		return nil, ErrRaggedColumns{indexLen: len(s.Hist.Index), countLen: len(s.Hist.Count)}
	}

	return s, nil
}

// ListSnapshots returns the snapshot files inside dir, sorted by name.
// The rollup output is not included.
func ListSnapshots(dir string) ([]string, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot dir")
	}

	filenames := make([]string, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), DB_EXT) {
			continue
		}

		if f.Name() == ROLLUP_NAME+DB_EXT {
			continue
		}

		filenames = append(filenames, path.Join(dir, f.Name()))
	}

	sort.Strings(filenames)

	return filenames, nil
}

// RollupSnapshots merges every snapshot in dir into one. All snapshots
// must share the same histogram parameters; a mismatch surfaces the merge
// error wrapped with the offending filename.
func RollupSnapshots(dir string) (*SavedSnapshot, error) {
	filenames, err := ListSnapshots(dir)
	if err != nil {
		return nil, err
	}

	if len(filenames) == 0 {
		return nil, errors.New("no snapshots to roll up")
	}

	var merged *SparseHist
	for _, filename := range filenames {
		s, err := LoadSnapshot(filename)
		if err != nil {
			return nil, err
		}

		if merged == nil {
			merged = s.Hist
			continue
		}

		merged, err = merged.Merge(s.Hist)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("merging %v", filename))
		}
	}

	Debug("ROLLED UP", len(filenames), "SNAPSHOTS FROM", dir)

	return &SavedSnapshot{
		Name:      ROLLUP_NAME,
		Timestamp: time.Now().Unix(),
		Hist:      merged,
	}, nil
}
