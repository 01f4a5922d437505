package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/mod/semver"

	"github.com/devroad/devroad/ent"
	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
)

// CatalogSchemaVersion is the newest catalog file format this build reads.
// Files with the same major version and an equal or older minor version are
// accepted.
const CatalogSchemaVersion = "v1.2.0"

// CatalogFile is the on-disk catalog bundle, laid out like the remote
// backend's tables.
type CatalogFile struct {
	SchemaVersion string              `json:"schema_version"`
	Courses       []catalog.Course    `json:"courses"`
	Lessons       []catalog.Lesson    `json:"lessons"`
	Flashcards    []catalog.Flashcard `json:"flashcards,omitempty"`
	Exercises     []exercise.Record   `json:"exercises"`
}

// ImportResult counts the rows written by Import.
type ImportResult struct {
	Courses    int
	Lessons    int
	Flashcards int
	Exercises  int
}

// CheckSchemaVersion reports whether a catalog file of version v can be
// read.
func CheckSchemaVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid schema_version %q", v)
	}
	if semver.Major(v) != semver.Major(CatalogSchemaVersion) {
		return fmt.Errorf("schema_version %s is incompatible with %s", v, CatalogSchemaVersion)
	}
	if semver.Compare(v, CatalogSchemaVersion) > 0 {
		return fmt.Errorf("schema_version %s is newer than supported %s", v, CatalogSchemaVersion)
	}
	return nil
}

// ReadCatalogFile decodes a catalog bundle and checks its version.
func ReadCatalogFile(r io.Reader) (*CatalogFile, error) {
	var f CatalogFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := CheckSchemaVersion(f.SchemaVersion); err != nil {
		return nil, err
	}
	return &f, nil
}

// Import writes every course, lesson, flashcard and exercise of f in one
// transaction. A malformed exercise or an invalid row aborts the whole
// import.
func (r *CatalogRepo) Import(ctx context.Context, f *CatalogFile) (ImportResult, error) {
	var res ImportResult
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		client := tx.Client()
		for _, c := range f.Courses {
			if err := upsertCourse(ctx, client, c); err != nil {
				return err
			}
			res.Courses++
		}
		for _, l := range f.Lessons {
			if err := upsertLesson(ctx, client, l); err != nil {
				return err
			}
			res.Lessons++
		}
		for _, fc := range f.Flashcards {
			if err := upsertFlashcard(ctx, client, fc); err != nil {
				return err
			}
			res.Flashcards++
		}
		for _, rec := range f.Exercises {
			if err := upsertExercise(ctx, client, rec); err != nil {
				return err
			}
			res.Exercises++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("import catalog: %w", err)
	}
	return res, nil
}
