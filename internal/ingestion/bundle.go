// Package ingestion discovers and reads data-export bundles: a directory or
// zip archive of CSV record groups keyed by a fixed filename convention, plus
// an optional profile photo.
package ingestion

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lbsa71/cv-generator/internal/parsing"
	"github.com/lbsa71/cv-generator/internal/types"
)

// Record group names; the export stores each as "<group>.csv".
const (
	GroupProfile   = "Profile"
	GroupPositions = "Positions"
	GroupProjects  = "Projects"
	GroupEducation = "Education"
	GroupEmails    = "Email Addresses"
	GroupLanguages = "Languages"
)

var imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// readFunc reads one file of the bundle by name. The second result is false
// when the file is absent, which is never an error at this layer.
type readFunc func(name string) (string, bool, error)

// LoadBundle reads an export from a directory or a .zip archive and parses
// every present record group. Missing groups yield empty slices; whether a
// missing group is fatal is the transform pipeline's call, not ours. Record
// groups are read concurrently; a parse failure in any group aborts the load.
func LoadBundle(ctx context.Context, path string) (*types.RawRecordBundle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &BundleError{Path: path, Message: "cannot open", Cause: err}
	}

	if info.IsDir() {
		return loadDir(ctx, path)
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return loadZip(ctx, path)
	}
	return nil, &BundleError{Path: path, Message: "is neither a directory nor a .zip archive"}
}

func loadDir(ctx context.Context, dir string) (*types.RawRecordBundle, error) {
	read := func(name string) (string, bool, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		if err != nil {
			return "", false, &BundleError{Path: dir, Message: "reading " + name, Cause: err}
		}
		return string(data), true, nil
	}

	imagePath, err := findDirImage(dir)
	if err != nil {
		return nil, err
	}

	return loadGroups(ctx, read, imagePath)
}

func loadZip(ctx context.Context, path string) (*types.RawRecordBundle, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, &BundleError{Path: path, Message: "cannot open archive", Cause: err}
	}
	defer func() { _ = reader.Close() }()

	// Exports nest files under a top directory; index by base name.
	entries := make(map[string]*zip.File, len(reader.File))
	for _, file := range reader.File {
		entries[filepath.Base(file.Name)] = file
	}

	read := func(name string) (string, bool, error) {
		file, ok := entries[name]
		if !ok {
			return "", false, nil
		}
		rc, err := file.Open()
		if err != nil {
			return "", false, &BundleError{Path: path, Message: "reading " + name, Cause: err}
		}
		defer func() { _ = rc.Close() }()

		data, err := io.ReadAll(rc)
		if err != nil {
			return "", false, &BundleError{Path: path, Message: "reading " + name, Cause: err}
		}
		return string(data), true, nil
	}

	imagePath, err := extractZipImage(path, entries)
	if err != nil {
		return nil, err
	}

	return loadGroups(ctx, read, imagePath)
}

func loadGroups(ctx context.Context, read readFunc, imagePath string) (*types.RawRecordBundle, error) {
	bundle := &types.RawRecordBundle{ImagePath: imagePath}

	// Each goroutine writes a distinct bundle field; order within a group is
	// file order, and groups are independent of each other.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readGroup(read, GroupProfile, &bundle.Profiles, types.NewProfile)
	})
	g.Go(func() error {
		return readGroup(read, GroupPositions, &bundle.Positions, types.NewPosition)
	})
	g.Go(func() error {
		return readGroup(read, GroupProjects, &bundle.Projects, types.NewProject)
	})
	g.Go(func() error {
		return readGroup(read, GroupEducation, &bundle.Education, types.NewEducation)
	})
	g.Go(func() error {
		return readGroup(read, GroupEmails, &bundle.Emails, types.NewEmail)
	})
	g.Go(func() error {
		return readGroup(read, GroupLanguages, &bundle.Languages, types.NewLanguage)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func readGroup[T any](read readFunc, group string, out *[]T, build func(map[string]string) T) error {
	content, ok, err := read(group + ".csv")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	rows, err := parsing.ParseCSV(content, group)
	if err != nil {
		return err
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		records = append(records, build(row))
	}
	*out = records
	return nil
}

// findDirImage returns the lexicographically first image file in the export
// directory, or empty string when the export has no photo.
func findDirImage(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &BundleError{Path: dir, Message: "listing directory", Cause: err}
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}

// extractZipImage copies the archive's photo (if any) into the temp
// directory so renderers can reference it by path.
func extractZipImage(archivePath string, entries map[string]*zip.File) (string, error) {
	var names []string
	for name := range entries {
		if imageExtensions[strings.ToLower(filepath.Ext(name))] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	name := names[0]

	rc, err := entries[name].Open()
	if err != nil {
		return "", &BundleError{Path: archivePath, Message: "reading " + name, Cause: err}
	}
	defer func() { _ = rc.Close() }()

	out, err := os.CreateTemp("", "cvgen-*"+filepath.Ext(name))
	if err != nil {
		return "", &BundleError{Path: archivePath, Message: "extracting " + name, Cause: err}
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, rc); err != nil {
		return "", &BundleError{Path: archivePath, Message: "extracting " + name, Cause: err}
	}
	return out.Name(), nil
}
