package ingestion

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileCSV = `"First Name","Last Name",Headline,Summary,Industry,"Geo Location",Websites
Lars,Book,CTO,Builds things.,Software,"Gothenburg, Sweden",[]
`

const positionsCSV = `"Company Name",Title,Description,Location,"Started On","Finished On"
Acme,Engineer,Shipped software.,Gothenburg,Jan 2020,
`

const emailsCSV = `"Email Address",Confirmed,Primary,"Updated On"
lars@example.com,Yes,Yes,Jan 2020
`

func writeExportDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"Profile.csv":         profileCSV,
		"Positions.csv":       positionsCSV,
		"Email Addresses.csv": emailsCSV,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoadBundle_Directory(t *testing.T) {
	dir := writeExportDir(t)

	bundle, err := LoadBundle(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, bundle.Profiles, 1)
	assert.Equal(t, "Lars", bundle.Profiles[0].FirstName)
	require.Len(t, bundle.Positions, 1)
	assert.Equal(t, "Acme", bundle.Positions[0].CompanyName)
	assert.Empty(t, bundle.Positions[0].FinishedOn)
	require.Len(t, bundle.Emails, 1)
	assert.Equal(t, "lars@example.com", bundle.Emails[0].EmailAddress)

	// Missing optional groups are empty, not errors.
	assert.Empty(t, bundle.Projects)
	assert.Empty(t, bundle.Education)
	assert.Empty(t, bundle.Languages)
}

func TestLoadBundle_DirectoryWithPhoto(t *testing.T) {
	dir := writeExportDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("jpeg"), 0o644))

	bundle, err := LoadBundle(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "photo.jpg"), bundle.ImagePath)
}

func TestLoadBundle_Zip(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "export.zip")
	archive, err := os.Create(archivePath)
	require.NoError(t, err)

	writer := zip.NewWriter(archive)
	for name, content := range map[string]string{
		"Export/Profile.csv":         profileCSV,
		"Export/Email Addresses.csv": emailsCSV,
	} {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, archive.Close())

	bundle, err := LoadBundle(context.Background(), archivePath)
	require.NoError(t, err)
	require.Len(t, bundle.Profiles, 1)
	assert.Equal(t, "Book", bundle.Profiles[0].LastName)
	require.Len(t, bundle.Emails, 1)
}

func TestLoadBundle_MalformedGroupAborts(t *testing.T) {
	dir := writeExportDir(t)
	bad := "\"Company Name\",Title\nAcme\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Positions.csv"), []byte(bad), 0o644))

	_, err := LoadBundle(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Positions")
}

func TestLoadBundle_MissingPath(t *testing.T) {
	_, err := LoadBundle(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var bundleErr *BundleError
	assert.ErrorAs(t, err, &bundleErr)
}

func TestLoadBundle_NotDirOrZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.tar")
	require.NoError(t, os.WriteFile(path, []byte("tar"), 0o644))

	_, err := LoadBundle(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither a directory nor a .zip")
}
