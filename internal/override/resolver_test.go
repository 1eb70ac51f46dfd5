package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caredocs/internal/taxonomy"
	"caredocs/pkg/domain"
)

func testCatalog(t *testing.T) *taxonomy.Catalog {
	t.Helper()
	catalog, err := taxonomy.Parse([]byte(`
version: "2026.1"
folders:
  - id: service-agreement
    name: Service Agreement
    tracked:
      - name: Service Agreement
        frequency: annual
  - id: care-plans
    name: Care Plans
    tracked:
      - name: Care Plan Summary
        frequency: annual
  - id: medical-history
    name: Medical History
    hidden: true
    tracked:
      - name: Hospital Passport
        frequency: as-needed
`))
	require.NoError(t, err)
	return catalog
}

func TestResolvedName(t *testing.T) {
	folder := taxonomy.Folder{ID: "care-plans", Name: "Care Plans"}

	assert.Equal(t, "Care Plans", ResolvedName(folder, nil))
	assert.Equal(t, "Care Plans", ResolvedName(folder, &FolderOverride{}))
	assert.Equal(t, "Plans", ResolvedName(folder, &FolderOverride{CustomName: "Plans"}))
}

func TestIsVisible(t *testing.T) {
	shown := taxonomy.Folder{ID: "a", Name: "A"}
	hiddenByDefault := taxonomy.Folder{ID: "b", Name: "B", DefaultHidden: true}

	hide := true
	show := false

	assert.True(t, IsVisible(shown, nil))
	assert.False(t, IsVisible(hiddenByDefault, nil))

	// A zero-valued record behaves exactly like an absent one.
	assert.True(t, IsVisible(shown, &FolderOverride{}))
	assert.False(t, IsVisible(hiddenByDefault, &FolderOverride{}))

	// An explicit value wins in both directions.
	assert.False(t, IsVisible(shown, &FolderOverride{Hidden: &hide}))
	assert.True(t, IsVisible(hiddenByDefault, &FolderOverride{Hidden: &show}))
}

func TestVisibleFolders(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("defaults", func(t *testing.T) {
		folders := VisibleFolders(catalog, nil)
		require.Len(t, folders, 2)
		assert.Equal(t, domain.FolderID("service-agreement"), folders[0].Folder.ID)
		assert.Equal(t, domain.FolderID("care-plans"), folders[1].Folder.ID)
	})

	t.Run("overrides never reorder", func(t *testing.T) {
		show := false
		hide := true
		overrides := map[domain.FolderID]FolderOverride{
			"medical-history": {FolderID: "medical-history", Hidden: &show},
			"care-plans":      {FolderID: "care-plans", Hidden: &hide, CustomName: "Plans"},
		}

		folders := VisibleFolders(catalog, overrides)
		require.Len(t, folders, 2)
		assert.Equal(t, domain.FolderID("service-agreement"), folders[0].Folder.ID)
		assert.Equal(t, domain.FolderID("medical-history"), folders[1].Folder.ID)
	})

	t.Run("custom names resolve", func(t *testing.T) {
		overrides := map[domain.FolderID]FolderOverride{
			"care-plans": {FolderID: "care-plans", CustomName: "Plans"},
		}

		folders := VisibleFolders(catalog, overrides)
		require.Len(t, folders, 2)
		assert.Equal(t, "Plans", folders[1].Name)
	})
}

func TestNotRequiredSet(t *testing.T) {
	overrides := map[domain.DocumentType]ComplianceOverride{
		"Service Agreement": {Type: "Service Agreement", NotRequired: true},
		"Care Plan Summary": {Type: "Care Plan Summary", NotRequired: false},
	}

	set := NotRequiredSet(overrides)
	assert.Len(t, set, 1)
	assert.True(t, set["Service Agreement"])
}
