package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"caredocs/internal/taxonomy"
	"caredocs/pkg/domain"
)

var (
	riskFolder = taxonomy.Folder{
		ID:   "risk-assessments",
		Name: "Risk Assessments",
		Kind: taxonomy.KindMultiArtifact,
	}
	healthFolder = taxonomy.Folder{
		ID:   "health",
		Name: "Health",
		Kind: taxonomy.KindTracked,
		Tracked: []taxonomy.TrackedDocument{
			{Name: "Health Action Plan", Frequency: taxonomy.FrequencyAnnual},
		},
	}
	carePlansFolder = taxonomy.Folder{
		ID:   "care-plans",
		Name: "Care Plans",
		Kind: taxonomy.KindComposite,
		Subfolders: []taxonomy.Subfolder{
			{ID: "care-plans-personal", Name: "Personal Care", Tracked: []taxonomy.TrackedDocument{
				{Name: "Personal Care Plan", Frequency: taxonomy.FrequencySixMonthly},
			}},
		},
	}
)

func TestInFolder(t *testing.T) {
	cases := []struct {
		name   string
		doc    *Document
		folder taxonomy.Folder
		want   bool
	}{
		{
			"archived documents belong nowhere",
			&Document{Type: "Health Action Plan", FolderID: "health", Archived: true},
			healthFolder,
			false,
		},
		{
			"explicit placement matches",
			&Document{Type: "Fire Safety", FolderID: "risk-assessments"},
			riskFolder,
			true,
		},
		{
			"explicit placement elsewhere excludes",
			&Document{Type: "Health Action Plan", FolderID: "risk-assessments"},
			healthFolder,
			false,
		},
		{
			"subfolder placement matches the parent",
			&Document{Type: "Personal Care Plan", FolderID: "care-plans-personal"},
			carePlansFolder,
			true,
		},
		{
			"unplaced tracked document matches by type",
			&Document{Type: "Health Action Plan"},
			healthFolder,
			true,
		},
		{
			"unplaced unrelated document does not match",
			&Document{Type: "Something Else"},
			healthFolder,
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InFolder(tc.doc, tc.folder))
		})
	}
}

// Records created before explicit placement carried the folder display name
// inside the document type.
func TestInFolder_LegacyNameRule(t *testing.T) {
	cases := []struct {
		name    string
		docType domain.DocumentType
		want    bool
	}{
		{"exact display name", "Risk Assessments", true},
		{"display name prefix", "Risk Assessments: Moving and Handling", true},
		{"prefix requires the colon", "Risk Assessments Review", false},
		{"unrelated type", "Fire Safety", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := &Document{Type: tc.docType}
			assert.Equal(t, tc.want, InFolder(doc, riskFolder))
		})
	}
}

func TestCurrentByType(t *testing.T) {
	docs := []*Document{
		{ID: domain.NewDocumentID(), Type: "Health Action Plan"},
		{ID: domain.NewDocumentID(), Type: "Medication List", Archived: true},
	}

	current := CurrentByType(docs)
	assert.Len(t, current, 1)
	assert.Contains(t, current, domain.DocumentType("Health Action Plan"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "custom", Document{CustomTitle: "custom", FileName: "file.pdf"}.Title())
	assert.Equal(t, "file.pdf", Document{FileName: "file.pdf"}.Title())
}
