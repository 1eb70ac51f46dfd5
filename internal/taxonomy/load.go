package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"caredocs/pkg/domain"
)

// Wire format of the catalog file. Kept separate from the runtime types so the
// file layout can evolve without touching the engine.
type catalogFile struct {
	Version string       `yaml:"version"`
	Folders []folderFile `yaml:"folders"`
}

type folderFile struct {
	ID                string          `yaml:"id"`
	Name              string          `yaml:"name"`
	Hidden            bool            `yaml:"hidden"`
	MultipleArtifacts bool            `yaml:"multiple_artifacts"`
	Tracked           []trackedFile   `yaml:"tracked"`
	Subfolders        []subfolderFile `yaml:"subfolders"`
}

type subfolderFile struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Tracked []trackedFile `yaml:"tracked"`
}

type trackedFile struct {
	Name      string `yaml:"name"`
	Frequency string `yaml:"frequency"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates raw catalog YAML into an indexed Catalog.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse taxonomy catalog: %w", err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("taxonomy catalog: version is required")
	}
	if len(file.Folders) == 0 {
		return nil, fmt.Errorf("taxonomy catalog: at least one folder is required")
	}

	catalog := &Catalog{Version: file.Version}
	seen := make(map[domain.FolderID]bool)

	for _, ff := range file.Folders {
		folder, err := buildFolder(ff)
		if err != nil {
			return nil, err
		}
		if seen[folder.ID] {
			return nil, fmt.Errorf("taxonomy catalog: duplicate folder id %q", folder.ID)
		}
		seen[folder.ID] = true
		for _, sub := range folder.Subfolders {
			if seen[sub.ID] {
				return nil, fmt.Errorf("taxonomy catalog: duplicate folder id %q", sub.ID)
			}
			seen[sub.ID] = true
		}
		catalog.Folders = append(catalog.Folders, folder)
	}

	catalog.index()
	return catalog, nil
}

func buildFolder(ff folderFile) (Folder, error) {
	if ff.ID == "" || ff.Name == "" {
		return Folder{}, fmt.Errorf("taxonomy catalog: folder id and name are required")
	}
	if domain.FolderID(ff.ID) == domain.ArchiveFolderID {
		return Folder{}, fmt.Errorf("taxonomy catalog: folder id %q is reserved for the archive pseudo-folder", ff.ID)
	}

	folder := Folder{
		ID:            domain.FolderID(ff.ID),
		Name:          ff.Name,
		DefaultHidden: ff.Hidden,
	}

	var err error
	if folder.Tracked, err = buildTracked(ff.ID, ff.Tracked); err != nil {
		return Folder{}, err
	}

	for _, sf := range ff.Subfolders {
		if sf.ID == "" || sf.Name == "" {
			return Folder{}, fmt.Errorf("taxonomy catalog: subfolder of %q: id and name are required", ff.ID)
		}
		tracked, err := buildTracked(sf.ID, sf.Tracked)
		if err != nil {
			return Folder{}, err
		}
		folder.Subfolders = append(folder.Subfolders, Subfolder{
			ID:      domain.FolderID(sf.ID),
			Name:    sf.Name,
			Tracked: tracked,
		})
	}

	switch {
	case ff.MultipleArtifacts:
		if len(folder.Tracked) > 0 || len(folder.Subfolders) > 0 {
			return Folder{}, fmt.Errorf("taxonomy catalog: folder %q: multi-artifact folders cannot declare tracked documents or subfolders", ff.ID)
		}
		folder.Kind = KindMultiArtifact
	case len(folder.Subfolders) > 0:
		folder.Kind = KindComposite
	default:
		if len(folder.Tracked) == 0 {
			return Folder{}, fmt.Errorf("taxonomy catalog: folder %q: tracked folders must declare at least one tracked document", ff.ID)
		}
		folder.Kind = KindTracked
	}

	return folder, nil
}

func buildTracked(owner string, items []trackedFile) ([]TrackedDocument, error) {
	var out []TrackedDocument
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("taxonomy catalog: folder %q: tracked document name is required", owner)
		}
		freq, err := ParseFrequency(item.Frequency)
		if err != nil {
			return nil, fmt.Errorf("taxonomy catalog: folder %q, document %q: %w", owner, item.Name, err)
		}
		out = append(out, TrackedDocument{
			Name:      domain.DocumentType(item.Name),
			Frequency: freq,
		})
	}
	return out, nil
}
