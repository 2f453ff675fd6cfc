// Package catalog ingests curated descriptor tables into a registry and
// caches them in a local SQLite database. Descriptor files are the supplied
// output of the metadata-extraction step; this package only checks their
// structural shape.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"uikit/internal/descriptor"
)

// catalogFile is one YAML descriptor table.
type catalogFile struct {
	Types []*descriptor.TypeDescriptor `yaml:"types"`
}

// LoadDir reads every .yaml/.yml file under dir, validates each against the
// catalog schema, and builds a registry with child links wired. File order
// is sorted path order, so repeated loads over the same tree yield the same
// registry.
func LoadDir(dir string) (*descriptor.Registry, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk catalog dir %s: %w", dir, err)
	}
	sort.Strings(files)

	reg := descriptor.NewRegistry()
	for _, path := range files {
		if err := loadFileInto(reg, path); err != nil {
			return nil, err
		}
	}
	reg.LinkChildren()
	return reg, nil
}

func loadFileInto(reg *descriptor.Registry, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if err := validateCatalogDocument(raw); err != nil {
		return fmt.Errorf("catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	for _, d := range file.Types {
		applyMemberKinds(d)
		reg.Add(d)
	}
	return nil
}

// validateCatalogDocument checks the document shape against the embedded
// JSON schema. YAML is normalized through a JSON round trip first, the same
// way persisted models are validated.
func validateCatalogDocument(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("not valid YAML: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to normalize document for schema validation: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to normalize document for schema validation: %w", err)
	}

	schema, err := loadCompiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// applyMemberKinds stamps the member kind implied by the sequence a member
// was declared in, so catalog files don't have to repeat it per member.
func applyMemberKinds(d *descriptor.TypeDescriptor) {
	stamp := func(members []descriptor.Member, kind descriptor.MemberKind) {
		for i := range members {
			if members[i].Kind == "" {
				members[i].Kind = kind
			}
			if members[i].DeclaringType == "" {
				members[i].DeclaringType = d.TypeName
			}
		}
	}
	stamp(d.Properties, descriptor.KindProperty)
	stamp(d.Methods, descriptor.KindMethod)
	stamp(d.Fields, descriptor.KindField)
	stamp(d.Events, descriptor.KindEvent)
	stamp(d.GlobalSettings, descriptor.KindGlobalSetting)
}
