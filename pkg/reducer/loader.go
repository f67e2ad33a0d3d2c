package reducer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
	"github.com/somlint/somlint/pkg/api"
	"github.com/somlint/somlint/pkg/api/somlint"
	"sigs.k8s.io/yaml"
)

type ModelLoader interface {
	Load() (*api.Model, error)
}

// decompressors are picked by the last file extension of a model file.
var decompressors = map[string]archives.Decompressor{
	".gz":  archives.Gz{},
	".bz2": archives.Bz2{},
	".xz":  archives.Xz{},
	".zst": archives.Zstd{},
}

// FileLoader reads a YAML or JSON model file, optionally compressed.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (f *FileLoader) Load() (*api.Model, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file %s: %w", f.path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if decompressor, exists := decompressors[strings.ToLower(filepath.Ext(f.path))]; exists {
		rc, err := decompressor.OpenReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress model file %s: %w", f.path, err)
		}
		defer rc.Close()
		reader = rc
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", f.path, err)
	}
	modelFile := &somlint.ModelFile{}
	if err := yaml.Unmarshal(data, modelFile); err != nil {
		return nil, fmt.Errorf("failed to parse model file %s: %w", f.path, err)
	}
	model, err := BuildModel(modelFile)
	if err != nil {
		return nil, fmt.Errorf("invalid model file %s: %w", f.path, err)
	}
	if model.Name == "" {
		model.Name = modelName(f.path)
	}
	return model, nil
}

func modelName(path string) string {
	name := filepath.Base(path)
	if _, exists := decompressors[strings.ToLower(filepath.Ext(name))]; exists {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// BuildModel turns the file representation into reactions with derived
// categories and identifiers.
func BuildModel(file *somlint.ModelFile) (*api.Model, error) {
	model := &api.Model{Name: file.Name}
	for _, name := range file.Species {
		model.Species = append(model.Species, api.Molecule{Name: name})
	}

	labels := map[string]struct{}{}
	for i, mr := range file.Reactions {
		if mr.Label == "" {
			return nil, fmt.Errorf("reaction %d has no label", i+1)
		}
		if _, exists := labels[mr.Label]; exists {
			return nil, fmt.Errorf("reaction label %s is used more than once", mr.Label)
		}
		labels[mr.Label] = struct{}{}

		reaction, err := buildReaction(mr)
		if err != nil {
			return nil, err
		}
		model.Reactions = append(model.Reactions, reaction)
	}
	return model, nil
}

func buildReaction(mr somlint.ModelReaction) (*api.Reaction, error) {
	if mr.Equation != "" {
		if len(mr.Reactants) > 0 || len(mr.Products) > 0 {
			return nil, fmt.Errorf("reaction %s has an equation and explicit reactants or products", mr.Label)
		}
		return api.ParseEquation(mr.Label, mr.Equation)
	}
	reactants, err := toSide(mr.Label, mr.Reactants)
	if err != nil {
		return nil, err
	}
	products, err := toSide(mr.Label, mr.Products)
	if err != nil {
		return nil, err
	}
	return api.NewReaction(mr.Label, reactants, products), nil
}

func toSide(label string, terms []somlint.ModelTerm) ([]api.MoleculeStoichiometry, error) {
	var side []api.MoleculeStoichiometry
	for _, term := range terms {
		if term.Species == "" {
			return nil, fmt.Errorf("reaction %s has a term without species", label)
		}
		stoichiometry := 1.0
		if term.Stoichiometry != nil {
			stoichiometry = *term.Stoichiometry
			if err := api.ValidateStoichiometry(term.Species, stoichiometry); err != nil {
				return nil, fmt.Errorf("reaction %s: %w", label, err)
			}
		}
		side = append(side, api.MoleculeStoichiometry{
			Molecule:      api.Molecule{Name: term.Species},
			Stoichiometry: stoichiometry,
		})
	}
	return side, nil
}
