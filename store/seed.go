package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/go-pro-directory/model"
)

// DefaultProfessionals returns the built-in sample directory.
func DefaultProfessionals() []model.Professional {
	return []model.Professional{
		{
			ID:      1,
			Name:    "Mariana Silva",
			Role:    "Fullstack",
			City:    "São Paulo",
			Rating:  4.9,
			Reviews: 57,
			Bio:     "Especialista em desenvolvimento web fullstack com foco em React e Node.js.",
		},
		{
			ID:      2,
			Name:    "Lucas Pereira",
			Role:    "DevOps",
			City:    "Belo Horizonte",
			Rating:  4.7,
			Reviews: 34,
			Bio:     "Engenheiro DevOps com experiência em AWS e automação de infraestrutura.",
		},
		{
			ID:      3,
			Name:    "Ana Costa",
			Role:    "UI/UX Designer",
			City:    "Rio de Janeiro",
			Rating:  4.8,
			Reviews: 45,
			Bio:     "Designer com foco em experiência do usuário e interfaces intuitivas.",
		},
		{
			ID:      4,
			Name:    "Pedro Gomes",
			Role:    "Data Scientist",
			City:    "Curitiba",
			Rating:  4.6,
			Reviews: 28,
			Bio:     "Cientista de dados com experiência em Machine Learning e análise preditiva.",
		},
	}
}

// seedFile is the on-disk layout of a directory data file.
// JSON files are accepted too since they parse as YAML.
type seedFile struct {
	Professionals []model.Professional `yaml:"professionals"`
}

// LoadFile reads a seed file and builds a store from it.
func LoadFile(path string) (*ProfessionalStore, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}

	ps, err := NewProfessionalStore(seed.Professionals)
	if err != nil {
		return nil, fmt.Errorf("invalid data file %s: %w", path, err)
	}
	return ps, nil
}

// Open returns the store described by path, or the built-in sample directory when
// path is empty.
func Open(path string) (*ProfessionalStore, error) {
	if path == "" {
		return NewProfessionalStore(DefaultProfessionals())
	}
	return LoadFile(path)
}
