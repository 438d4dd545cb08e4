package relocate

import (
	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/types"
	"gopkg.in/yaml.v3"
)

// Descriptor is the content of config/core/pipeline_configuration.yml.
// Keys pcmove does not use are kept in Extra and written back unchanged.
type Descriptor struct {
	ID          int                    `yaml:"pc_id,omitempty"`
	Name        string                 `yaml:"pc_name,omitempty"`
	ProjectName string                 `yaml:"project_name,omitempty"`
	Extra       map[string]interface{} `yaml:",inline"`
}

// LoadDescriptor parses the descriptor of the configuration at root. The
// registry id may be missing.
func LoadDescriptor(fsys types.FS, root string) (Descriptor, error) {
	path := paths.PipelineConfigPath(root)
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Descriptor{}, errors.Wrapf(err, errors.ErrNotConfigurationRoot, "failed to read %s", path)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	return d, nil
}

// ReadDescriptor reads the descriptor of the configuration at root and
// requires it to carry a registry id. The parsed fields are returned even
// when the id is missing.
func ReadDescriptor(fsys types.FS, root string) (Descriptor, error) {
	d, err := LoadDescriptor(fsys, root)
	if err != nil {
		return d, err
	}
	if d.ID <= 0 {
		return d, errors.Newf(errors.ErrConfigParse, "%s has no pc_id", paths.PipelineConfigPath(root))
	}
	return d, nil
}

// WriteDescriptor writes d to <root>/config/core/pipeline_configuration.yml.
func WriteDescriptor(fsys types.FS, root string, d Descriptor) error {
	path := paths.PipelineConfigPath(root)
	data, err := yaml.Marshal(d)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode descriptor")
	}
	if err := fsys.MkdirAll(paths.CoreConfigDir(root), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", paths.CoreConfigDir(root))
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
