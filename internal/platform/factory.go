package platform

import (
	"context"

	"github.com/odourcollect/ocdata/pkg/adapters/tabular"
	"github.com/odourcollect/ocdata/pkg/core"
	"github.com/odourcollect/ocdata/pkg/filters"
)

// Load builds a dataset from a tabular file, running the selected
// profile's filters at construction time.
func Load(path string, opts ...Option) (*core.Dataset, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newDataset(source(path, o), o)
}

// LoadGlob builds one dataset per file matching the doublestar pattern,
// in sorted path order.
func LoadGlob(pattern string, opts ...Option) ([]*core.Dataset, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	files, err := tabular.Glob(pattern, o.format)
	if err != nil {
		return nil, err
	}
	datasets := make([]*core.Dataset, 0, len(files))
	for _, file := range files {
		ds, err := newDataset(source(file.Path, o), o)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

func source(path string, o *options) *tabular.File {
	return &tabular.File{
		Path:   path,
		Format: o.format,
		Options: tabular.ParseOptions{
			TrueTokens:  o.trueTokens,
			FalseTokens: o.falseTokens,
		},
		Logger: o.logger,
	}
}

func newDataset(src *tabular.File, o *options) (*core.Dataset, error) {
	reg := o.registry
	if reg == nil {
		reg = filters.NewRegistry(filters.Config{Unmapped: o.unmapped, Logger: o.logger})
	}
	return core.NewDataset(context.Background(), src, o.profile, reg, o.logger)
}
