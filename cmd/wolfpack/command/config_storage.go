package command

import (
	"fmt"
	"os"

	"github.com/feralgames/go-wolfpack/internal/storage"
	"github.com/feralgames/go-wolfpack/internal/story"
)

type StorageConfig struct {
	// Story is the directory of story node assets. When unset the
	// built-in campaign is used; when set but empty it is seeded with
	// the built-in campaign so the content can be edited on disk.
	Story AssetConfig[*story.NodeSpec] `json:"story"`
}

func (c *StorageConfig) BuildStoryTree() (*story.Tree, error) {
	if c.Story.Path == "" {
		return story.DefaultTree(), nil
	}

	store, err := storage.NewFileStore[*story.NodeSpec](c.Story.Path)
	if err != nil {
		return nil, fmt.Errorf("creating story store: %w", err)
	}

	if store.Len() == 0 {
		for id, spec := range story.DefaultSpecs() {
			if err := store.Save(id, spec); err != nil {
				return nil, fmt.Errorf("seeding story content: %w", err)
			}
		}
	}

	tree, err := story.BuildTree(store)
	if err != nil {
		return nil, fmt.Errorf("building story tree: %w", err)
	}

	return tree, nil
}

func (c *StorageConfig) validate() error {
	return c.Story.Validate("story")
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return nil
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}
