package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	projectsFile = "projects.json"
	postsFile    = "posts.json"
)

// DirProvider loads projects and blog posts from JSON files in a content
// directory. The fixed catalog sections (skills, experience, education,
// facts) always come from the base provider; projects.json and posts.json
// override their sections when present.
type DirProvider struct {
	dir  string
	base Provider
}

// NewDirProvider returns a provider reading from dir, falling back to base
// for anything the directory does not define. A nil base falls back to the
// static catalog.
func NewDirProvider(dir string, base Provider) *DirProvider {
	if base == nil {
		base = NewStaticProvider()
	}
	return &DirProvider{dir: dir, base: base}
}

// Catalog returns the merged catalog.
func (p *DirProvider) Catalog(ctx context.Context) (*Catalog, error) {
	catalog, err := p.base.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	var projects []Project
	ok, err := p.readJSON(projectsFile, &projects)
	if err != nil {
		return nil, err
	}
	if ok {
		catalog.Projects = projects
	}

	var posts []Post
	ok, err = p.readJSON(postsFile, &posts)
	if err != nil {
		return nil, err
	}
	if ok {
		catalog.Posts = posts
	}

	return catalog, nil
}

// readJSON decodes the named file into v. Returns false without error when
// the file does not exist.
func (p *DirProvider) readJSON(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parsing %s: %w", name, err)
	}

	return true, nil
}
