package resources

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/schuko/gconf"
)

// Category is a category of resources.
type Category string

// Resource categories. Resources of category SearchPath are directories and
// have no name.
const (
	SearchPath    Category = "SearchPath"
	FontAFM       Category = "FontAFM"
	FontEncoding  Category = "FontEncoding"
	FontProtusion Category = "FontProtusion"
	FontOutline   Category = "FontOutline"
)

var categories = []Category{SearchPath, FontAFM, FontEncoding, FontProtusion, FontOutline}

// ParseCategory finds a category by name.
func ParseCategory(name string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

var errNoDataDir = errors.New("no data directory configured")

//go:embed packaged/*
var packaged embed.FS

// NotFound returns an application error for a missing resource.
func NotFound(res string, cat Category) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch cat {
	case FontAFM, FontOutline:
		s = fmt.Sprintf("font not found: %s", res)
	case FontEncoding:
		s = fmt.Sprintf("font encoding not found: %s", res)
	case "":
		s = fmt.Sprintf("file not found in search path: %s", res)
	default:
		s = fmt.Sprintf("resource not found in %s: %s", cat, res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

type resource struct {
	name, value string
}

// Catalog holds resource definitions and a search path.
// A catalog is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	resources map[Category][]resource
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{resources: make(map[Category][]resource)}
}

// Define defines a resource in a category. A previous definition with the
// same name is replaced. For category SearchPath the name is ignored and the
// directory given as value is appended to the search path.
func (c *Catalog) Define(cat Category, name, value string) error {
	if _, ok := ParseCategory(string(cat)); !ok {
		return core.Error(core.EINVALID, "unknown resource category %q", cat)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if cat == SearchPath {
		c.resources[cat] = append(c.resources[cat], resource{value: value})
		tracer().Debugf("search path += %s", value)
		return nil
	}
	if name == "" {
		return core.Error(core.EINVALID, "resource in category %s needs a name", cat)
	}
	list := c.resources[cat]
	for i := range list {
		if list[i].name == name {
			list[i].value = value
			tracer().Debugf("resource %s/%s redefined as %s", cat, name, value)
			return nil
		}
	}
	c.resources[cat] = append(list, resource{name: name, value: value})
	tracer().Debugf("resource %s/%s = %s", cat, name, value)
	return nil
}

// DefineParameter defines a resource from a parameter of the form
// "name=value". Category SearchPath takes a plain directory.
func (c *Catalog) DefineParameter(cat Category, parameter string) error {
	if cat == SearchPath {
		return c.Define(cat, "", strings.TrimSpace(parameter))
	}
	name, value, ok := strings.Cut(parameter, "=")
	if !ok {
		return core.Error(core.EINVALID, "resource %q must be of the form name=value", parameter)
	}
	return c.Define(cat, strings.TrimSpace(name), strings.TrimSpace(value))
}

// Find returns the value of a resource.
func (c *Catalog) Find(cat Category, name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.resources[cat] {
		if r.name == name {
			return r.value, true
		}
	}
	return "", false
}

// Names returns the names of the resources of a category, in order of
// definition.
func (c *Catalog) Names(cat Category) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.resources[cat]))
	for i, r := range c.resources[cat] {
		names[i] = r.name
	}
	return names
}

// SearchPath returns the directories of the search path, most recently added
// first.
func (c *Catalog) SearchPath() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list := c.resources[SearchPath]
	dirs := make([]string, len(list))
	for i, r := range list {
		dirs[len(list)-1-i] = r.value
	}
	return dirs
}

// Open opens a file. It is looked up as given, then relative to the
// directories of the search path, then in the data directory. Files packaged
// with this module are next, and system font directories are searched last.
func (c *Catalog) Open(filename string) (io.ReadCloser, error) {
	if filename == "" {
		return nil, core.Error(core.EINVALID, "empty file name")
	}
	if f, err := os.Open(filename); err == nil {
		return f, nil
	}
	if !filepath.IsAbs(filename) {
		candidates := c.SearchPath()
		if datadir, err := DataDirPath(false); err == nil {
			candidates = append(candidates, datadir)
		}
		for _, dir := range candidates {
			p := filepath.Join(dir, filename)
			if f, err := os.Open(p); err == nil {
				tracer().Debugf("found %s in %s", filename, dir)
				return f, nil
			}
		}
		if f, err := packaged.Open(path.Join("packaged", filepath.ToSlash(filename))); err == nil {
			tracer().Debugf("found %s as packaged resource", filename)
			return f, nil
		}
	}
	if p, err := findfont.Find(filepath.Base(filename)); err == nil && p != "" {
		if f, err := os.Open(p); err == nil {
			tracer().Debugf("%s is a system font file", p)
			return f, nil
		}
	}
	return nil, NotFound(filename, "")
}

// OpenResource opens the file of a named resource. If the resource is not
// defined, fallback is opened instead, if given.
func (c *Catalog) OpenResource(cat Category, name, fallback string) (io.ReadCloser, error) {
	filename, ok := c.Find(cat, name)
	if !ok {
		if fallback == "" {
			return nil, NotFound(name, cat)
		}
		filename = fallback
	}
	return c.Open(filename)
}

// InitFromConfig appends the directories of the global configuration
// key 'resource-path' to the search path.
func (c *Catalog) InitFromConfig() {
	if !gconf.IsSet("resource-path") {
		return
	}
	for _, dir := range filepath.SplitList(gconf.GetString("resource-path")) {
		if dir = strings.TrimSpace(dir); dir != "" {
			c.Define(SearchPath, "", dir)
		}
	}
}

// --- Global catalog --------------------------------------------------------

var globalCatalog *Catalog
var globalOnce sync.Once

// GlobalCatalog returns the application-wide catalog. It is initialized from
// the global configuration on first use.
func GlobalCatalog() *Catalog {
	globalOnce.Do(func() {
		globalCatalog = NewCatalog()
		globalCatalog.InitFromConfig()
	})
	return globalCatalog
}

// Define defines a resource in the global catalog.
func Define(cat Category, name, value string) error {
	return GlobalCatalog().Define(cat, name, value)
}

// Find looks up a resource in the global catalog.
func Find(cat Category, name string) (string, bool) {
	return GlobalCatalog().Find(cat, name)
}

// OpenInSearchPath opens a file using the search path of the global catalog.
func OpenInSearchPath(filename string) (io.ReadCloser, error) {
	return GlobalCatalog().Open(filename)
}
