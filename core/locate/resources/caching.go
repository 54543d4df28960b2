package resources

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/gconf"
)

// DataDirPath returns the data directory for resources. It is taken from the
// global configuration key 'data-dir'. If unset, a folder in the user's
// configuration directory is used, named by the application key `app-key`
// from the global configuration. Clients may specify a sequence of folder
// names, which will be appended to the base path. If create is true,
// non-existing sub-folders will be created as necessary (with permissions 755).
func DataDirPath(create bool, subfolders ...string) (string, error) {
	datadir := gconf.GetString("data-dir")
	if datadir == "" {
		tracer().Debugf("config[%s] = %s", "app-key", gconf.GetString("app-key"))
		if gconf.GetString("app-key") == "" {
			tracer().Infof("neither data directory nor application key is set")
			return "", errNoDataDir
		}
		confdir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		datadir = filepath.Join(confdir, gconf.GetString("app-key"))
	}
	datadir = filepath.Join(append([]string{datadir}, subfolders...)...)
	if !create {
		return datadir, nil
	}
	if _, err := os.Stat(datadir); os.IsNotExist(err) {
		tracer().Infof("creating data directory %s", datadir)
		if err = os.MkdirAll(datadir, 0755); err != nil {
			return "", err
		}
	}
	return datadir, nil
}
