package entry

import (
	"github.com/sirupsen/logrus"

	"github.com/lvim-tech/dmenu-desktop/pkg/index"
	"github.com/lvim-tech/dmenu-desktop/pkg/utils"
)

// Index maps display names to sanitized commands
type Index = index.OrderedMap[string, string]

// NewIndex returns an empty Index
func NewIndex() *Index {
	return index.New[string, string]()
}

// Add sanitizes e and stores it, replacing any entry with the same name.
// It reports false when nothing is left of the command after sanitizing.
func Add(idx *Index, e DesktopEntry) bool {
	e = Sanitize(e)
	if e.Exec == "" {
		return false
	}
	idx.Insert(e.Name, e.Exec)
	return true
}

// BuildIndex parses the desktop files of dirs in order. Files that fail to
// parse are skipped; a name seen again in a later directory replaces the
// earlier command.
func BuildIndex(dirs []string, exclude *utils.Excluder, log logrus.FieldLogger) *Index {
	idx := NewIndex()

	for _, dir := range dirs {
		files := utils.DesktopFiles(dir, exclude)
		log.WithField("dir", dir).Debugf("found %d desktop files", len(files))

		for _, path := range files {
			e, err := ParseFile(path)
			if err != nil {
				log.WithError(err).Debug("skipping desktop file")
				continue
			}

			if !Add(idx, e) {
				log.WithField("path", path).Debug("skipping desktop file with empty command")
			}
		}
	}

	log.Debugf("indexed %d entries", idx.Len())
	return idx
}
