package mason

import "errors"

var (
	ErrImport      = errors.New("import error")
	ErrImportCycle = errors.New("import cycle")
)
