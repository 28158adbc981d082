// Package parse reads macromolecular structure files into the
// structure hierarchy. PDB and mmCIF are supported; the format is
// inferred from the file extension unless forced.
package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/molterm/internal/structure"
)

type Format int

const (
	FormatUnknown Format = iota
	FormatPDB
	FormatMMCIF
)

func (f Format) String() string {
	switch f {
	case FormatPDB:
		return "pdb"
	case FormatMMCIF:
		return "mmcif"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "pdb":
		return FormatPDB, nil
	case "mmcif", "cif":
		return FormatMMCIF, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown format %q (want pdb or mmcif)", s)
	}
}

// InferFormat guesses the format from the file extension.
func InferFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdb", ".ent":
		return FormatPDB, nil
	case ".cif", ".mmcif":
		return FormatMMCIF, nil
	default:
		return FormatUnknown, fmt.Errorf("cannot infer format of %s: unrecognized extension", path)
	}
}

// ReadFile parses path into a Structure. FormatUnknown means infer
// from the extension.
func ReadFile(path string, format Format) (*structure.Structure, error) {
	if format == FormatUnknown {
		var err error
		format, err = InferFormat(path)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open structure file: %w", err)
	}
	defer f.Close()

	var models []structure.Model
	switch format {
	case FormatPDB:
		models, err = readPDB(f)
	case FormatMMCIF:
		models, err = readMMCIF(f)
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return structure.New(path, models)
}
