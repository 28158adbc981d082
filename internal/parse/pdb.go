package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/molterm/internal/structure"
)

// readPDB parses the fixed-column PDB format. Only the records the
// viewer needs are read: ATOM, HETATM, MODEL and ENDMDL. Everything
// else (REMARK, SEQRES, CONECT, ...) is skipped.
func readPDB(r io.Reader) ([]structure.Model, error) {
	var b builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "MODEL"):
			num := 0
			if f := strings.Fields(line); len(f) >= 2 {
				num, _ = strconv.Atoi(f[1])
			}
			b.startModel(num)
		case strings.HasPrefix(line, "ENDMDL"):
			b.current = nil
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			rec, err := parsePDBAtom(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			b.add(rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	models := b.finish()
	if len(models) == 0 {
		return nil, fmt.Errorf("no ATOM records")
	}
	return models, nil
}

// parsePDBAtom reads one ATOM/HETATM line by its fixed columns.
// Occupancy, B-factor and element live past column 54 and are optional
// in files produced by simulation tools, so a line that ends at the
// coordinates still parses.
func parsePDBAtom(line string) (atomRecord, error) {
	var rec atomRecord
	if len(line) < 54 {
		return rec, fmt.Errorf("ATOM record too short (%d columns)", len(line))
	}

	var err error
	rec.serial, err = atoi(line[6:11])
	if err != nil {
		return rec, fmt.Errorf("atom serial: %w", err)
	}
	rec.name = strings.TrimSpace(line[12:16])
	rec.resName = strings.TrimSpace(line[17:20])
	rec.chainID = strings.TrimSpace(line[21:22])
	rec.resSeq, err = atoi(line[22:26])
	if err != nil {
		return rec, fmt.Errorf("residue number: %w", err)
	}

	if rec.x, err = atof(line[30:38]); err != nil {
		return rec, fmt.Errorf("x coordinate: %w", err)
	}
	if rec.y, err = atof(line[38:46]); err != nil {
		return rec, fmt.Errorf("y coordinate: %w", err)
	}
	if rec.z, err = atof(line[46:54]); err != nil {
		return rec, fmt.Errorf("z coordinate: %w", err)
	}

	if len(line) >= 60 {
		rec.occupancy, _ = atof(line[54:60])
	}
	if len(line) >= 66 {
		rec.bFactor, _ = atof(line[60:66])
	}
	if len(line) >= 78 {
		rec.element = strings.TrimSpace(line[76:78])
	}
	if rec.element == "" {
		rec.element = elementFromName(rec.name)
	}
	return rec, nil
}

// elementFromName falls back to the first letter of the atom name when
// the element columns are blank. Good enough for backbone atoms, which
// are all single-letter elements.
func elementFromName(name string) string {
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			return string(r)
		}
	}
	return ""
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func atof(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
