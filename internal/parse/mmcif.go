package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/molterm/internal/structure"
)

// readMMCIF parses the atom_site loop of an mmCIF file. The loop's
// column order is declared by the _atom_site.* header lines, so the
// parser first collects the header into a name->index map and then
// reads rows until the loop ends.
func readMMCIF(r io.Reader) ([]structure.Model, error) {
	var b builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cols map[string]int
	var order []string
	inHeader := false
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "loop_":
			inHeader = true
			cols = nil
			order = nil
		case strings.HasPrefix(line, "_atom_site."):
			if !inHeader {
				continue
			}
			if cols == nil {
				cols = make(map[string]int)
			}
			name := strings.TrimPrefix(line, "_atom_site.")
			cols[name] = len(order)
			order = append(order, name)
		case strings.HasPrefix(line, "_"), strings.HasPrefix(line, "#"), line == "":
			// Any other tag or a comment ends the atom_site loop.
			inHeader = false
			cols = nil
		default:
			inHeader = false
			if cols == nil {
				continue
			}
			fields := splitCIF(line)
			if len(fields) < len(order) {
				return nil, fmt.Errorf("line %d: atom_site row has %d fields, want %d", lineNo, len(fields), len(order))
			}
			rec, err := cifRecord(fields, cols)
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
		return nil, fmt.Errorf("no atom_site records")
	}
	return models, nil
}

// cifRecord maps one atom_site row to an atomRecord. auth_* names are
// preferred over label_* because they match the PDB-format view of the
// same entry.
func cifRecord(fields []string, cols map[string]int) (atomRecord, error) {
	get := func(names ...string) string {
		for _, n := range names {
			if i, ok := cols[n]; ok {
				return fields[i]
			}
		}
		return ""
	}

	var rec atomRecord
	var err error
	rec.serial, _ = strconv.Atoi(get("id"))
	rec.name = get("auth_atom_id", "label_atom_id")
	rec.resName = get("auth_comp_id", "label_comp_id")
	rec.chainID = get("auth_asym_id", "label_asym_id")
	if rec.resSeq, err = strconv.Atoi(get("auth_seq_id", "label_seq_id")); err != nil {
		return rec, fmt.Errorf("residue number: %w", err)
	}

	if rec.x, err = strconv.ParseFloat(get("Cartn_x"), 64); err != nil {
		return rec, fmt.Errorf("x coordinate: %w", err)
	}
	if rec.y, err = strconv.ParseFloat(get("Cartn_y"), 64); err != nil {
		return rec, fmt.Errorf("y coordinate: %w", err)
	}
	if rec.z, err = strconv.ParseFloat(get("Cartn_z"), 64); err != nil {
		return rec, fmt.Errorf("z coordinate: %w", err)
	}

	rec.occupancy, _ = strconv.ParseFloat(get("occupancy"), 64)
	rec.bFactor, _ = strconv.ParseFloat(get("B_iso_or_equiv"), 64)
	rec.element = get("type_symbol")
	if rec.element == "" || rec.element == "?" || rec.element == "." {
		rec.element = elementFromName(rec.name)
	}
	if v := get("pdbx_PDB_model_num"); v != "" && v != "?" && v != "." {
		rec.model, _ = strconv.Atoi(v)
	}
	return rec, nil
}

// splitCIF splits a data row on whitespace, honoring single and double
// quoted values ('O5'' style names appear in nucleic acids).
func splitCIF(line string) []string {
	var out []string
	i := 0
	n := len(line)
	for i < n {
		for i < n && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		if line[i] == '\'' || line[i] == '"' {
			quote := line[i]
			j := i + 1
			// A closing quote only counts when followed by whitespace
			// or end of line, so names like "O5'" survive.
			for j < n {
				if line[j] == quote && (j+1 == n || line[j+1] == ' ' || line[j+1] == '\t') {
					break
				}
				j++
			}
			out = append(out, line[i+1:j])
			i = j + 1
			continue
		}
		j := i
		for j < n && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		out = append(out, line[i:j])
		i = j
	}
	return out
}
