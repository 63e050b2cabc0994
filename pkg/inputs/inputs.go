package inputs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/arthur-debert/renamer/pkg/errors"
)

// Structure describes how a list of input lines encodes original and
// new paths.
type Structure string

const (
	// StructureFlat is originals followed by news, split at the
	// midpoint. With a rename rule, every line is an original.
	StructureFlat Structure = "flat"
	// StructurePairs alternates original, new, original, new.
	StructurePairs Structure = "pairs"
	// StructureRows is tab-delimited original<TAB>new rows.
	StructureRows Structure = "rows"
	// StructureParagraphs is two blank-line-separated groups:
	// originals first, then news.
	StructureParagraphs Structure = "paragraphs"
)

// ParseStructure validates a user-supplied structure name. Empty means
// flat.
func ParseStructure(s string) (Structure, error) {
	switch Structure(strings.ToLower(strings.TrimSpace(s))) {
	case "", StructureFlat:
		return StructureFlat, nil
	case StructurePairs:
		return StructurePairs, nil
	case StructureRows:
		return StructureRows, nil
	case StructureParagraphs:
		return StructureParagraphs, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown input structure: %q", s)
	}
}

// Lines splits raw input text into trimmed lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// FromFile reads input lines from a file.
func FromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReadInput, "failed to read input paths from %s", path)
	}
	return Lines(string(data)), nil
}

// FromReader reads input lines from a reader (typically stdin).
func FromReader(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReadInput, "failed to read input paths from stdin")
	}
	return Lines(string(data)), nil
}

// FromClipboard reads input lines from the system clipboard.
func FromClipboard() ([]string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReadInput, "failed to read input paths from clipboard")
	}
	return Lines(text), nil
}

// Parse organizes input lines into original and new path lists
// according to the structure. When haveRule is true the caller computes
// new paths itself, so every non-empty line is an original and news is
// nil.
func Parse(lines []string, structure Structure, haveRule bool) (origs, news []string, err error) {
	if haveRule {
		for _, l := range lines {
			if l != "" {
				origs = append(origs, l)
			}
		}
		if len(origs) == 0 {
			return nil, nil, errors.New(errors.ErrNoPaths, "no input paths")
		}
		return origs, nil, nil
	}

	switch structure {
	case StructureParagraphs:
		groups := paragraphs(lines)
		if len(groups) != 2 {
			return nil, nil, errors.Newf(errors.ErrBadParas,
				"the paragraphs structure expects exactly two paragraphs, got %d", len(groups))
		}
		origs, news = groups[0], groups[1]

	case StructurePairs:
		i := 0
		for _, l := range lines {
			if l == "" {
				continue
			}
			if i%2 == 0 {
				origs = append(origs, l)
			} else {
				news = append(news, l)
			}
			i++
		}

	case StructureRows:
		for _, l := range lines {
			if l == "" {
				continue
			}
			cells := strings.Split(l, "\t")
			if len(cells) != 2 || cells[0] == "" || cells[1] == "" {
				return nil, nil, errors.Newf(errors.ErrBadRow,
					"the rows structure expects rows with exactly two cells: %q", l)
			}
			origs = append(origs, cells[0])
			news = append(news, cells[1])
		}

	default: // flat
		var paths []string
		for _, l := range lines {
			if l != "" {
				paths = append(paths, l)
			}
		}
		half := len(paths) / 2
		origs, news = paths[:half], paths[half:]
	}

	if len(origs) == 0 && len(news) == 0 {
		return nil, nil, errors.New(errors.ErrNoPaths, "no input paths")
	}
	if len(origs) != len(news) {
		return nil, nil, errors.Newf(errors.ErrImbalance,
			"got an unequal number of original paths (%d) and new paths (%d)", len(origs), len(news))
	}
	return origs, news, nil
}

// paragraphs groups non-empty runs of lines.
func paragraphs(lines []string) [][]string {
	var groups [][]string
	var current []string
	for _, l := range lines {
		if l == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, l)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// Describe returns a short human description of a source for logging.
func Describe(args []string, file string, clip bool) string {
	switch {
	case len(args) > 0:
		return fmt.Sprintf("%d argument(s)", len(args))
	case clip:
		return "clipboard"
	case file != "":
		return fmt.Sprintf("file %s", file)
	default:
		return "stdin"
	}
}
