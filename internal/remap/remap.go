/*
 Palette remapping for SVG assets. Every eligible .svg in a directory gets
 a -dark.svg sibling whose color codes are rewritten by an ordered list of
 literal substring replacements.
*/

package remap

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	SVGSuffix  = ".svg"
	DarkSuffix = "-dark.svg"
)

// Rule is one literal substitution. No regex, no case folding.
type Rule struct {
	From string
	To   string
}

// Mapping is applied in order, each rule seeing the previous rule's output.
type Mapping []Rule

type Config struct {
	Dir     string
	Mapping Mapping
}

// DefaultMapping is the light-to-dark palette shipped with svgdark.
func DefaultMapping() Mapping {
	return Mapping{
		{From: "#909090", To: "#252626"},
		{From: "#ab5b87", To: "#79305a"},
		{From: "#ecedf1", To: "#f7c5ad"},
		{From: "#fff", To: "#f7c5ad"},
	}
}

func DefaultConfig() Config {
	return Config{
		Dir:     "./res",
		Mapping: DefaultMapping(),
	}
}

// Discover lists the direct file entries of dir, sorted so repeated runs
// process files in the same order. Subdirectories are skipped, not walked.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DirError{Path: dir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// IsEligible reports whether name is an input candidate: an .svg that is
// not itself a generated dark variant.
func IsEligible(name string) bool {
	return strings.HasSuffix(name, SVGSuffix) && !strings.HasSuffix(name, DarkSuffix)
}

// DeriveDarkName turns name.svg into name-dark.svg. Only the trailing
// suffix is touched; an ".svg" elsewhere in the name is left alone.
func DeriveDarkName(name string) string {
	return strings.TrimSuffix(name, SVGSuffix) + DarkSuffix
}

// Apply runs the mapping over content, one rule at a time.
func Apply(content string, m Mapping) string {
	for _, rule := range m {
		content = strings.ReplaceAll(content, rule.From, rule.To)
	}
	return content
}

// Process generates a dark variant for every eligible SVG in cfg.Dir,
// overwriting stale variants from earlier runs. It returns the paths it
// wrote. The first read or write failure aborts the rest of the batch.
func Process(cfg Config) ([]string, error) {
	names, err := Discover(cfg.Dir)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range names {
		if !IsEligible(name) {
			continue
		}

		srcPath := filepath.Join(cfg.Dir, name)
		content, err := os.ReadFile(srcPath)
		if err != nil {
			return written, &FileError{Path: srcPath, Op: "read", Err: err}
		}

		outPath := filepath.Join(cfg.Dir, DeriveDarkName(name))
		if err := os.WriteFile(outPath, []byte(Apply(string(content), cfg.Mapping)), 0644); err != nil {
			return written, &FileError{Path: outPath, Op: "write", Err: err}
		}
		written = append(written, outPath)
	}
	return written, nil
}
