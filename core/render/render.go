package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"content-validator/core/validation"

	"github.com/nao1215/markdown"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for reports.
type Format string

const (
	FormatTree     Format = "tree"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatTree, FormatYAML, FormatJSON, FormatMarkdown}
}

// ParseFormat resolves a format name. "md" is accepted for markdown.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatTree:
		return FormatTree, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// Document groups reports by validator name.
type Document map[string]validation.Report

// Write renders doc to w. Every format reads the same document and orders
// validators, sections and rows deterministically.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatTree, "":
		return writeTree(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]validation.Report(doc)); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]validation.Report(doc))
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeTree(w io.Writer, doc Document) error {
	root := pterm.TreeNode{Text: "validation"}
	for _, name := range sortedKeys(doc) {
		node := pterm.TreeNode{Text: name}
		report := doc[name]
		for _, section := range sections(report) {
			sec := pterm.TreeNode{Text: section}
			rows := report[section]
			for _, key := range rowKeys(rows) {
				sec.Children = append(sec.Children, pterm.TreeNode{Text: key + ": " + rows[key]})
			}
			node.Children = append(node.Children, sec)
		}
		root.Children = append(root.Children, node)
	}

	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func writeMarkdown(w io.Writer, doc Document) error {
	md := markdown.NewMarkdown(w)
	md.H1("Content Validation Report")
	md.PlainText("")

	for _, name := range sortedKeys(doc) {
		report := doc[name]
		md.H2(name)
		md.PlainText("")
		for _, section := range sections(report) {
			md.H3(section)
			md.PlainText("")
			rows := report[section]
			if len(rows) == 0 {
				md.PlainText("Nothing to compare.")
				md.PlainText("")
				continue
			}
			set := markdown.TableSet{Header: []string{"Key", "Result"}}
			for _, key := range rowKeys(rows) {
				set.Rows = append(set.Rows, []string{key, rows[key]})
			}
			md.Table(set)
			md.PlainText("")
		}
	}
	return md.Build()
}

// sections orders counts before samples, then anything else by name.
func sections(r validation.Report) []string {
	rank := func(s string) int {
		switch s {
		case validation.SectionCounts:
			return 0
		case validation.SectionSamples:
			return 1
		}
		return 2
	}
	keys := sortedKeys(r)
	sort.SliceStable(keys, func(i, j int) bool { return rank(keys[i]) < rank(keys[j]) })
	return keys
}

// rowKeys orders numeric identifiers by value, ahead of any other key,
// which sort by name.
func rowKeys(rows map[string]string) []string {
	keys := sortedKeys(rows)
	sort.SliceStable(keys, func(i, j int) bool {
		a, aErr := strconv.ParseInt(keys[i], 10, 64)
		b, bErr := strconv.ParseInt(keys[j], 10, 64)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		default:
			return false
		}
	})
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
