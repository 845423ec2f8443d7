// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: all-pairs computation and the output writers.

package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/store"
)

// ErrUnknownFormat indicates an unrecognized output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names an output encoding.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatText, FormatTable, FormatYAML}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Entry is the shortest distance between one ordered pair of nodes.
// Distance is dijkstra.Infinity when Reachable is false.
type Entry struct {
	From      string
	To        string
	Distance  int64
	Reachable bool
}

// AllPairs returns an entry for every ordered pair of distinct nodes of g.
// The options are passed to every labeling run.
func AllPairs(g store.Reader, opts ...dijkstra.Option) ([]Entry, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	nodes := g.Nodes()
	if len(nodes) < 2 {
		return []Entry{}, nil
	}

	entries := make([]Entry, 0, len(nodes)*(len(nodes)-1))
	for _, from := range nodes {
		res, err := dijkstra.Labels(g, from.ID, opts...)
		if err != nil {
			return nil, fmt.Errorf("report: labeling from %s: %w", from.ID, err)
		}
		for _, to := range nodes {
			if to.Index == from.Index {
				continue
			}
			entries = append(entries, Entry{
				From:      from.ID,
				To:        to.ID,
				Distance:  res.Distance(to.Index),
				Reachable: res.Reachable(to.Index),
			})
		}
	}

	return entries, nil
}

// Write renders entries to w in the given format.
func Write(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case FormatText:
		return WriteText(w, entries)
	case FormatTable:
		return WriteTable(w, entries)
	case FormatYAML:
		return WriteYAML(w, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func distanceText(e Entry) string {
	if !e.Reachable {
		return "-"
	}

	return strconv.FormatInt(e.Distance, 10)
}

// WriteText writes one "FROM->TO:\tDISTANCE" line per entry.
func WriteText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s->%s:\t%s\n", e.From, e.To, distanceText(e)); err != nil {
			return err
		}
	}

	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// WriteTable renders entries as a bordered terminal table.
func WriteTable(w io.Writer, entries []Entry) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.From, e.To, distanceText(e)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FROM", "TO", "DISTANCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// yamlEntry omits the distance of unreachable pairs instead of printing the
// sentinel.
type yamlEntry struct {
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Distance  *int64 `yaml:"distance,omitempty"`
	Reachable bool   `yaml:"reachable"`
}

// WriteYAML writes entries as a YAML sequence.
func WriteYAML(w io.Writer, entries []Entry) error {
	out := make([]yamlEntry, len(entries))
	for i, e := range entries {
		out[i] = yamlEntry{From: e.From, To: e.To, Reachable: e.Reachable}
		if e.Reachable {
			d := e.Distance
			out[i].Distance = &d
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return enc.Close()
}
