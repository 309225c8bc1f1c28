// Package chart defines the JSON documents handed to the barh chart
// renderer and to the site generator.
//
// Both documents are written deterministically in the layout of Python's
// json.dumps(indent=4): struct fields and ordered objects keep their
// declared order, indentation is four spaces, non-ASCII characters are
// written as \uXXXX escapes, and there is no trailing newline.
package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf16"
	"unicode/utf8"
)

// Indent is the indentation used for every written document.
const Indent = "    "

// Font is the barh items_font block.
type Font struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
}

// Item is one labelled bar.
type Item struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Axis is the barh hor_axis block.
type Axis struct {
	Title           string `json:"title"`
	RoundTickValues bool   `json:"round_tick_values"`
	Width           int    `json:"width"`
	MaxValue        int    `json:"max_value"`
}

// Barh is the horizontal bar chart descriptor consumed by barh.
type Barh struct {
	ItemsFont Font   `json:"items_font"`
	Items     []Item `json:"items"`
	HorAxis   Axis   `json:"hor_axis"`
}

// Style carries the presentation settings of a Barh chart.
type Style struct {
	FontFamily      string
	FontSize        int
	AxisTitle       string
	Width           int
	RoundTickValues bool
}

// NewBarh builds a chart with one bar per name. names and values must have
// the same length. maxValue is the right end of the axis.
func NewBarh(style Style, names []string, values []int, maxValue int) (*Barh, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("chart: %d names for %d values", len(names), len(values))
	}
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, Value: values[i]}
	}
	return &Barh{
		ItemsFont: Font{Family: style.FontFamily, Size: style.FontSize},
		Items:     items,
		HorAxis: Axis{
			Title:           style.AxisTitle,
			RoundTickValues: style.RoundTickValues,
			Width:           style.Width,
			MaxValue:        maxValue,
		},
	}, nil
}

// Object is a JSON object whose keys keep insertion order.
type Object []Item

// MarshalJSON encodes o as {"name": value, ...} in slice order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, item.Name); err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%d", item.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Group is one entry of a Groups document.
type Group struct {
	Name   string
	Counts Object
}

// Groups maps group names to per-renderer counts, keeping group order.
type Groups []Group

// MarshalJSON encodes g as {"group": {...}, ...} in slice order.
func (g Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, group.Name); err != nil {
			return nil, err
		}
		counts, err := group.Counts.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(counts)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return err
	}
	// Encode terminates with a newline; replace it with the separator.
	buf.Truncate(buf.Len() - 1)
	buf.WriteByte(':')
	return nil
}

// Encode writes v to w as indented JSON.
func Encode(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))))
	return err
}

// escapeNonASCII rewrites every non-ASCII rune of an encoded document as
// a lowercase \uXXXX escape, using a surrogate pair above the BMP. Such
// runes only occur inside string literals.
func escapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		if data[0] < utf8.RuneSelf {
			out = append(out, data[0])
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}

// WriteFile encodes v into path, creating parent directories as needed.
func WriteFile(path string, v any) error {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
