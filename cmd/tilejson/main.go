// Command tilejson decodes, encodes and validates TileJSON documents.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tilejson "github.com/mr1sunshine/go-tilejson"
)

var cli struct {
	Decode   DecodeCmd   `cmd:"" help:"Parse a TileJSON document and print it back in canonical form."`
	Encode   EncodeCmd   `cmd:"" help:"Build a TileJSON document from flags and print it."`
	Validate ValidateCmd `cmd:"" help:"Check a TileJSON document against the schema constraints."`
}

// DecodeCmd reads a document from a file or stdin and re-emits it, which
// normalizes key order, fills defaults and drops unknown keys.
type DecodeCmd struct {
	Input  string `arg:"" optional:"" help:"Path to a TileJSON file. Reads stdin when omitted." type:"existingfile"`
	Pretty bool   `short:"p" help:"Indent the output."`
}

func (c *DecodeCmd) Run() error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}

	tj, err := tilejson.Decode(data)
	if err != nil {
		return err
	}

	return printDocument(tj, c.Pretty)
}

// EncodeCmd builds a document from the defaults plus whatever flags are set,
// then prints it.
type EncodeCmd struct {
	Name        string   `help:"Tileset name."`
	Description string   `help:"Tileset description."`
	Attribution string   `help:"Attribution shown with the map."`
	Tiles       []string `help:"Tile endpoint templates ({z}/{x}/{y})."`
	Scheme      string   `default:"xyz" enum:"xyz,tms" help:"Tile scheme (xyz or tms)."`
	MinZoom     uint8    `default:"0" help:"Minimum zoom level."`
	MaxZoom     uint8    `default:"30" help:"Maximum zoom level."`
	Pretty      bool     `short:"p" help:"Indent the output."`
}

func (c *EncodeCmd) Run() error {
	tj := tilejson.New()
	if c.Name != "" {
		tj.Name = &c.Name
	}
	if c.Description != "" {
		tj.Description = &c.Description
	}
	if c.Attribution != "" {
		tj.Attribution = &c.Attribution
	}
	if len(c.Tiles) > 0 {
		tj.Tiles = c.Tiles
	}
	if c.Scheme == "tms" {
		tj.Scheme = tilejson.SchemeTMS
	}
	tj.MinZoom = c.MinZoom
	tj.MaxZoom = c.MaxZoom

	return printDocument(tj, c.Pretty)
}

// ValidateCmd decodes a document and runs the semantic checks the codec
// skips.
type ValidateCmd struct {
	Input string `arg:"" optional:"" help:"Path to a TileJSON file. Reads stdin when omitted." type:"existingfile"`
}

func (c *ValidateCmd) Run() error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}

	tj, err := tilejson.Decode(data)
	if err != nil {
		return err
	}
	if err := tj.Validate(); err != nil {
		return err
	}

	fmt.Println("ok")
	return nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func printDocument(tj *tilejson.TileJSON, pretty bool) error {
	data, err := tilejson.Encode(tj)
	if err != nil {
		return err
	}
	if pretty {
		data, err = indent(data)
		if err != nil {
			return err
		}
	}

	fmt.Println(string(data))
	return nil
}

func indent(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "    "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("tilejson"),
		kong.Description("Decode, encode and validate TileJSON metadata documents."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
