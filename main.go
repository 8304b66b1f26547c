// Command qrcode2stl generates a printable tag model from a JSON config
// and writes it to STL or 3MF.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/dwongdev/qrcode2stl/pkg/export"
	"github.com/dwongdev/qrcode2stl/pkg/kernel/sdfx"
	"github.com/dwongdev/qrcode2stl/pkg/tag"
	"github.com/dwongdev/qrcode2stl/pkg/tessellate"
)

func main() {
	configPath := flag.String("config", "tag.json", "tag config JSON file")
	output := flag.String("o", "tag.stl", "output file (.stl or .3mf)")
	format := flag.String("format", "", "output format, stl or 3mf (default: from extension)")
	resolution := flag.Int("resolution", 0, "marching cubes cells (default 200)")

	fontRegular := flag.String("font", "", "regular TTF font (required when the config has a label)")
	fontItalic := flag.String("font-italic", "", "italic TTF font (falls back to regular)")
	fontBold := flag.String("font-bold", "", "bold TTF font (falls back to regular)")
	fontBoldItalic := flag.String("font-bold-italic", "", "bold-italic TTF font (falls back to regular)")
	flag.Parse()

	data, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}
	cfg, err := tag.ParseConfig(data)
	if err != nil {
		log.Fatal(err)
	}

	findings := cfg.Validate()
	for _, f := range findings {
		log.Print(f.Error())
	}
	if tag.HasBlockingErrors(findings) {
		log.Fatal("config rejected")
	}

	var fonts *sdfx.Fonts
	if cfg.Base.HasText {
		if *fontRegular == "" {
			log.Fatal("the config has a label; -font is required")
		}
		fonts, err = sdfx.LoadFonts(*fontRegular, *fontItalic, *fontBold, *fontBoldItalic)
		if err != nil {
			log.Fatal(err)
		}
	}

	k := sdfx.New(fonts)
	k.SetResolution(*resolution)

	res, err := tag.Generate(cfg, k)
	if err != nil {
		log.Fatal(err)
	}
	if len(res.Lines) > 0 && res.Message() != cfg.Base.TextMessage {
		log.Printf("label re-flowed to %d lines:\n%s", len(res.Lines), res.Message())
	}

	meshes, err := tessellate.Parts(res.Parts, cfg, k)
	if err != nil {
		log.Fatal(err)
	}

	switch outputFormat(*format, *output) {
	case "stl":
		// Single-file output follows the combined part: an inverted label is
		// a cavity for downstream subtraction, not printable geometry.
		printable := meshes
		if cfg.Code.Invert {
			printable = nil
			for _, m := range meshes {
				if m.PartName != string(tag.PartSubtitle) {
					printable = append(printable, m)
				}
			}
		}
		err = export.CreateSTL(*output, tessellate.Combined(printable))
	case "3mf":
		err = export.Create3MF(*output, meshes)
	default:
		log.Fatalf("unknown output format for %s (use -format stl|3mf)", *output)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d parts)", *output, len(meshes))
}

// outputFormat resolves the export format from the flag or the output
// file extension.
func outputFormat(format, output string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch {
	case strings.HasSuffix(strings.ToLower(output), ".stl"):
		return "stl"
	case strings.HasSuffix(strings.ToLower(output), ".3mf"):
		return "3mf"
	}
	return ""
}
