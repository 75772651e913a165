// seehuhn.de/go/fontbook - a font catalog and variant-matching core
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command fontbookctl ingests one or more font files, builds a
// catalog, and either lists the families found or selects the closest
// face for a requested weight/style at normal stretch.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/fontbook/face"
	"seehuhn.de/go/fontbook/fontbook"
	"seehuhn.de/go/fontbook/variant"
)

func main() {
	family := flag.String("family", "", "select a face from this family instead of listing families")
	weight := flag.Int("weight", int(variant.Regular), "requested weight (100-900)")
	italic := flag.Bool("italic", false, "request an italic style")
	oblique := flag.Bool("oblique", false, "request an oblique style")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Printf("Usage: %s [options] font-file...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	cat := fontbook.New()
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			os.Exit(1)
		}
		for _, info := range face.ParseAll(data, face.Overrides{}) {
			cat.Push(info)
		}
	}

	if *family == "" {
		for _, fam := range cat.Families() {
			fmt.Printf("%s (%d face(s))\n", fam.DisplayName, len(fam.Indices))
		}
		return
	}

	style := variant.Normal
	switch {
	case *italic:
		style = variant.Italic
	case *oblique:
		style = variant.Oblique
	}
	v := variant.Variant{
		Style:   style,
		Weight:  variant.NewWeight(*weight),
		Stretch: variant.NormalStretch,
	}

	key, ok := cat.Select(strings.ToLower(*family), v, nil)
	if !ok {
		fmt.Fprintf(os.Stderr, "No face found for family %q\n", *family)
		os.Exit(1)
	}
	info, _ := cat.Info(key.Index)
	fmt.Printf("Selected %s (index %d)\n", info.Family, key.Index)
	if key.Params.Weight != nil {
		fmt.Printf("  instance weight: %v\n", *key.Params.Weight)
	}
	if key.Params.Stretch != nil {
		fmt.Printf("  instance stretch: %v\n", *key.Params.Stretch)
	}
	if key.Params.Slant != nil {
		fmt.Printf("  instance slant: %v\n", *key.Params.Slant)
	}
	if key.Params.Italic != nil {
		fmt.Printf("  instance italic: %v\n", *key.Params.Italic)
	}
	if key.Params.OpticalSize != nil {
		fmt.Printf("  instance optical size: %v\n", *key.Params.OpticalSize)
	}
}
