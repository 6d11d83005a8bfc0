// Command siafu extracts a Marching Cubes isosurface from a directory of
// TIFF slices and writes it as an OBJ, STL, or PLY mesh.
package main

import (
	"log"
	"os"
	"strconv"

	"github.com/cjhoward/siafu"
	"github.com/cjhoward/siafu/meshio"
	"github.com/cjhoward/siafu/volume"
)

var logger = log.New(os.Stderr, "", 0)

func usage() {
	logger.Println("usage: siafu <volume_path> <isolevel> <output_file>")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("siafu: %v", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) != 4 {
		usage()
		os.Exit(1)
	}

	volumePath := os.Args[1]
	isolevel, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		usage()
		os.Exit(1)
	}
	outputPath := os.Args[3]

	if err := run(volumePath, isolevel, outputPath); err != nil {
		logger.Printf("siafu: %v", err)
		os.Exit(1)
	}
}

func run(volumePath string, isolevel float64, outputPath string) error {
	vol, err := volume.Load(volumePath)
	if err != nil {
		return err
	}
	logger.Printf("loaded volume %dx%dx%d (%d-bit)", vol.Width, vol.Height, vol.Depth, vol.BitsPerVoxel)

	var vertices []siafu.Vertex
	var triangles []siafu.Triangle
	siafu.Polygonize(isolevel, vol.Sampler(), vol.Width, vol.Height, vol.Depth, &vertices, &triangles)
	logger.Printf("extracted %d vertices, %d triangles", len(vertices), len(triangles))

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	format := meshio.FormatFromExtension(outputPath)
	if err := meshio.Write(out, format, vertices, triangles); err != nil {
		return err
	}
	logger.Printf("wrote %s", outputPath)
	return nil
}
