// Command png2ico wraps a single PNG in an ICO container for the Windows
// executable icon.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"image/png"
	"os"
)

const (
	iconDirSize      = 6
	iconDirEntrySize = 16
)

func main() {
	inPath := flag.String("in", "", "input PNG path")
	outPath := flag.String("out", "", "output ICO path")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: png2ico -in <input.png> -out <output.ico>")
		os.Exit(2)
	}
	if err := run(*inPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inPath string, outPath string) error {
	pngData, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read png: %w", err)
	}
	file, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open png: %w", err)
	}
	cfg, err := png.DecodeConfig(file)
	_ = file.Close()
	if err != nil {
		return fmt.Errorf("decode png config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > 256 || cfg.Height > 256 {
		return fmt.Errorf("png dimensions must be 1..256, got %dx%d", cfg.Width, cfg.Height)
	}
	if err := os.WriteFile(outPath, buildSingleIconICO(pngData, cfg.Width, cfg.Height), 0o644); err != nil {
		return fmt.Errorf("write ico: %w", err)
	}
	return nil
}

func buildSingleIconICO(pngData []byte, width int, height int) []byte {
	buf := make([]byte, iconDirSize+iconDirEntrySize+len(pngData))

	// ICONDIR
	binary.LittleEndian.PutUint16(buf[0:2], 0) // reserved
	binary.LittleEndian.PutUint16(buf[2:4], 1) // image type (icon)
	binary.LittleEndian.PutUint16(buf[4:6], 1) // image count

	entry := buf[iconDirSize : iconDirSize+iconDirEntrySize]
	entry[0] = iconDimByte(width)
	entry[1] = iconDimByte(height)
	binary.LittleEndian.PutUint16(entry[4:6], 1)  // color planes
	binary.LittleEndian.PutUint16(entry[6:8], 32) // bits per pixel
	binary.LittleEndian.PutUint32(entry[8:12], uint32(len(pngData)))
	binary.LittleEndian.PutUint32(entry[12:16], uint32(iconDirSize+iconDirEntrySize))

	copy(buf[iconDirSize+iconDirEntrySize:], pngData)
	return buf
}

func iconDimByte(v int) byte {
	if v >= 256 {
		return 0
	}
	return byte(v)
}
