package testutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const (
	CommandsJSON = `{
    "commands": [
        {"name": "dir", "description": "Lists the files of a directory"},
        {"name": "ipconfig", "description": "Shows the network configuration"},
        {"name": "ping", "description": "Checks whether a host answers"}
    ]
}
`
	DetailsJSON = `{
    "commands": [
        {
            "name": "ping",
            "description": "Sends echo requests to a host",
            "examples": ["ping localhost", "ping -n 3 example.com"]
        },
        {
            "name": "Dir",
            "description": "Lists the files of a directory",
            "examples": ["dir /w"]
        }
    ]
}
`
	VersionINI = "[info]\nsoftware_version = 1.4.2\n"
)

// DataDir creates a populated data directory: both catalogs, a version file,
// and a solid red background image at 1/default1.png. No style.json is
// written.
func DataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, filepath.Join(dir, "commands.json"), CommandsJSON)
	WriteFile(t, filepath.Join(dir, "command_details.json"), DetailsJSON)
	WriteFile(t, filepath.Join(dir, "version.ini"), VersionINI)
	WritePNG(t, filepath.Join(dir, "1", "default1.png"), color.RGBA{R: 255, A: 255})
	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WritePNG writes a small single-color PNG to path.
func WritePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}
