package polyio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatYAML = "yaml"
	FormatSVG  = "svg"
)

var Formats = []string{FormatAuto, FormatText, FormatYAML, FormatSVG}

// Pick a format from a file extension. Anything unrecognized is text.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".svg":
		return FormatSVG
	}
	return FormatText
}

func Read(in io.Reader, format string) ([]*Point, error) {
	switch format {
	case FormatText, FormatAuto:
		return ReadText(in)
	case FormatYAML:
		return ReadYAML(in)
	case FormatSVG:
		return ReadSVG(in)
	}
	return nil, errors.Errorf("unknown polygon format %q", format)
}

// Read a polygon file. With FormatAuto the format comes from the extension.
func ReadFile(path, format string) ([]*Point, error) {
	if format == FormatAuto || format == "" {
		format = FormatForPath(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening polygon")
	}
	defer f.Close()
	points, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return points, nil
}
