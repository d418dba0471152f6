package hooks

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/fs"
	"github.com/fisher-hooks/fisher/pkg/providers"
)

var providerLine = regexp.MustCompile(`^##\s*Fisher-([A-Za-z0-9]+):\s*(.*)$`)

// Parse builds a hook from the content of its executable. Providers are
// declared in the leading comment block as "## Fisher-<Name>: <config>".
// Errors carry the file, the line and the hook name.
func Parse(name, exec string, content []byte) (*Hook, error) {
	return ParseReader(name, exec, bytes.NewReader(content))
}

// ParseReader is Parse reading from r. Reading stops at the first line
// outside the leading comment block, so binaries are never read in full.
func ParseReader(name, exec string, r io.Reader) (*Hook, error) {
	var provs []providers.Provider

	reader := bufio.NewReader(r)
	line := 0
	for {
		raw, ok, err := nextLine(reader)
		if err != nil {
			return nil, annotate(errs.IO(err), exec, 0, name)
		}
		if !ok {
			break
		}
		line++
		text := strings.TrimSpace(raw)

		if text == "" {
			continue
		}
		if !strings.HasPrefix(text, "#") {
			break
		}

		match := providerLine.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		provider, err := providers.New(match[1], match[2])
		if err != nil {
			return nil, annotate(err, exec, line, name)
		}
		provs = append(provs, provider)
	}

	return New(name, exec, provs), nil
}

// nextLine returns the next line of r, or false at the end of input. A line
// longer than the reader buffer is read in full only while it may still be
// a comment; otherwise its first chunk is returned.
func nextLine(r *bufio.Reader) (string, bool, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			if trimmed := bytes.TrimLeft(line, " \t\r\v\f"); len(trimmed) > 0 && trimmed[0] != '#' {
				return string(line), true, nil
			}
		case errors.Is(err, io.EOF):
			return string(line), len(line) > 0, nil
		case err != nil:
			return "", false, err
		default:
			return string(line), true, nil
		}
	}
}

// Load opens exec through fsys and parses it.
func Load(fsys fs.FS, name, exec string) (*Hook, error) {
	file, err := fsys.Open(exec)
	if err != nil {
		return nil, annotate(errs.IO(err), exec, 0, name)
	}
	defer file.Close()

	return ParseReader(name, exec, file)
}

func annotate(err error, file string, line int, hook string) error {
	err = errs.WithFile(err, file)
	if line > 0 {
		err = errs.WithLine(err, line)
	}
	return errs.WithHook(err, hook)
}
