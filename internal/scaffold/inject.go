package scaffold

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petal-dev/petal/internal/errors"
)

// ModulePath reads the module path from the go.mod at root. Projects
// without a go.mod get no import injection; the caller treats the empty
// string as "skip".
func ModulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.NewIO("scaffold.ModulePath", filepath.Join(root, "go.mod"), err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			return strings.TrimSpace(rest), nil
		}
	}
	return "", nil
}

// InjectImport adds a blank import of importPath to the Go source file at
// appPath, so scaffolded component packages are compiled into the user's
// application. The edit is idempotent: a file that already imports the
// path is left untouched. Returns whether the file changed.
func InjectImport(appPath, importPath string) (bool, error) {
	src, err := os.ReadFile(appPath)
	if err != nil {
		return false, errors.NewIO("scaffold.InjectImport", appPath, err)
	}

	quoted := fmt.Sprintf("%q", importPath)
	if bytes.Contains(src, []byte(quoted)) {
		return false, nil
	}

	lines := strings.SplitAfter(string(src), "\n")
	out := make([]string, 0, len(lines)+2)
	injected := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		out = append(out, line)
		if injected {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "import (" {
			out = append(out, "\t_ "+quoted+"\n")
			injected = true
		} else if strings.HasPrefix(trimmed, "package ") {
			// Remember where a standalone import could go if the file
			// has no import block at all.
			if !hasImportBlock(lines[i:]) {
				out = append(out, "\nimport _ "+quoted+"\n")
				injected = true
			}
		}
	}

	if !injected {
		return false, errors.NewInternal("scaffold.InjectImport",
			"no package clause found in "+appPath, nil)
	}

	if err := os.WriteFile(appPath, []byte(strings.Join(out, "")), 0o644); err != nil {
		return false, errors.NewIO("scaffold.InjectImport", appPath, err)
	}
	return true, nil
}

func hasImportBlock(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == "import (" {
			return true
		}
	}
	return false
}
