// Package build runs the downloaded CSS binary to compile the project
// stylesheet.
package build

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/errors"
	"github.com/petal-dev/petal/internal/logging"
)

// Runner executes CSS builds for one project.
type Runner struct {
	root   string
	logger logging.Logger
}

// NewRunner creates a build runner rooted at the project directory.
func NewRunner(root string, logger logging.Logger) *Runner {
	return &Runner{root: root, logger: logger.WithComponent("build")}
}

// InputPath returns the project-relative Tailwind entry stylesheet.
func InputPath(cfg *config.ProjectConfig) string {
	return filepath.Join(cfg.Path(config.PathCSS), "input.css")
}

// OutputPath returns the project-relative compiled stylesheet.
func OutputPath(cfg *config.ProjectConfig) string {
	return filepath.Join(cfg.Path(config.PathCSS), "output.css")
}

// CSS compiles input.css to output.css with the downloaded binary.
// Minify is used for production builds.
func (r *Runner) CSS(ctx context.Context, cfg *config.ProjectConfig, minify bool) error {
	binary := filepath.Join(r.root, cfg.BinaryPath())
	if _, err := os.Stat(binary); err != nil {
		if os.IsNotExist(err) {
			return errors.NewIO("build.CSS", binary,
				fmt.Errorf("CSS binary not found, run 'petal sync' to download it"))
		}
		return errors.NewIO("build.CSS", binary, err)
	}

	args := []string{
		"-i", InputPath(cfg),
		"-o", OutputPath(cfg),
	}
	if minify {
		args = append(args, "--minify")
	}

	r.logger.Debug(ctx, "running css build", "binary", binary, "minify", minify)

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = r.root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.NewInternal("build.CSS",
			fmt.Sprintf("css build failed: %s", bytes.TrimSpace(stderr.Bytes())), err)
	}
	return nil
}
