package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacoelho/facesconfig"
	fcerrors "github.com/jacoelho/facesconfig/errors"
	"github.com/jacoelho/facesconfig/internal/stack"
	"github.com/jacoelho/facesconfig/pkg/version"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version <faces-config.xml>",
		Short: "Print the faces-config version of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runVersion(args[0])
		},
	}
}

func (a *app) runVersion(path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	v, err := facesconfig.DetectVersion(f)
	if err != nil {
		return fmt.Errorf("detect version %s: %w", path, err)
	}
	return writeln(a.stdout, v)
}

func newTreeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <faces-config.xml>",
		Short: "Print the component tree of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runTree(args[0])
		},
	}
}

type treeEntry struct {
	c     *facesconfig.Component
	depth int
}

func (a *app) runTree(path string) error {
	m, err := a.load(path)
	if err != nil {
		return err
	}
	pending := stack.New[treeEntry](16)
	pending.Push(treeEntry{c: m.Root()})
	for pending.Len() > 0 {
		e, _ := pending.Pop()
		line := strings.Repeat("  ", e.depth) + string(e.c.LocalName())
		if id := e.c.ID(); id != "" {
			line += " #" + id
		}
		if err := writeln(a.stdout, line); err != nil {
			return err
		}
		children := e.c.Children()
		for i := len(children) - 1; i >= 0; i-- {
			pending.Push(treeEntry{c: children[i], depth: e.depth + 1})
		}
	}
	return nil
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <faces-config.xml>",
		Short: "Report content the document version does not define",
		Long: `Report content the document version does not define.

Exits with status 1 when foreign elements are found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runCheck(args[0])
		},
	}
}

func (a *app) runCheck(path string) error {
	m, err := a.load(path)
	if err != nil {
		return err
	}
	if err := m.Check(); err != nil {
		issues, ok := fcerrors.AsIssues(err)
		if !ok {
			return err
		}
		for i := range issues {
			if err := writeln(a.stderr, issues[i].Error()); err != nil {
				return err
			}
		}
		if err := writef(a.stderr, "%s has %d foreign element(s)\n", path, len(issues)); err != nil {
			return err
		}
		return exitError{code: 1}
	}
	return writef(a.stdout, "%s conforms to faces-config %s\n", path, m.Version())
}

func newNormalizeCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "normalize <faces-config.xml>",
		Short: "Sort every element into canonical schema order",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runNormalize(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	return cmd
}

func (a *app) runNormalize(path, output string) error {
	m, err := a.load(path)
	if err != nil {
		return err
	}
	n := m.Normalize()
	a.log.Info("normalized", zap.String("file", path), zap.Int("reordered", n))
	return a.write(m, output)
}

func newNewCommand(a *app) *cobra.Command {
	var (
		versionName string
		output      string
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write an empty faces-config document",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runNew(versionName, output)
		},
	}
	cmd.Flags().StringVar(&versionName, "version", "", "document version (default: default-version setting)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	return cmd
}

func (a *app) runNew(versionName, output string) error {
	if versionName == "" {
		versionName = a.cfg.DefaultVersion
	}
	v, err := version.Parse(versionName)
	if err != nil {
		return err
	}
	m, err := facesconfig.NewWithOptions(v, a.options())
	if err != nil {
		return err
	}
	return a.write(m, output)
}

func (a *app) write(m *facesconfig.Model, output string) error {
	if output == "" {
		_, err := m.WriteTo(a.stdout)
		return err
	}
	b, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	a.log.Debug("written", zap.String("file", output), zap.Int("bytes", len(b)))
	return nil
}
