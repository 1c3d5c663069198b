// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/dylanmckay/mash/base/errors"
	"github.com/dylanmckay/mash/base/iox/tomlx"
	"github.com/dylanmckay/mash/base/logx"
	"github.com/dylanmckay/mash/base/reflectx"
	"github.com/dylanmckay/mash/load"
	"github.com/dylanmckay/mash/load/wavefront"
	"github.com/spf13/cobra"
)

// newRootCmd returns the mash command with all of its subcommands.
func newRootCmd() *cobra.Command {
	cfg := &Config{}
	errors.Must(reflectx.SetFromDefaultTags(cfg))

	var cfgFile string
	var vv, v, q bool
	root := &cobra.Command{
		Use:           "mash",
		Short:         "Inspect and convert triangular meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			return loadConfig(cfg, cfgFile, cmd.Flags())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file to read instead of "+DefaultConfigFile+" (.toml or .yaml)")
	pf.IntVar(&cfg.IndexBits, "index-bits", cfg.IndexBits, "width of the mesh indices: 8, 16, 32 or 64")
	pf.StringVar(&cfg.Filter, "filter", cfg.Filter, "only use objects whose name contains this text")
	pf.BoolVarP(&v, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&vv, "vv", false, "show debug log messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show error log messages")

	dedup := &cobra.Command{
		Use:   "dedup FILE",
		Short: "Rebuild the scene merging vertices at the same position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDedup(cmd, cfg, args[0])
		},
	}
	dedup.Flags().IntVar(&cfg.Every, "every", cfg.Every, "only keep every n-th triangle")

	var save string
	config := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings, or save them to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, cfg, save)
		},
	}
	config.Flags().StringVar(&save, "save", "", "file to save the settings to (.toml or .yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "objects FILE",
			Short: "List the objects of a file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runObjects(cmd, cfg, args[0])
			},
		},
		&cobra.Command{
			Use:   "info FILE",
			Short: "Show statistics of the whole scene",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runInfo(cmd, cfg, args[0])
			},
		},
		dedup,
		config,
	)
	return root
}

// openScene loads the given file, keeping the objects that
// match the filter of the config.
func openScene(cfg *Config, path string) (*wavefront.Wavefront, error) {
	format, err := load.Detect(path)
	if err != nil {
		return nil, err
	}
	if format != load.FormatWavefront {
		return nil, fmt.Errorf("%s: cannot load %v files", path, format)
	}
	wf, err := wavefront.FromPath(path)
	if err != nil {
		return nil, err
	}
	if cfg.Filter == "" {
		return wf, nil
	}
	return wf.Select(func(ob *wavefront.Object) bool {
		return strings.Contains(ob.Name(), cfg.Filter)
	}), nil
}

func runObjects(cmd *cobra.Command, cfg *Config, path string) error {
	wf, err := openScene(cfg, path)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMATERIAL\tVERTICES\tINDICES\tTRIANGLES\tAMBIENT")
	for _, ob := range wf.Objects() {
		st, err := objectStats(ob, cfg.IndexBits)
		if err != nil {
			return indexHint(err)
		}
		matName, ambient := "-", "-"
		if mat, ok := ob.Material(); ok {
			matName, ambient = mat.Name(), mat.AmbientColor().String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", ob.Name(), matName, st.Vertices, st.Indices, st.Triangles, ambient)
	}
	return tw.Flush()
}

func runInfo(cmd *cobra.Command, cfg *Config, path string) error {
	wf, err := openScene(cfg, path)
	if err != nil {
		return err
	}
	st, _, err := sceneStats(wf, cfg.IndexBits, 1, false)
	if err != nil {
		return indexHint(err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "objects:   %d\n", len(wf.Objects()))
	fmt.Fprintf(out, "materials: %d\n", len(wf.Materials()))
	st.print(out)
	return nil
}

func runDedup(cmd *cobra.Command, cfg *Config, path string) error {
	wf, err := openScene(cfg, path)
	if err != nil {
		return err
	}
	before, after, err := sceneStats(wf, cfg.IndexBits, cfg.Every, true)
	if err != nil {
		return indexHint(err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "before:")
	before.print(out)
	fmt.Fprintln(out, "after:")
	after.print(out)
	return nil
}

func runConfig(cmd *cobra.Command, cfg *Config, save string) error {
	if save != "" {
		if err := saveConfig(cfg, save); err != nil {
			return err
		}
		slog.Info("saved config", "file", save)
		return nil
	}
	b, err := tomlx.WriteBytes(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}
