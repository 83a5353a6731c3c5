package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxfmap/config"
	"github.com/zooyer/dxfmap/export"
	"github.com/zooyer/dxfmap/geo"
	"github.com/zooyer/dxfmap/workflow"
)

func main() {
	var (
		configFile string
		cfg        *config.Config
		v          = config.New()
	)

	rootCmd := &cobra.Command{
		Use:           "dxfmap",
		Short:         "Geo-reference DXF floor plans into map objects and elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) (err error) {
			if configFile == "" {
				configFile = os.Getenv("CONFIG_FILE")
			}
			if cfg, err = config.Load(v, configFile); err != nil {
				return err
			}
			if configFile != "" {
				log.Printf("Loaded config file: %s", configFile)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration (json/yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "json", "Output format: json, yaml, msgpack")
	rootCmd.PersistentFlags().Bool("pause", false, "Wait for a key press before exiting")
	_ = v.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = v.BindPFlag("pause", rootCmd.PersistentFlags().Lookup("pause"))

	convertCmd := &cobra.Command{
		Use:   "convert [file.dxf]",
		Short: "Convert one DXF plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return convert(cfg, args)
		},
	}
	convertCmd.Flags().Float64("lat", 0, "Latitude of the drawing origin")
	convertCmd.Flags().Float64("lon", 0, "Longitude of the drawing origin")
	convertCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	convertCmd.Flags().String("elements-csv", "", "Also write the element sheets as CSV")
	_ = v.BindPFlag("origin.lat", convertCmd.Flags().Lookup("lat"))
	_ = v.BindPFlag("origin.lon", convertCmd.Flags().Lookup("lon"))
	_ = v.BindPFlag("output", convertCmd.Flags().Lookup("output"))
	_ = v.BindPFlag("elements_csv", convertCmd.Flags().Lookup("elements-csv"))

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert every plan listed in the configuration",
		RunE: func(c *cobra.Command, args []string) error {
			return batch(c.Context(), cfg)
		},
	}
	batchCmd.Flags().IntP("workers", "w", 4, "Plans converted concurrently")
	_ = v.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(convertCmd, batchCmd)

	err := rootCmd.Execute()
	if err != nil {
		log.Printf("dxfmap: %v", err)
	}
	if cfg != nil && cfg.Pause {
		xos.PauseExit()
	}
	if err != nil {
		os.Exit(1)
	}
}

func convert(cfg *config.Config, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var filename string
	if len(args) > 0 {
		filename = args[0]
	} else {
		// 没有参数时弹出文件选择框（拖放或双击运行）
		var err error
		filename, err = zenity.SelectFile(
			zenity.Title("Select a DXF plan"),
			zenity.FileFilter{Name: "DXF files", Patterns: []string{"*.dxf"}, CaseFold: true},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return fmt.Errorf("no DXF file selected")
			}
			return err
		}
	}

	result, err := workflow.RunFile(filename, cfg.Origin)
	if err != nil {
		if len(args) == 0 {
			_ = zenity.Error(err.Error(), zenity.Title("dxfmap"))
		}
		return err
	}
	report(result)

	if cfg.ElementsCSV != "" {
		if err = export.WriteElementsCSV(cfg.ElementsCSV, result.Elements); err != nil {
			return err
		}
		log.Printf("convert: elements written to %s", cfg.ElementsCSV)
	}

	return write(cfg, cfg.Output, result)
}

func batch(ctx context.Context, cfg *config.Config) error {
	if len(cfg.Plans) == 0 {
		return fmt.Errorf("no plans in configuration")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := workflow.RunBatch(ctx, cfg.Plans, cfg.Workers)
	if err != nil {
		return err
	}

	for _, result := range results {
		report(result)
		out := strings.TrimSuffix(result.Source, filepath.Ext(result.Source)) + "." + extension(cfg.Format)
		if err = write(cfg, out, result); err != nil {
			return err
		}
	}

	return nil
}

func report(result *workflow.Result) {
	fmt.Fprintf(os.Stderr, "[%s] %s | layers: %d | objects: %d | elements: %d\n",
		result.ID, result.Source, len(result.Layers), len(result.Objects), len(result.Elements),
	)
	if result.Truncated {
		log.Printf("convert: %s is truncated, partial result", result.Source)
	}
	if result.Oversized() {
		log.Printf("convert: %s extents exceed %.0f m, projection is approximate", result.Source, geo.MaxExtent)
	}
}

func write(cfg *config.Config, filename string, result *workflow.Result) (err error) {
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if filename != "" {
		var file *os.File
		if file, err = os.Create(filename); err != nil {
			return err
		}
		defer func() {
			if e := file.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = file
		log.Printf("convert: writing %s", filename)
	}

	return export.Encode(w, format, result)
}

func extension(format string) string {
	f, err := export.ParseFormat(format)
	if err != nil {
		return string(export.JSON)
	}
	return string(f)
}
