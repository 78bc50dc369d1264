package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RumbleDiscovery/bustache"
)

var (
	overrideFile string
	layoutFile   string
)

var renderCmd = &cobra.Command{
	Use:   "render [data] template",
	Short: "render a template against YAML data",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dataPath, templatePath string
		if len(args) == 1 {
			dataPath, templatePath = "-", args[0]
		} else {
			dataPath, templatePath = args[0], args[1]
		}

		data, err := loadYAML(dataPath)
		if err != nil {
			return fmt.Errorf("loading data: %w", err)
		}
		if overrideFile != "" {
			override, err := loadYAML(overrideFile)
			if err != nil {
				return fmt.Errorf("loading override: %w", err)
			}
			data = mergeOverride(data, override)
		}

		start := time.Now()
		tmplSrc, err := os.ReadFile(templatePath)
		if err != nil {
			return err
		}
		format, err := bustache.Compile(string(tmplSrc))
		if err != nil {
			return err
		}
		log.Debug().Str("template", templatePath).Dur("compile", time.Since(start)).Msg("compiled")

		renderStart := time.Now()
		var out string
		if layoutFile != "" {
			layoutSrc, err := os.ReadFile(layoutFile)
			if err != nil {
				return err
			}
			layout, err := bustache.Compile(string(layoutSrc))
			if err != nil {
				return err
			}
			ctx := bustache.MapContext{"content": format}
			out, err = bustache.ToString(layout, data, bustache.WithContext(ctx))
			if err != nil {
				return err
			}
		} else {
			out, err = bustache.ToString(format, data)
			if err != nil {
				return err
			}
		}
		log.Debug().Dur("render", time.Since(renderStart)).Msg("rendered")

		fmt.Print(out)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&overrideFile, "override", "", "YAML file merged over the data document")
	renderCmd.Flags().StringVar(&layoutFile, "layout", "", "layout template rendered with the template available as the `content` partial")
}
