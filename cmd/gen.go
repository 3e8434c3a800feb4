package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gertd/go-pluralize"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/mitchellh/mapstructure"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
)

var plural = pluralize.NewClient()

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen [files]",
	Short: "Generate target sources",
	Long:  ``,
	Args: func(cmd *cobra.Command, files []string) error {
		if len(viper.GetStringSlice("files")) == 0 && len(files) < 1 {
			return errors.New("requires at least one input file argument")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, files []string) {
		if len(files) == 0 {
			files = viper.GetStringSlice("files")
		}

		target, err := gen.LookupTarget(viper.GetString("target"))
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		var opts gen.Options
		if err := mapstructure.WeakDecode(viper.AllSettings(), &opts); err != nil {
			cmd.PrintErrf("invalid options: %v\n", err)
			os.Exit(1)
		}

		log := zap.NewNop()
		if viper.GetBool("verbose") {
			log, err = zap.NewDevelopment()
			if err != nil {
				cmd.PrintErrln(err)
				os.Exit(1)
			}
		}
		defer func() { _ = log.Sync() }()

		runID := uuid.New().String()
		log.Info("starting generation",
			zap.String("run", runID),
			zap.String("target", target.Name()),
			zap.Int("files", len(files)),
		)

		pterm.DefaultSection.Printf("typeshift %s (%s)", version, target.Name())

		outDir := viper.GetString("out-dir")
		g := gen.New(target, opts, gen.WithLogger(log))

		success := true
		written := 0
		for _, path := range files {
			out, err := convertFile(g, target, path, outDir)
			if err != nil {
				color.Red.Printf("%s: %v\n", path, err)
				success = false
				continue
			}
			color.Green.Printf("wrote %s\n", out)
			written++
		}

		cmd.Printf("converted %s\n", plural.Pluralize("file", written, true))
		if !success {
			os.Exit(1)
		}
	},
}

// convertFile decodes one parsed tree, runs the generator and writes the
// result next to the input or under outDir.
func convertFile(g *gen.Generator, target gen.Target, path, outDir string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var file *ast.File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		file, err = ast.DecodeYAML(data)
	default:
		file, err = ast.DecodeJSON(data)
	}
	if err != nil {
		return "", err
	}
	if file.Name == "" {
		file.Name = filepath.Base(path)
	}

	src, err := g.Generate(file)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(filepath.Dir(path), base+target.FileExtension())
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return "", err
		}
		out = filepath.Join(outDir, base+target.FileExtension())
	}
	if err := os.WriteFile(out, []byte(src), 0644); err != nil {
		return "", err
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringP("target", "t", "python", "Target language")
	genCmd.Flags().StringP("out-dir", "o", "", "Output directory (default is next to each input)")
	genCmd.Flags().String("target-version", "", "Target language version, gates version-specific idioms")
	genCmd.Flags().String("namespace", "", "Namespace or package prefix for emitted declarations")
	genCmd.Flags().Int("indent", 4, "Indent width in spaces")
	genCmd.Flags().Bool("comments", true, "Carry source comments over to the output")
	genCmd.Flags().Bool("value-objects", true, "Render value-object classes in the target's idiomatic form")
	genCmd.Flags().Bool("typed", true, "Emit type annotations where the target supports them")

	_ = viper.BindPFlag("target", genCmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("out-dir", genCmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("target-version", genCmd.Flags().Lookup("target-version"))
	_ = viper.BindPFlag("namespace", genCmd.Flags().Lookup("namespace"))
	_ = viper.BindPFlag("indent", genCmd.Flags().Lookup("indent"))
	_ = viper.BindPFlag("comments", genCmd.Flags().Lookup("comments"))
	_ = viper.BindPFlag("value-objects", genCmd.Flags().Lookup("value-objects"))
	_ = viper.BindPFlag("typed", genCmd.Flags().Lookup("typed"))
}
