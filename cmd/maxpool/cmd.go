package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/born-ml/maxpool/internal/config"
	"github.com/born-ml/maxpool/internal/pool"
	"github.com/born-ml/maxpool/internal/render"
	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// NewCLI builds the root command with all subcommands.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "maxpool",
		Short:         "Single-channel 2D max pooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: config.LogLevel(),
			})))
		},
	}

	runCmd := newRunCmd()
	dimsCmd := newDimsCmd()
	appendEnvDocs(runCmd)

	rootCmd.AddCommand(runCmd, dimsCmd, newVersionCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Pool a grid and print the input and output",
		Long: "Pool the grid described by --config, or the sequential demo grid " +
			"(cell = row*cols + col) when no data is given.",
		Args: cobra.NoArgs,
		RunE: RunHandler,
	}
	cmd.Flags().StringP("config", "c", "", "Path to a YAML job file")
	cmd.Flags().StringP("format", "f", "", "Output format: table or matrix (default from MAXPOOL_FORMAT)")
	addPoolFlags(cmd)
	return cmd
}

func newDimsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dims",
		Short: "Print the output shape for an input shape and window",
		Args:  cobra.NoArgs,
		RunE:  DimsHandler,
	}
	addPoolFlags(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "maxpool version %s\n", version)
		},
	}
}

func addPoolFlags(cmd *cobra.Command) {
	def := config.DefaultJob()
	cmd.Flags().Int("rows", def.Rows, "Input rows")
	cmd.Flags().Int("cols", def.Cols, "Input columns")
	cmd.Flags().IntP("stride", "s", def.Pool.Stride, "Window stride (both axes)")
	cmd.Flags().IntP("kernel", "k", def.Pool.KernelSize, "Window side length")
	cmd.Flags().StringP("padding", "p", def.Pool.Padding.String(), "Padding policy: any or valid")
}

// applyFlags overrides job fields with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, job *config.Job) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("rows") {
		if job.Rows, err = flags.GetInt("rows"); err != nil {
			return err
		}
		job.Data = nil
	}
	if flags.Changed("cols") {
		if job.Cols, err = flags.GetInt("cols"); err != nil {
			return err
		}
		job.Data = nil
	}
	if flags.Changed("stride") {
		if job.Pool.Stride, err = flags.GetInt("stride"); err != nil {
			return err
		}
	}
	if flags.Changed("kernel") {
		if job.Pool.KernelSize, err = flags.GetInt("kernel"); err != nil {
			return err
		}
	}
	if flags.Changed("padding") {
		s, err := flags.GetString("padding")
		if err != nil {
			return err
		}
		if job.Pool.Padding, err = pool.ParsePadding(s); err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		if job.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	return nil
}

func loadJob(cmd *cobra.Command) (config.Job, error) {
	job := config.DefaultJob()
	if flag := cmd.Flags().Lookup("config"); flag != nil && flag.Value.String() != "" {
		var err error
		if job, err = config.Load(flag.Value.String()); err != nil {
			return config.Job{}, err
		}
	}
	if err := applyFlags(cmd, &job); err != nil {
		return config.Job{}, err
	}
	return job, nil
}

// RunHandler pools the job's grid and prints input and output.
func RunHandler(cmd *cobra.Command, _ []string) error {
	job, err := loadJob(cmd)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(strings.ToLower(job.Format))
	if err != nil {
		return err
	}

	input, err := job.Grid()
	if err != nil {
		return err
	}

	slog.Debug("pooling", "input", input.Shape(), "stride", job.Pool.Stride,
		"kernel", job.Pool.KernelSize, "padding", job.Pool.Padding)

	output, err := pool.MaxPool(input, job.Pool)
	if err != nil {
		return err
	}

	slog.Debug("pooled", "output", output.Shape())

	w := cmd.OutOrStdout()
	if err := render.Grid(w, "input", input, format); err != nil {
		return err
	}
	return render.Grid(w, "output", output, format)
}

// DimsHandler prints the output shape without pooling.
func DimsHandler(cmd *cobra.Command, _ []string) error {
	job, err := loadJob(cmd)
	if err != nil {
		return err
	}

	dims, err := pool.OutputDims(job.Rows, job.Cols, job.Pool.Stride, job.Pool.KernelSize, job.Pool.Padding)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%dx%d -> %s\n", job.Rows, job.Cols, dims)
	if dims.Empty() {
		fmt.Fprintln(w, "no valid windows")
	}
	return nil
}

func appendEnvDocs(cmd *cobra.Command) {
	envs := config.AsMap()
	var sb strings.Builder
	sb.WriteString("\nEnvironment Variables:\n")
	for _, key := range []string{"MAXPOOL_DEBUG", "MAXPOOL_FORMAT"} {
		e := envs[key]
		fmt.Fprintf(&sb, "      %-22s %s\n", e.Name, e.Description)
	}
	cmd.SetUsageTemplate(cmd.UsageTemplate() + sb.String())
}
