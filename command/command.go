package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mr-joshcrane/hellolambda"
)

type app struct {
	root   *cobra.Command
	logger *zap.Logger
	client hellolambda.LambdaClient
}

type CommandOptions func(*app) error

func WithOutput(w io.Writer) CommandOptions {
	return func(a *app) error {
		a.root.SetOut(w)
		a.root.SetErr(w)
		return nil
	}
}

func WithLogger(logger *zap.Logger) CommandOptions {
	return func(a *app) error {
		a.logger = logger
		return nil
	}
}

// WithLambdaClient replaces the client that would otherwise be built from the
// shared AWS configuration.
func WithLambdaClient(c hellolambda.LambdaClient) CommandOptions {
	return func(a *app) error {
		a.client = c
		return nil
	}
}

// NewLogger returns a production logger, or a development one in debug mode.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func Main(args []string, opts ...CommandOptions) error {
	var rootCmd = &cobra.Command{
		Use:   "hellolambda",
		Short: "A Hello, World! Lambda function and the tools to smoke test it.",
	}
	a := &app{root: rootCmd}
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging.")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if a.logger != nil {
			return nil
		}
		debug, _ := cmd.Flags().GetBool("debug")
		logger, err := NewLogger(debug)
		if err != nil {
			return fmt.Errorf("failure in building logger: %w", err)
		}
		a.logger = logger
		return nil
	}
	for _, opt := range opts {
		err := opt(a)
		if err != nil {
			return err
		}
	}
	rootCmd.AddCommand(
		a.InvokeLocalCommand(),
		a.InvokeCommand(),
	)
	if len(args) == 0 {
		rootCmd.Print(rootCmd.UsageString())
		return fmt.Errorf("no command provided")
	}
	rootCmd.SetArgs(args)
	_, _, err := rootCmd.Find(args)
	if err != nil {
		rootCmd.Print(rootCmd.UsageString())
		return err
	}
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true, Run: func(cmd *cobra.Command, args []string) {}})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	defer func() {
		if a.logger != nil {
			_ = a.logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func (a *app) InvokeLocalCommand() *cobra.Command {
	var invokeLocalCmd = &cobra.Command{
		Use:          "invoke-local",
		Short:        "Run the handler once in-process, the way the Lambda runtime would.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Example:      `hellolambda invoke-local --event '{"foo":"bar"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			event, _ := cmd.Flags().GetString("event")
			inv, err := hellolambda.InvokeLocalRequest(cmd.Context(), []byte(event))
			if err != nil {
				return err
			}
			a.logger.Debug("local invocation complete",
				zap.String("requestId", inv.RequestID),
				zap.Int("statusCode", inv.Response.StatusCode),
			)
			return printResponse(cmd, inv.Response)
		},
	}
	invokeLocalCmd.Flags().String("event", "", "JSON event payload. Empty or blank sends null.")
	return invokeLocalCmd
}

func (a *app) InvokeCommand() *cobra.Command {
	var invokeCmd = &cobra.Command{
		Use:          "invoke functionName",
		Short:        "Invoke a deployed copy of the function and check its response.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		Example:      `hellolambda invoke myFunctionName --qualifier live`,
		RunE: func(cmd *cobra.Command, args []string) error {
			functionName := args[0]
			qualifier, _ := cmd.Flags().GetString("qualifier")
			event, _ := cmd.Flags().GetString("event")
			client := a.client
			if client == nil {
				region, _ := cmd.Flags().GetString("region")
				profile, _ := cmd.Flags().GetString("profile")
				c, err := hellolambda.NewLambdaClient(cmd.Context(), region, profile)
				if err != nil {
					return fmt.Errorf("failure in loading AWS config: %w", err)
				}
				client = c
			}
			a.logger.Debug("invoking function",
				zap.String("function", functionName),
				zap.String("qualifier", qualifier),
			)
			resp, err := hellolambda.InvokeRemote(cmd.Context(), client, functionName,
				hellolambda.WithQualifier(qualifier),
				hellolambda.WithPayload([]byte(event)),
			)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	invokeCmd.Flags().String("qualifier", "", "Version or alias to invoke.")
	invokeCmd.Flags().String("event", "", "JSON event payload. Defaults to null.")
	invokeCmd.Flags().String("region", "", "AWS region. Defaults to the shared configuration.")
	invokeCmd.Flags().String("profile", "", "Shared configuration profile to use.")
	return invokeCmd
}

func printResponse(cmd *cobra.Command, resp hellolambda.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
