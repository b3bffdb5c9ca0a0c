package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/padakosha/anuvada/internal/cli"
)

type Format string

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatText, FormatJSON}
)

func newTranslateCommand() *cobra.Command {
	var online bool
	format := FormatText

	command := cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate English text to Kannada",
		Long: `Translate English text to Kannada.

With arguments, translates them once and exits. Without arguments, starts
an interactive session. Translation is offline by default; --online prefers
the web translation endpoint and falls back to the offline dictionary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			resolver, err := newResolver(cfg)
			if err != nil {
				return err
			}
			trans := newTranslator(cfg, resolver, online)

			if len(args) > 0 {
				text := strings.Join(args, " ")
				translated, err := trans.Translate(cmd.Context(), text)
				if err != nil {
					return fmt.Errorf("translator.Translate() > %w", err)
				}

				switch format {
				case FormatJSON:
					return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
						"text":       text,
						"translated": translated,
					})
				default:
					fmt.Fprintln(cmd.OutOrStdout(), translated)
				}
				return nil
			}

			session := cli.NewTranslateSession(trans, cmd.InOrStdin(), cmd.OutOrStdout())
			session.PrintBanner()
			return cli.Run(cmd.Context(), session)
		},
	}
	command.Flags().BoolVar(&online, "online", false, "Prefer the web translation endpoint")
	command.Flags().Var(&format, "format", fmt.Sprintf("Output format for one-shot translation. Possible values are %v", allFormats))
	return &command
}
