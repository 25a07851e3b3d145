package cli

import (
	"fmt"
	"strings"

	"github.com/sant0-9/replybot/internal/responder"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRespondCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "respond [file] [message...]",
		Short: "Print the reply a chatbot file gives to a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bot, err := responder.Load(args[0])
			if err != nil {
				return err
			}

			input := strings.Join(args[1:], " ")
			reply := bot.Respond(input)
			opts.logger.Debug("Responded",
				zap.String("bot", bot.Name()),
				zap.String("path", args[0]))

			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "List the responses of a chatbot file in match order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bot, err := responder.Load(args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("Showing chatbot", zap.String("bot", bot.Name()), zap.String("path", args[0]))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", bot.Name())
			fmt.Fprintf(out, "Default: %s\n", bot.DefaultReply())
			fmt.Fprintf(out, "Responses (%d):\n", bot.Len())
			for _, t := range bot.Triggers() {
				fmt.Fprintf(out, "  %s -> %s\n", t.Phrase, t.Reply)
			}
			return nil
		},
	}
}
