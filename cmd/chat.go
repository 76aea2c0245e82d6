package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alterra-fm/screening-cli/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>...",
	Short: "Ask the screening assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		greeting := chat.Greeting()
		fmt.Fprintf(os.Stdout, "%s: %s\n", greeting.Sender, greeting.Text)

		replier := chat.NewReplier(time.Duration(cfg.Chat.ReplyDelayMillis) * time.Millisecond)
		msg, replies := replier.Send(chat.SenderClient, strings.Join(args, " "))
		fmt.Fprintf(os.Stdout, "%s: %s\n", msg.Sender, msg.Text)

		for reply := range replies {
			fmt.Fprintf(os.Stdout, "%s: %s\n", reply.Sender, reply.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
