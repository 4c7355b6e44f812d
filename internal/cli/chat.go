package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/julianstephens/mindcare/internal/logger"
	"github.com/julianstephens/mindcare/internal/models"
)

type ChatCmd struct {
	Text    []string `arg:"" optional:"" help:"What's on your mind."`
	Prompts bool     `help:"List the quick prompts instead of chatting."`
}

func (c *ChatCmd) Run(ctx *Context) error {
	conv := ctx.NewConversation()
	defer conv.Close()

	if c.Prompts {
		for _, p := range conv.QuickPrompts() {
			fmt.Fprintf(ctx.out(), "  • %s\n", p)
		}
		return nil
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pending, err := conv.Send(runCtx, strings.Join(c.Text, " "))
	if err != nil {
		return err
	}

	select {
	case <-pending.Done():
	case <-pending.Cancelled():
		logger.Debug("Chat reply cancelled before delivery")
		return nil
	}

	msgs := conv.Messages()
	last := msgs[len(msgs)-1]
	if last.Sender != models.SenderAssistant {
		return fmt.Errorf("no reply was delivered")
	}
	fmt.Fprintf(ctx.out(), "[%s] %s\n", last.Category, last.Text)
	return nil
}
