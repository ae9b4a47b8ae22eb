package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"profeia.dev/profeia/pkg/ai"
	"profeia.dev/profeia/pkg/profile"
	"profeia.dev/profeia/pkg/store"
)

const replyWidth = 80

// Chat runs one prompt through an assistant feature and prints the
// reply. The AI is an opaque oracle: whatever text comes back is shown
// as-is, wrapped for the terminal.
type Chat struct {
	Persistence store.Persistence
	Client      *ai.Client

	Feature ai.Feature
	Params  ai.Params
	Prompt  string
}

func (c *Chat) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("chat: persistence required")
	}
	if c.Prompt == "" {
		return errors.New("chat: a prompt is required")
	}

	teacher, err := profile.Load(c.Persistence.Raw())
	if err != nil {
		return err
	}
	if teacher == nil {
		return errors.New("chat: configure your profile first (profeia config)")
	}

	client := c.Client
	if client == nil {
		cfg, err := ai.LoadConfig()
		if err != nil {
			return err
		}
		client = ai.NewClient(cfg)
	}

	session := client.NewSession(ai.SystemInstruction(c.Feature, teacher, c.Params))

	faint := color.New(color.Faint, color.Italic)
	_, _ = faint.Println(ai.Greeting(c.Feature))

	reply, err := session.Send(ctx, c.Prompt)
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	fmt.Println(wordwrap.String(reply, replyWidth))
	return nil
}
