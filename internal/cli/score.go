package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/service"
)

type ScoreCmd struct {
	Answers string `required:"" help:"JSON object mapping question ids to 1-5 answers." type:"existingfile"`
	User    string `help:"User id stored with the assessment."`
	Save    bool   `help:"Persist the assessment to the configured storage."`
	JSON    bool   `help:"Print the result as JSON."`
}

func (c *ScoreCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.Answers)
	if err != nil {
		return fmt.Errorf("failed to read answers: %w", err)
	}
	var answers models.AssessmentAnswers
	if err := json.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("failed to parse answers %s: %w", c.Answers, err)
	}

	runCtx := context.Background()
	if c.Save {
		if err := ctx.Sink.Load(runCtx); err != nil {
			return err
		}
	}

	result, err := ctx.Service.Assess(runCtx, answers, service.AssessOptions{UserID: c.User, Save: c.Save})
	if err != nil {
		return err
	}

	if c.JSON {
		return ctx.printJSON(result)
	}
	ctx.printf("Burnout score: %.2f (%d answers)\n", result.Score, result.Answered)
	ctx.printf("Risk level:    %s\n", categoryStyle(result.Category).Render(result.Category.String()))
	return nil
}
