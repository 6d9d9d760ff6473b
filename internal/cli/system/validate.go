package system

import (
	"fmt"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	result, err := validation.New().ValidateProvider(ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to validate store: %w", err)
	}

	ctx.Println(result.FormatReport())
	if result.HasErrors() {
		return fmt.Errorf("validation found %d error(s)", result.Count(validation.SeverityError))
	}
	return nil
}
