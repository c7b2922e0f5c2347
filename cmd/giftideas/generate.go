package main

import (
	"fmt"

	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/database"
	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
	"github.com/mtlprog/giftideas/internal/service"
	"github.com/urfave/cli/v2"
)

// fieldFlags maps generate flags to form fields.
var fieldFlags = []struct {
	flag  string
	field model.Field
}{
	{"gender", model.FieldGender},
	{"age", model.FieldAge},
	{"price-min", model.FieldPriceMin},
	{"price-max", model.FieldPriceMax},
	{"hobbies", model.FieldHobbies},
}

// generate drives one controller from flags: each flag is a user edit, then
// a single submit. The result goes to stdout; a failure exits 1 with the alert.
func generate(c *cli.Context) error {
	file, err := config.LoadFile(c.String("config"))
	if err != nil {
		return err
	}

	svc, err := service.NewGiftService(resolveAPIURL(c, file))
	if err != nil {
		return fmt.Errorf("failed to create gift service: %w", err)
	}

	ctrl := gift.NewController(svc, file.Form())
	for _, f := range fieldFlags {
		if c.IsSet(f.flag) {
			ctrl.UpdateField(f.field, c.String(f.flag))
		}
	}

	out := c.App.Writer
	ctrl.Subscribe(func(s gift.State) {
		if s.Status == gift.StatusLoading {
			fmt.Fprintln(out, "Generating gift ideas...")
		}
	})

	done, err := ctrl.Submit(c.Context)
	if err != nil {
		return err
	}

	state := <-done
	if state.Status != gift.StatusResult {
		return cli.Exit(state.Alert, 1)
	}

	fmt.Fprintln(out, state.Result)
	return nil
}

func migrate(c *cli.Context) error {
	pool, err := database.Connect(c.Context, c.String("database-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	return database.Migrate(c.Context, pool)
}
