package system

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/storage"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" help:"Show store location and backend."`
	Keys   *DebugKeysCmd   `cmd:"" help:"List stored document keys."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump a stored document as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	location := ctx.Store.GetConfigPath()
	return printJSON(ctx, map[string]string{
		"path":    location,
		"backend": string(storage.DetectBackend(location)),
	})
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	for _, k := range keys {
		ctx.Println(k)
	}
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Storage key to dump."`
	Raw bool   `help:"Print the stored string without decoding."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	raw, err := ctx.Store.GetItem(cmd.Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no document stored under %q", cmd.Key)
		}
		return fmt.Errorf("failed to read %s: %w", cmd.Key, err)
	}
	if cmd.Raw {
		ctx.Println(raw)
		return nil
	}

	doc, err := records.Decode(cmd.Key, raw)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return printJSON(ctx, doc)
}

func printJSON(ctx *cli.Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(data))
	return nil
}
