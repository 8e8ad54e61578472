package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/vijaycharanme-code/doc-manager/internal/adapter"
	"github.com/vijaycharanme-code/doc-manager/models"
)

var (
	errUsage         = errors.New("invalid arguments")
	errNoCredentials = errors.New("username and password are required (-u/-p or DOCMANAGER_USERNAME/DOCMANAGER_PASSWORD)")
)

type commandLine struct {
	client   adapter.Client
	username string
	password string
	out      io.Writer
}

// run executes one command. Every command except version, health and
// signup logs in first; the session lives only for this process.
func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "version":
		v, err := c.client.Version(ctx)
		if err != nil {
			return err
		}
		return c.print(map[string]string{"version": v})
	case "health":
		if err := c.client.Health(ctx); err != nil {
			return err
		}
		return c.print(map[string]bool{"healthy": true})
	case "signup":
		return c.signup(ctx, args)
	}

	if err := c.login(ctx); err != nil {
		return err
	}

	switch cmd {
	case "me":
		user, _, err := c.client.Me(ctx)
		if err != nil {
			return err
		}
		return c.print(user)
	case "stats":
		stats, err := c.client.Stats(ctx)
		if err != nil {
			return err
		}
		return c.print(stats)
	case "list":
		docs, err := c.client.ListDocuments(ctx)
		if err != nil {
			return err
		}
		return c.print(docs)
	case "add":
		return c.add(ctx, args)
	case "upload":
		return c.upload(ctx, args)
	case "download":
		return c.download(ctx, args)
	case "delete":
		id, err := documentID(args)
		if err != nil {
			return err
		}
		return c.client.DeleteDocument(ctx, id)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *commandLine) login(ctx context.Context) error {
	if c.username == "" || c.password == "" {
		return errNoCredentials
	}
	_, err := c.client.Login(ctx, c.username, c.password)
	return err
}

func (c *commandLine) signup(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if c.username == "" || c.password == "" {
		return errNoCredentials
	}

	user, err := c.client.Signup(ctx, models.SignupRequest{
		Username:        c.username,
		Email:           args[0],
		Password:        c.password,
		ConfirmPassword: c.password,
	})
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *commandLine) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	category := fs.String("category", "", "category")
	tags := fs.String("tags", "", "comma separated tags")
	description := fs.String("description", "", "description")
	if err := fs.Parse(args); err != nil || fs.NArg() != 2 {
		return errUsage
	}

	return c.client.AddLink(ctx, models.AddLinkRequest{
		Name:        fs.Arg(0),
		Link:        fs.Arg(1),
		Category:    *category,
		Tags:        *tags,
		Description: *description,
	})
}

func (c *commandLine) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	category := fs.String("category", "", "category")
	tags := fs.String("tags", "", "comma separated tags")
	description := fs.String("description", "", "description")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return errUsage
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	return c.client.Upload(ctx, models.UploadRequest{
		FileName:    filepath.Base(f.Name()),
		Content:     f,
		Category:    *category,
		Tags:        *tags,
		Description: *description,
	})
}

// download writes to a temporary file first so a failed transfer never
// leaves a truncated output behind.
func (c *commandLine) download(ctx context.Context, args []string) error {
	id, err := documentID(args[:min(len(args), 1)])
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(".", ".download-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	name, err := c.client.Download(ctx, id, tmp)
	if err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	output := filepath.Base(name)
	if len(args) > 1 {
		output = args[1]
	}
	if output == "" || output == "." || output == string(filepath.Separator) {
		output = "document-" + strconv.FormatInt(id, 10)
	}

	if err = os.Rename(tmp.Name(), output); err != nil {
		return fmt.Errorf("error saving %s: %w", output, err)
	}
	_, err = fmt.Fprintln(c.out, output)
	return err
}

func documentID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid document id %q", errUsage, args[0])
	}
	return id, nil
}

func (c *commandLine) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
