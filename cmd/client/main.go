// Command client is a small command line front end for the document
// manager API.
//
//	client -a localhost:5000 -u alice -p secret list
//	client -a localhost:5000 -u alice -p secret upload -category Work report.pdf
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/vijaycharanme-code/doc-manager/internal/adapter"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client [flags] <command> [args]

commands:
  version                          server version
  health                           server and database health
  signup <email>                   create the account given by -u/-p
  me                               current user
  stats                            dashboard statistics
  list                             list documents
  add <name> <link>                add a document link
  upload [-category c] [-tags t] [-description d] <file>
  download <id> [output]           download a file (default: original name)
  delete <id>                      delete a document

flags:
`

func main() {
	var (
		address  = flag.String("a", "localhost:5000", "server address")
		username = flag.String("u", os.Getenv("DOCMANAGER_USERNAME"), "username")
		password = flag.String("p", os.Getenv("DOCMANAGER_PASSWORD"), "password")
		timeout  = flag.Duration("timeout", time.Minute, "request timeout")
		level    = flag.String("log-level", "warn", "log level")
		showInfo = flag.Bool("build-info", false, "print build information and exit")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showInfo {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("docmanager-client")
	if err := logger.SetLevel(*level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	client, err := adapter.NewHTTPClient(adapter.Config{BaseURL: *address, Timeout: *timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &commandLine{
		client:   client,
		username: *username,
		password: *password,
		out:      os.Stdout,
	}
	if err = cli.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
