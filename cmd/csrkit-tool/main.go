package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/secinfra/csrkit/cmd/csrkit-tool/cli"
	"github.com/secinfra/csrkit/internal/version"
	"github.com/secinfra/csrkit/x/ctl"
)

type app struct {
	cli.Cli

	CsrInfo cli.CsrInfoCmd `cmd:"" help:"print CSR info"`
	CsrSans cli.CsrSansCmd `cmd:"" help:"print CSR subject alternative names"`
}

func main() {
	realMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

func realMain(args []string, out io.Writer, errout io.Writer, exit func(int)) {
	cl := app{
		Cli: cli.Cli{},
	}
	cl.Cli.WithErrWriter(errout).
		WithWriter(out)

	parser, err := kong.New(&cl,
		kong.Name("csrkit-tool"),
		kong.Description("CSR tools"),
		kong.Writers(out, errout),
		kong.Exit(exit),
		ctl.BoolPtrMapper,
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version.Current(),
		})
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args[1:])
	parser.FatalIfErrorf(err)

	if ctx != nil {
		err = ctx.Run(&cl.Cli)
		ctx.FatalIfErrorf(err)
	}
}
