package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/satreg/satellite-gateway/cmd/utils"
	"github.com/satreg/satellite-gateway/internal/satapi"
	"github.com/satreg/satellite-gateway/log"
	"github.com/satreg/satellite-gateway/params"
	solanabridge "github.com/satreg/satellite-gateway/registry/solana"
	"github.com/satreg/satellite-gateway/rpc/client"
	rpcserver "github.com/satreg/satellite-gateway/rpc/server"
)

var (
	clientIdentifier = "satgateway"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the satellite registry gateway command line interface")
)

func initApp() {
	// Initialize the CLI app and start action
	app.Action = satgateway
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.LogFileFlag,
		utils.LogRotationFlag,
		utils.LogMaxAgeFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func satgateway(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	exitCh := make(chan struct{})

	configFile := utils.GetConfigFilePath(ctx)
	params.LoadConfig(configFile, true)

	client.InitHTTPClient()
	solanabridge.InitBridge()
	satapi.InitBridge(solanabridge.GetBridge())

	rpcserver.StartAPIServer()

	<-exitCh
	return nil
}
