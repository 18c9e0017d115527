/*
sattools provides satellite registry dev tools like generate key pair,
derive satellite account address, decode account data etc.
*/
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/dfuse-io/solana-go"
	"github.com/mr-tron/base58"
	"github.com/urfave/cli/v2"

	"github.com/satreg/satellite-gateway/cmd/utils"
	"github.com/satreg/satellite-gateway/internal/satapi"
	"github.com/satreg/satellite-gateway/log"
	"github.com/satreg/satellite-gateway/params"
	"github.com/satreg/satellite-gateway/registry"
	solanabridge "github.com/satreg/satellite-gateway/registry/solana"
)

var (
	clientIdentifier = "sattools"
	gitCommit        = ""
	gitDate          = ""
	app              = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the satellite registry dev tools command line interface")
)

var programIDFlag = &cli.StringFlag{
	Name:     "program",
	Usage:    "registry program id (base58)",
	Required: true,
}

func initApp() {
	app.HideVersion = true
	app.Commands = []*cli.Command{
		utils.VersionCommand,
		{
			Action:    genkey,
			Name:      "genkey",
			Usage:     "generate a new random ed25519 key pair",
			ArgsUsage: " ",
		},
		{
			Action:    deriveaddr,
			Name:      "deriveaddr",
			Usage:     "derive the satellite account address",
			ArgsUsage: "<userAuthority> <registryAuthority> <noradId>",
			Flags:     []cli.Flag{programIDFlag},
		},
		{
			Action:    decodeacct,
			Name:      "decodeacct",
			Usage:     "decode hex encoded satellite account data",
			ArgsUsage: "<hexData>",
		},
	}
	app.Flags = []cli.Flag{
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

func genkey(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	pub, priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return err
	}
	fmt.Printf("Private key:\n%s\nPublic key:\n%s\n", priv, pub)
	// private key has 64 bytes including a 32 bytes suffix, which is the public key
	fmt.Printf("\nPrivate key hex:\n%X\nPublic key hex:\n%X\n", []byte(priv), pub[:])
	return nil
}

func deriveaddr(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() != 3 {
		return fmt.Errorf("want 3 arguments, have %v", ctx.NArg())
	}
	programID, err := solana.PublicKeyFromBase58(ctx.String(programIDFlag.Name))
	if err != nil {
		return fmt.Errorf("wrong program id: %v", err)
	}
	userKey, err := solanabridge.ParsePublicKey(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	registryKey, err := solanabridge.ParsePublicKey(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	noradID, err := strconv.ParseUint(ctx.Args().Get(2), 10, 64)
	if err != nil {
		return fmt.Errorf("wrong norad id: %v", err)
	}

	bridge := solanabridge.NewBridge(&params.GatewayConfig{}, programID)
	address, bump, err := bridge.DeriveSatelliteAddress(userKey, registryKey, noradID)
	if err != nil {
		return err
	}
	fmt.Printf("Satellite account address:\n%s\nBump:\n%v\n", address, bump)
	return nil
}

func decodeacct(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() != 1 {
		return fmt.Errorf("want 1 argument, have %v", ctx.NArg())
	}
	arg := ctx.Args().Get(0)
	data, err := hex.DecodeString(arg)
	if err != nil {
		// fallback to base58 like rpc tools output
		data, err = base58.Decode(arg)
		if err != nil {
			return fmt.Errorf("account data is neither hex nor base58 encoded")
		}
	}
	sat, err := registry.DecodeSatelliteAccount(data)
	if err != nil {
		return err
	}
	bs, err := json.MarshalIndent(satapi.ConvertSatelliteToInfo(sat), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bs))
	return nil
}
