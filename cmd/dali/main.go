// Copyright 2018 Andrew Bates
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abates/cli"
	"github.com/kirsle/configdir"

	dali "github.com/rnixx/go-dali"
	"github.com/rnixx/go-dali/driver"
)

var (
	drv *driver.Driver

	logLevelFlag dali.LogLevel
	portFlag     string
	timeoutFlag  time.Duration

	app        = cli.New(os.Args[0], cli.CallbackOption(run))
	configDir  string
	configFile string
)

type config struct {
	Port string `json:"port"`
}

func init() {
	app.SetOutput(os.Stderr)

	configDir = configdir.LocalConfig("go-dali")
	configFile = filepath.Join(configDir, "config.json")

	app.Flags.StringVar(&portFlag, "port", defaultPort(), "serial port connected to a DALI gateway")
	app.Flags.Var(&logLevelFlag, "log", "Log Level {none|info|debug|trace}")
	app.Flags.DurationVar(&timeoutFlag, "timeout", 3*time.Second, "bus transaction timeout")

	cmd := app.SubCommand("setport", cli.UsageOption("<serial port>"), cli.DescOption("store the default gateway port"), cli.CallbackOption(setPortCmd))
	cmd.Arguments.String(&portFlag, "<serial port>")
}

func defaultPort() string {
	cfg := config{Port: "/dev/ttyUSB0"}
	if data, err := ioutil.ReadFile(configFile); err == nil {
		json.Unmarshal(data, &cfg)
	}
	return cfg.Port
}

func setPortCmd() error {
	err := configdir.MakePath(configDir)
	if err != nil {
		return err
	}
	data, _ := json.Marshal(config{Port: portFlag})
	return ioutil.WriteFile(configFile, data, 0644)
}

func run() error {
	if logLevelFlag > dali.LevelNone {
		dali.SetLogLevel(logLevelFlag, os.Stderr)
	}
	return nil
}

// connect opens the gateway lazily so commands like setport work without
// one attached
func connect() (err error) {
	if drv == nil {
		drv, err = driver.Open(portFlag, driver.Timeout(timeoutFlag))
	}
	return err
}

// send transmits the command, printing the response of queries
func send(cmd *dali.Command, err error) error {
	if err != nil {
		return err
	}
	if err = connect(); err != nil {
		return err
	}

	response, err := drv.Send(cmd)
	if err == nil && response != nil {
		fmt.Printf("%v\n", response)
	}
	return err
}

// destinationFlag parses a command destination: a short address (0..63),
// a group ("g0".."g15") or "all" for broadcast
type destinationFlag struct {
	addr dali.Address
}

func (df *destinationFlag) Set(s string) error {
	if s == "all" {
		df.addr = dali.Broadcast{}
		return nil
	}
	if strings.HasPrefix(s, "g") {
		group, err := strconv.Atoi(s[1:])
		if err != nil || group < 0 || group > 15 {
			return fmt.Errorf("group must be g0..g15")
		}
		df.addr = dali.Group(group)
		return nil
	}
	addr, err := strconv.Atoi(s)
	if err != nil || addr < 0 || addr > 63 {
		return fmt.Errorf("destination must be 0..63, g0..g15 or all")
	}
	df.addr = dali.Short(addr)
	return nil
}

func (df *destinationFlag) String() string {
	if df.addr == nil {
		return ""
	}
	return df.addr.String()
}

func main() {
	err := app.Parse(os.Args[1:])
	if err == nil {
		err = app.Run()
	}
	if drv != nil {
		drv.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
