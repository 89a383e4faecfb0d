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
	"fmt"

	"github.com/abates/cli"

	dali "github.com/rnixx/go-dali"
)

type gear struct {
	dest  destinationFlag
	level int
	scene int
	group int
	addr  int
}

func init() {
	g := gear{}

	cmd := app.SubCommand("on", cli.UsageOption("<destination>"), cli.DescOption("set the destination to its maximum level"), cli.CallbackOption(g.onCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")

	cmd = app.SubCommand("off", cli.UsageOption("<destination>"), cli.DescOption("switch the destination off"), cli.CallbackOption(g.offCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")

	cmd = app.SubCommand("min", cli.UsageOption("<destination>"), cli.DescOption("set the destination to its minimum level"), cli.CallbackOption(g.minCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")

	cmd = app.SubCommand("level", cli.UsageOption("<destination> <level>"), cli.DescOption("set the arc power level directly"), cli.CallbackOption(g.levelCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")
	cmd.Arguments.Int(&g.level, "<level>")

	cmd = app.SubCommand("scene", cli.UsageOption("<destination> <scene>"), cli.DescOption("recall a scene"), cli.CallbackOption(g.sceneCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")
	cmd.Arguments.Int(&g.scene, "<scene>")

	cmd = app.SubCommand("storescene", cli.UsageOption("<destination> <scene> <level>"), cli.DescOption("store the scene level"), cli.CallbackOption(g.storeSceneCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")
	cmd.Arguments.Int(&g.scene, "<scene>")
	cmd.Arguments.Int(&g.level, "<level>")

	groupCmd := app.SubCommand("group", cli.UsageOption("<command>"), cli.DescOption("manage group membership"))
	cmd = groupCmd.SubCommand("add", cli.UsageOption("<destination> <group>"), cli.DescOption("add the destination to a group"), cli.CallbackOption(g.groupAddCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")
	cmd.Arguments.Int(&g.group, "<group>")
	cmd = groupCmd.SubCommand("remove", cli.UsageOption("<destination> <group>"), cli.DescOption("remove the destination from a group"), cli.CallbackOption(g.groupRemoveCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")
	cmd.Arguments.Int(&g.group, "<group>")

	cmd = app.SubCommand("status", cli.UsageOption("<destination>"), cli.DescOption("query and decode the status byte"), cli.CallbackOption(g.statusCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")

	cmd = app.SubCommand("query", cli.UsageOption("<destination>"), cli.DescOption("query the actual arc power level"), cli.CallbackOption(g.queryLevelCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")

	cmd = app.SubCommand("setaddr", cli.UsageOption("<destination> <address>"), cli.DescOption("assign a new short address"), cli.CallbackOption(g.setAddrCmd))
	cmd.Arguments.Var(&g.dest, "<destination>")
	cmd.Arguments.Int(&g.addr, "<address>")
}

func (g *gear) onCmd() error {
	return send(dali.RecallMaxLevel(g.dest.addr))
}

func (g *gear) offCmd() error {
	return send(dali.Off(g.dest.addr))
}

func (g *gear) minCmd() error {
	return send(dali.RecallMinLevel(g.dest.addr))
}

func (g *gear) levelCmd() error {
	return send(dali.ArcPower(g.dest.addr, g.level))
}

func (g *gear) sceneCmd() error {
	return send(dali.GoToScene(g.dest.addr, g.scene))
}

func (g *gear) storeSceneCmd() error {
	err := send(dali.SetDTR(g.level))
	if err == nil {
		err = send(dali.StoreDTRAsScene(g.dest.addr, g.scene))
	}
	return err
}

func (g *gear) groupAddCmd() error {
	return send(dali.AddToGroup(g.dest.addr, g.group))
}

func (g *gear) groupRemoveCmd() error {
	return send(dali.RemoveFromGroup(g.dest.addr, g.group))
}

func (g *gear) statusCmd() error {
	cmd, err := dali.QueryStatus(g.dest.addr)
	if err != nil {
		return err
	}
	if err = connect(); err != nil {
		return err
	}

	response, err := drv.Send(cmd)
	if err != nil {
		return err
	}

	status, err := response.(*dali.BitmapResponse).Status()
	if err != nil {
		return err
	}
	if len(status) == 0 {
		fmt.Printf("no status bits set\n")
	}
	for _, name := range status {
		fmt.Printf("%s\n", name)
	}
	return nil
}

func (g *gear) queryLevelCmd() error {
	return send(dali.QueryActualLevel(g.dest.addr))
}

// setAddrCmd loads (address << 1) | 1 into the DTR and asks the
// destination to adopt it as its short address
func (g *gear) setAddrCmd() error {
	if g.addr < 0 || g.addr > 63 {
		return fmt.Errorf("address must be 0..63")
	}
	err := send(dali.SetDTR(g.addr<<1 | 1))
	if err == nil {
		err = send(dali.StoreDTRAsShortAddress(g.dest.addr))
	}
	return err
}
