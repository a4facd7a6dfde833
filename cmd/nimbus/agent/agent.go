// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package agent implements the coding agent workflow commands: start a
// thread, feed it prompts, inspect its state, and stop it. Output is a
// point-in-time snapshot; there is no watch mode, rerun state to poll.
package agent

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/api"
)

// Command returns the "agent" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "agent",
		Summary: "Run the coding agent",
		Subcommands: []*cli.Command{
			startCommand(),
			promptCommand(),
			stateCommand(),
			stopCommand(),
			pullCommand(),
		},
	}
}

func startCommand() *cli.Command {
	var projectName string
	var includeGitHub, parallelMode, asJSON bool

	return &cli.Command{
		Name:    "start",
		Summary: "Start an agent thread from a prompt",
		Usage:   "nimbus agent start <prompt> [flags]",
		Examples: []cli.Example{
			{Description: "Build an app from a one-line brief", Command: `nimbus agent start "a todo app with user accounts" --name todo`},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("start", pflag.ContinueOnError)
			flagSet.StringVar(&projectName, "name", "", "project name for the generated app")
			flagSet.BoolVar(&includeGitHub, "github", false, "create a GitHub repository for the result")
			flagSet.BoolVar(&parallelMode, "parallel", false, "let the agent work plan stages in parallel")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one prompt argument")
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			request := api.StartAgentRequest{Prompt: args[0]}
			if projectName != "" {
				request.ProjectName = &projectName
			}
			if includeGitHub {
				request.IncludeGitHub = &includeGitHub
			}
			if parallelMode {
				request.ParallelMode = &parallelMode
			}

			started, err := client.StartAgent(context.Background(), request)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(started)
			}
			fmt.Printf("Started agent thread %s (%s)\n", started.ThreadID, started.Status)
			if started.Message != "" {
				fmt.Println(started.Message)
			}
			return nil
		},
	}
}

func promptCommand() *cli.Command {
	return &cli.Command{
		Name:    "prompt",
		Summary: "Send a follow-up prompt to a thread",
		Usage:   "nimbus agent prompt <thread-id> <prompt>",
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected thread ID and prompt arguments")
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			response, err := client.SendAgentPrompt(context.Background(), args[0],
				api.SendPromptRequest{Prompt: args[1]})
			if err != nil {
				return err
			}

			if response.Message != "" {
				fmt.Println(response.Message)
			}
			if !response.Success {
				return fmt.Errorf("prompt was not accepted")
			}
			return nil
		},
	}
}

func stateCommand() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:    "state",
		Summary: "Show a thread's current state",
		Usage:   "nimbus agent state <thread-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("state", pflag.ContinueOnError)
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one thread ID argument")
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			agentState, err := client.GetAgentState(context.Background(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(agentState)
			}
			printState(agentState)
			return nil
		},
	}
}

// printState renders the interesting subset of a snapshot. The full
// record is available via --json.
func printState(agentState *api.AgentState) {
	working := "idle"
	if agentState.IsWorking {
		working = "working"
	}
	fmt.Printf("Thread: %s (%s)\n", agentState.ThreadID, working)
	if agentState.Phase != nil {
		fmt.Printf("Phase:  %s\n", *agentState.Phase)
	}
	if agentState.Status != nil {
		fmt.Printf("Status: %s\n", *agentState.Status)
	}
	if progress := agentState.Progress; progress != nil && progress.Percentage != nil {
		fmt.Printf("Progress: %.0f%%", *progress.Percentage)
		if progress.CurrentStage != nil && progress.TotalStages != nil {
			fmt.Printf(" (stage %d of %d)", *progress.CurrentStage, *progress.TotalStages)
		}
		fmt.Println()
	}
	if agentState.AppDomainName != nil {
		fmt.Printf("App:    %s\n", *agentState.AppDomainName)
	}
	if deployment := agentState.Deployment; deployment != nil && deployment.URL != nil {
		fmt.Printf("Deployed at: %s\n", *deployment.URL)
	}
	if len(agentState.Messages) > 0 {
		last := agentState.Messages[len(agentState.Messages)-1]
		if last.Content != nil {
			fmt.Printf("Last message: %s\n", *last.Content)
		}
	}
}

func stopCommand() *cli.Command {
	return &cli.Command{
		Name:    "stop",
		Summary: "Stop a running thread",
		Usage:   "nimbus agent stop <thread-id>",
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one thread ID argument")
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			response, err := client.StopAgent(context.Background(), args[0])
			if err != nil {
				return err
			}

			if response.Message != "" {
				fmt.Println(response.Message)
			}
			if !response.Success {
				return fmt.Errorf("thread did not stop")
			}
			return nil
		},
	}
}

func pullCommand() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:    "pull",
		Summary: "Pull the latest state the server has for a thread",
		Usage:   "nimbus agent pull <thread-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("pull", pflag.ContinueOnError)
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one thread ID argument")
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			response, err := client.PullAgentLatest(context.Background(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response)
			}
			if response.Message != "" {
				fmt.Println(response.Message)
			}
			if response.State != nil {
				printState(response.State)
			}
			return nil
		},
	}
}
