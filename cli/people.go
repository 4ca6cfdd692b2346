// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	rosdk "github.com/rosterio/roster/pkg/sdk/go"
)

var cmdPeople = []cobra.Command{
	{
		Use:   "create <JSON_person>",
		Short: "Create person",
		Long: "Create person record\n" +
			"Usage:\n" +
			"\troster-cli people create '{\"name\":\"Jane Doe\",\"age\":28,\"favorite_foods\":[\"Pasta\",\"Salad\"]}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var p rosdk.Person
			if err := json.Unmarshal([]byte(args[0]), &p); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			p, err := sdk.CreatePerson(p)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "create-bulk <JSON_people>",
		Short: "Create people",
		Long: "Create a batch of person records in a single call\n" +
			"Usage:\n" +
			"\troster-cli people create-bulk '[{\"name\":\"John Doe\",\"age\":30,\"favorite_foods\":[\"Burritos\"]}]'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var ps []rosdk.Person
			if err := json.Unmarshal([]byte(args[0]), &ps); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			ps, err := sdk.CreatePeople(ps)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, ps)
		},
	},
	{
		Use:   "get <name>",
		Short: "Get people by name",
		Long: "Get all person records matching the given name, in insertion order\n" +
			"Usage:\n" +
			"\troster-cli people get \"Jane Doe\"\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			ps, err := sdk.People(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, ps)
		},
	},
	{
		Use:   "food <food>",
		Short: "Get person by favorite food",
		Long: "Get the first person record listing the given favorite food\n" +
			"Usage:\n" +
			"\troster-cli people food Burritos\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			p, err := sdk.PersonByFood(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "view <person_id>",
		Short: "View person",
		Long: "View person record by ID\n" +
			"Usage:\n" +
			"\troster-cli people view <person_id>\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			p, err := sdk.Person(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "add-food <person_id>",
		Short: "Append favorite food",
		Long: "Append the service's configured food to the record's favorites\n" +
			"Usage:\n" +
			"\troster-cli people add-food <person_id>\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			p, err := sdk.AddFavoriteFood(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "set-age <name> <age>",
		Short: "Set person age",
		Long: "Update the age of the first person record matching the given name\n" +
			"Usage:\n" +
			"\troster-cli people set-age \"Mike Ross\" 26\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			age, err := strconv.Atoi(args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			p, sdkerr := sdk.SetAge(args[0], age)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "delete <person_id>",
		Short: "Delete person",
		Long: "Delete person record by ID\n" +
			"Usage:\n" +
			"\troster-cli people delete <person_id>\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			p, err := sdk.DeletePerson(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "delete-all <name>",
		Short: "Delete people by name",
		Long: "Delete all person records matching the given name\n" +
			"Usage:\n" +
			"\troster-cli people delete-all \"Mary Poppins\"\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			count, err := sdk.DeletePeople(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logDeletedCmd(*cmd, count)
		},
	},
	{
		Use:   "lovers",
		Short: "Burrito lovers",
		Long: "Get the burrito lovers report\n" +
			"Usage:\n" +
			"\troster-cli people lovers\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			ps, err := sdk.BurritoLovers()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, ps)
		},
	},
}

// NewPeopleCmd returns people command.
func NewPeopleCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "people [create|create-bulk|get|food|view|add-food|set-age|delete|delete-all|lovers]",
		Short: "People management",
		Long:  `People management: create, retrieve, update and delete person records`,
	}

	for i := range cmdPeople {
		cmd.AddCommand(&cmdPeople[i])
	}

	return &cmd
}
