// ticketctl is the file-backed variant of the ticket store: the same CRUD
// operations as the interactive API, persisted to a JSON file with
// sequential integer ids.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sprintboard/sprintboard/internal/models"
	"github.com/sprintboard/sprintboard/internal/repository"
	"github.com/sprintboard/sprintboard/internal/storage"
	"github.com/sprintboard/sprintboard/internal/store"
)

var ticketsFile string

func openStore() *store.Store {
	return store.New(storage.NewFileStore(ticketsFile), store.SequentialIDs)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "ticketctl",
	Short: "File-backed ticket management",
	Long:  `CRUD operations on a JSON ticket file. Tickets get sequential integer ids; the nextId counter is persisted alongside the records.`,
}

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new ticket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		points, _ := cmd.Flags().GetInt("points")
		ticketType, _ := cmd.Flags().GetString("type")
		status, _ := cmd.Flags().GetString("status")
		createdBy, _ := cmd.Flags().GetString("created-by")
		assignee, _ := cmd.Flags().GetString("assignee")

		ticket, err := openStore().CreateTicket(repository.CreateTicketInput{
			Title:       args[0],
			Description: description,
			StoryPoints: points,
			Type:        models.TicketType(ticketType),
			Status:      models.TicketStatus(status),
			CreatedBy:   createdBy,
			AssigneeID:  assignee,
		})
		if err != nil {
			return err
		}
		return printJSON(ticket)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(openStore().Tickets())
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show ticket details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticket, err := openStore().FindTicket(args[0])
		if err != nil {
			return err
		}
		return printJSON(ticket)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update ticket fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input repository.UpdateTicketInput
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			input.Title = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			input.Description = &v
		}
		if cmd.Flags().Changed("points") {
			v, _ := cmd.Flags().GetInt("points")
			input.StoryPoints = &v
		}
		if cmd.Flags().Changed("type") {
			v, _ := cmd.Flags().GetString("type")
			t := models.TicketType(v)
			input.Type = &t
		}
		if cmd.Flags().Changed("status") {
			v, _ := cmd.Flags().GetString("status")
			st := models.TicketStatus(v)
			input.Status = &st
		}
		if cmd.Flags().Changed("assignee") {
			v, _ := cmd.Flags().GetString("assignee")
			input.AssigneeID = &v
		}

		ticket, err := openStore().UpdateTicket(args[0], input)
		if err != nil {
			return err
		}
		return printJSON(ticket)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a ticket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openStore().DeleteTicket(args[0]); err != nil {
			return err
		}
		fmt.Printf("Ticket %s deleted\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ticketsFile, "file", "tickets.json", "path of the ticket collection file")

	createCmd.Flags().String("description", "", "ticket description")
	createCmd.Flags().Int("points", 1, "story points (positive integer)")
	createCmd.Flags().String("type", string(models.TicketTypeStory), "ticket type")
	createCmd.Flags().String("status", string(models.TicketStatusToDo), "ticket status")
	createCmd.Flags().String("created-by", "1", "creating user id")
	createCmd.Flags().String("assignee", "", "assignee user id")

	updateCmd.Flags().String("title", "", "ticket title")
	updateCmd.Flags().String("description", "", "ticket description")
	updateCmd.Flags().Int("points", 0, "story points (positive integer)")
	updateCmd.Flags().String("type", "", "ticket type")
	updateCmd.Flags().String("status", "", "ticket status")
	updateCmd.Flags().String("assignee", "", "assignee user id")

	rootCmd.AddCommand(createCmd, listCmd, showCmd, updateCmd, deleteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
