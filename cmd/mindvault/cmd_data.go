package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mindvault/application/store"
	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
	"mindvault/infrastructure/di"
)

var (
	exportScope   string
	loginName     string
	loginBio      string
	recordMinutes int
	recordAction  string
	recordFocus   int
	recordTopic   string
)

// importCmd imports knowledge nodes from a JSON file
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import knowledge nodes from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			res := c.Store.ImportNodes(ctx, args[0])
			for _, e := range res.Errors {
				fmt.Printf("skipped: %s\n", e)
			}
			if !res.Success {
				return fmt.Errorf("import failed")
			}
			fmt.Printf("imported %d nodes\n", len(res.Nodes))
			return nil
		})
	},
}

// exportCmd writes a slice of state to the export directory
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			if err := c.Store.ExportData(ctx, store.ExportScope(exportScope)); err != nil {
				return err
			}
			fmt.Printf("exported %s data to %s\n", exportScope, c.Config.ExportPath())
			return nil
		})
	},
}

// loginCmd establishes the local user profile
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in (or create) the local user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			profile := entities.UserProfile{Name: loginName, Bio: loginBio}
			if current := c.Store.User(); current != nil {
				profile = *current
				if loginName != "" {
					profile.Name = loginName
				}
				if loginBio != "" {
					profile.Bio = loginBio
				}
			}
			user, err := c.Store.Login(ctx, profile).Unwrap()
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s (%s)\n", user.Name, user.ID)
			return nil
		})
	},
}

// recordCmd appends a learning record for a node
var recordCmd = &cobra.Command{
	Use:   "record <node-id>",
	Short: "Record a learning activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			res := c.Store.AddRecord(ctx, store.AddRecordInput{
				NodeID:     args[0],
				Action:     valueobjects.ActionType(recordAction),
				Duration:   recordMinutes,
				Topic:      recordTopic,
				Type:       "manual",
				FocusLevel: recordFocus,
			})
			record, err := res.Unwrap()
			if err != nil {
				return err
			}
			fmt.Printf("recorded %d min of %s on %s\n", record.Duration, record.Action, record.NodeID)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportScope, "type", "all", "export scope (all|knowledge|learning|profile)")
	loginCmd.Flags().StringVar(&loginName, "name", "", "profile name")
	loginCmd.Flags().StringVar(&loginBio, "bio", "", "profile bio")
	recordCmd.Flags().IntVar(&recordMinutes, "minutes", 0, "duration in minutes")
	recordCmd.Flags().StringVar(&recordAction, "action", "read", "action (create|read|edit|review)")
	recordCmd.Flags().IntVar(&recordFocus, "focus", 100, "focus level 0-100")
	recordCmd.Flags().StringVar(&recordTopic, "topic", "", "topic label")
}
