package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mindvault/application/store"
	"mindvault/domain/core/valueobjects"
	"mindvault/infrastructure/di"
)

var (
	nodeTitle    string
	nodeContent  string
	nodeType     string
	nodeTags     []string
	nodeParentID string
)

// nodeCmd groups knowledge node operations
var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Manage knowledge nodes",
}

var nodeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a knowledge node",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			res := c.Store.CreateNode(ctx, store.CreateNodeInput{
				Title:    nodeTitle,
				Content:  nodeContent,
				Type:     valueobjects.NodeType(nodeType),
				Tags:     nodeTags,
				ParentID: nodeParentID,
			})
			node, err := res.Unwrap()
			if err != nil {
				return err
			}
			fmt.Printf("created %s (%s)\n", node.ID, node.Title)
			return nil
		})
	},
}

var nodeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge nodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			nodes := c.Store.Nodes()
			if len(nodes) == 0 {
				fmt.Println("no nodes")
				return nil
			}
			for _, n := range nodes {
				fmt.Printf("%s  %-8s  %-40s  [%s]\n",
					n.ID, n.Type, n.Title, strings.Join(n.Tags, ","))
			}
			return nil
		})
	},
}

var nodeRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a knowledge node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			if _, err := c.Store.DeleteNode(ctx, args[0]).Unwrap(); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		})
	},
}

// searchCmd queries the knowledge service through the coordinator
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search knowledge nodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			c.Store.Search(ctx, args[0])
			if err := c.Store.Err(); err != nil {
				return err
			}
			matches := c.Store.SearchResults()
			if len(matches) == 0 {
				fmt.Println("no matches")
				return nil
			}
			for _, m := range matches {
				fmt.Printf("%5.1f  %s  %s\n", m.Score, m.Node.ID, m.Node.Title)
			}
			return nil
		})
	},
}

func init() {
	nodeAddCmd.Flags().StringVar(&nodeTitle, "title", "", "node title")
	nodeAddCmd.Flags().StringVar(&nodeContent, "content", "", "node content")
	nodeAddCmd.Flags().StringVar(&nodeType, "type", "note", "node type (markdown|pdf|mindmap|note)")
	nodeAddCmd.Flags().StringSliceVar(&nodeTags, "tag", nil, "node tags")
	nodeAddCmd.Flags().StringVar(&nodeParentID, "parent", "", "parent node id")
	nodeAddCmd.MarkFlagRequired("title")
	nodeCmd.AddCommand(nodeAddCmd, nodeListCmd, nodeRmCmd)
}
